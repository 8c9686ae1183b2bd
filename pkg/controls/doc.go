// Package controls builds the input elements wrapped by field.Render. Every
// control honours the invalid, disabled, and loading props the field clones
// onto it.
package controls
