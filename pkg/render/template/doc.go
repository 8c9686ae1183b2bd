// Package template defines the engine contract page renderers write through.
// The pongo subpackage carries the default pongo2 implementation.
package template
