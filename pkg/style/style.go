// Package style turns declarative CSS fragments into class names backed by a
// shared stylesheet, so components can derive styles from theme values at
// render time and reference them by class.
package style

import "strings"

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// Rule is a nested selector scoped to the owning class. "&" stands for the
// class selector, e.g. "& > *".
type Rule struct {
	Selector     string
	Declarations []Declaration
}

// Style is an ordered set of declarations plus nested rules.
type Style struct {
	Declarations []Declaration
	Rules        []Rule
}

// Declare builds a Style from property/value pairs. A trailing property
// without a value is ignored.
func Declare(pairs ...string) Style {
	return Style{Declarations: declarations(pairs)}
}

// Nest returns a copy of s with a nested rule appended.
func (s Style) Nest(selector string, pairs ...string) Style {
	rules := make([]Rule, len(s.Rules), len(s.Rules)+1)
	copy(rules, s.Rules)
	rules = append(rules, Rule{Selector: selector, Declarations: declarations(pairs)})
	return Style{Declarations: s.Declarations, Rules: rules}
}

// Value returns the last value declared for property, or "".
func (s Style) Value(property string) string {
	value := ""
	for _, decl := range s.Declarations {
		if decl.Property == property {
			value = decl.Value
		}
	}
	return value
}

// Empty reports whether s declares nothing.
func (s Style) Empty() bool {
	if len(s.Declarations) > 0 {
		return false
	}
	for _, rule := range s.Rules {
		if len(rule.Declarations) > 0 {
			return false
		}
	}
	return true
}

func (s Style) key() string {
	var b strings.Builder
	b.WriteString(body(s.Declarations))
	for _, rule := range s.Rules {
		b.WriteString(rule.Selector)
		b.WriteByte('{')
		b.WriteString(body(rule.Declarations))
		b.WriteByte('}')
	}
	return b.String()
}

func declarations(pairs []string) []Declaration {
	out := make([]Declaration, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		property := strings.TrimSpace(pairs[i])
		value := strings.TrimSpace(pairs[i+1])
		if property == "" || value == "" || !SafeValue(property) || !SafeValue(value) {
			continue
		}
		out = append(out, Declaration{Property: property, Value: value})
	}
	return out
}

// SafeValue reports whether value can sit inside a declaration without
// closing it, its rule, or the surrounding style element.
func SafeValue(value string) bool {
	return !strings.ContainsAny(value, "<>{};")
}

func body(decls []Declaration) string {
	var b strings.Builder
	for _, decl := range decls {
		b.WriteString(decl.Property)
		b.WriteByte(':')
		b.WriteString(decl.Value)
		b.WriteByte(';')
	}
	return b.String()
}

// Cx joins non-empty class names with a single space.
func Cx(classes ...string) string {
	keep := make([]string, 0, len(classes))
	for _, class := range classes {
		keep = append(keep, strings.Fields(class)...)
	}
	return strings.Join(keep, " ")
}

// If returns class when cond holds, "" otherwise.
func If(cond bool, class string) string {
	if cond {
		return class
	}
	return ""
}
