package node

import (
	"html"
	"io"
	"strings"
)

// Node is anything the field renderer can emit: plain text, trusted markup,
// fragments, or elements built from intrinsic tags and components.
type Node interface {
	Render(w io.Writer) error
}

// Text is escaped on render.
type Text string

// Render writes the escaped text.
func (t Text) Render(w io.Writer) error {
	if t == "" {
		return nil
	}
	_, err := io.WriteString(w, html.EscapeString(string(t)))
	return err
}

// HTML is trusted markup written verbatim. Use Sanitized or Markdown to build
// one from untrusted input.
type HTML string

// Render writes the markup as is.
func (h HTML) Render(w io.Writer) error {
	if h == "" {
		return nil
	}
	_, err := io.WriteString(w, string(h))
	return err
}

// Fragment renders its nodes in order without a wrapping element.
type Fragment []Node

// Render writes each non-empty child.
func (f Fragment) Render(w io.Writer) error {
	for _, child := range f {
		if IsEmpty(child) {
			continue
		}
		if err := child.Render(w); err != nil {
			return err
		}
	}
	return nil
}

// IsEmpty reports whether n renders to nothing meaningful: nil, an empty text,
// empty markup, a nil element, or a fragment of empty nodes.
func IsEmpty(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case Text:
		return v == ""
	case HTML:
		return v == ""
	case *Element:
		return v == nil
	case Fragment:
		for _, child := range v {
			if !IsEmpty(child) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Compact drops empty nodes, keeping order.
func Compact(nodes ...Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if IsEmpty(n) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// String renders n into a string.
func String(n Node) (string, error) {
	if IsEmpty(n) {
		return "", nil
	}
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}
