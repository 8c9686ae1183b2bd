package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/node"
)

// Walk visits every element reachable from n in document order. Component
// elements are visited but not expanded. Returning false from fn skips the
// element's children.
func Walk(n node.Node, fn func(*node.Element) bool) {
	switch v := n.(type) {
	case *node.Element:
		if v == nil {
			return
		}
		if !fn(v) {
			return
		}
		for _, child := range v.Children {
			Walk(child, fn)
		}
	case node.Fragment:
		for _, child := range v {
			Walk(child, fn)
		}
	}
}

// FindAll returns the elements matching pred.
func FindAll(n node.Node, pred func(*node.Element) bool) []*node.Element {
	var out []*node.Element
	Walk(n, func(el *node.Element) bool {
		if pred(el) {
			out = append(out, el)
		}
		return true
	})
	return out
}

// FindByTag returns intrinsic elements with the given tag.
func FindByTag(n node.Node, tag string) []*node.Element {
	return FindAll(n, func(el *node.Element) bool { return el.Tag() == tag })
}

// FindByProp returns elements whose prop key equals value.
func FindByProp(n node.Node, key string, value any) []*node.Element {
	return FindAll(n, func(el *node.Element) bool {
		got, ok := el.Props[key]
		return ok && got == value
	})
}

// HasClass reports whether el's className contains class.
func HasClass(el *node.Element, class string) bool {
	if el == nil || class == "" {
		return false
	}
	value, _ := el.Props.String(node.PropClassName)
	for _, token := range strings.Fields(value) {
		if token == class {
			return true
		}
	}
	return false
}

// TextContent concatenates the text and markup nodes under n.
func TextContent(n node.Node) string {
	var b strings.Builder
	var collect func(node.Node)
	collect = func(n node.Node) {
		switch v := n.(type) {
		case node.Text:
			b.WriteString(string(v))
		case node.HTML:
			b.WriteString(string(v))
		case node.Fragment:
			for _, child := range v {
				collect(child)
			}
		case *node.Element:
			if v == nil {
				return
			}
			for _, child := range v.Children {
				collect(child)
			}
		}
	}
	collect(n)
	return b.String()
}

// MustRender renders n to a string, failing the test on error.
func MustRender(t *testing.T, n node.Node) string {
	t.Helper()
	out, err := node.String(n)
	if err != nil {
		t.Fatalf("render node: %v", err)
	}
	return out
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
