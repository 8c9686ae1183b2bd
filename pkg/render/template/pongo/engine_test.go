package pongo

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-formfield/pkg/testsupport"
)

//go:embed testdata/templates/*.tmpl
var embeddedTemplates embed.FS

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	sub, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}
	engine, err := New(append([]Option{WithFS(sub)}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func assertGolden(t *testing.T, name, got string) {
	t.Helper()
	path := filepath.Join("testdata", name+".golden")
	if testsupport.WriteMaybeGolden(t, path, []byte(got)) {
		return
	}
	want := string(testsupport.MustReadGolden(t, path))
	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("%s mismatch (-want +got):\n%s", name, diff)
	}
}

func TestEngineRenderTemplate(t *testing.T) {
	engine := newEngine(t)

	var buf bytes.Buffer
	result, err := engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	assertGolden(t, "hello", result)
	if buf.String() != result {
		t.Fatalf("writer mismatch\nwant: %q\n got: %q", result, buf.String())
	}
}

func TestEngineGlobalContext(t *testing.T) {
	engine := newEngine(t, WithGlobalData(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}))

	result, err := engine.Render("use-global.tmpl", struct {
		Title string `json:"title"`
	}{Title: "  Profile "})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	assertGolden(t, "use-global", result)
}

func TestEngineDefaultFilters(t *testing.T) {
	result, err := newEngine(t).RenderTemplate("use-filters", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	assertGolden(t, "use-filters", result)
}

func TestEngineRenderString(t *testing.T) {
	engine := newEngine(t)
	result, err := engine.Render("{{ a }}-{{ b }}", map[string]any{"a": 1, "b": "x"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if result != "1-x" {
		t.Fatalf("unexpected output %q", result)
	}
	if _, err := engine.RenderString("{% if %}", nil); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestEngineRegisterFilter(t *testing.T) {
	engine := newEngine(t)
	shout := func(input any, _ any) (any, error) {
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	}
	if err := engine.RegisterFilter("formfield_shout", shout); err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("formfield_shout", shout); err == nil {
		t.Fatalf("expected duplicate filter error")
	}
	if err := engine.RegisterFilter(" ", shout); err == nil {
		t.Fatalf("expected error for empty name")
	}

	result, err := engine.RenderString("{{ name|formfield_shout }}", map[string]any{"name": "ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if result != "ADA!" {
		t.Fatalf("unexpected output %q", result)
	}
}

func TestEngineErrors(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatalf("expected error without template source")
	}
	if _, err := newEngine(t).RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected missing template error")
	}

	var nilEngine *Engine
	if _, err := nilEngine.RenderTemplate("hello", nil); err == nil {
		t.Fatalf("expected nil engine error")
	}
}
