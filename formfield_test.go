package formfield

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-formfield/pkg/controls"
	"github.com/goliatone/go-formfield/pkg/node"
	"github.com/goliatone/go-formfield/pkg/theme"
)

func TestRenderHTML(t *testing.T) {
	th := theme.New("compact", "", map[string]string{theme.GridSizeToken: "10"})
	fragment, err := RenderHTML(context.Background(), th, Props{
		Label: node.Text("City"),
		Child: controls.Input(controls.WithID("city")),
	})
	if err != nil {
		t.Fatalf("render html: %v", err)
	}
	if !strings.Contains(fragment.HTML, `for="city"`) {
		t.Fatalf("label not bound to control:\n%s", fragment.HTML)
	}
	if !strings.Contains(fragment.CSS, "margin-bottom:20px;") {
		t.Fatalf("expected spacing from the theme grid:\n%s", fragment.CSS)
	}
}

func TestRenderYAML(t *testing.T) {
	doc := []byte(`
title: Signup
fields:
  - name: email
    label: Email
    type: email
    id: email
    required: true
errors:
  body.email: [already taken]
`)
	out, err := RenderYAML(context.Background(), doc, nil)
	if err != nil {
		t.Fatalf("render yaml: %v", err)
	}
	html := string(out)
	for _, want := range []string{"<title>Signup</title>", "Email *", "already taken", `aria-invalid="true"`} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}

	if _, err := RenderYAML(context.Background(), []byte("fields: []"), nil); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	if _, err := fs.Stat(EmbeddedTemplates(), "page.tmpl"); err != nil {
		t.Fatalf("page template missing: %v", err)
	}
}
