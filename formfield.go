package formfield

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/node"
	"github.com/goliatone/go-formfield/pkg/render/page"
	"github.com/goliatone/go-formfield/pkg/schema"
	"github.com/goliatone/go-formfield/pkg/theme"
)

// Props aliases field.Props so simple callers only import the root package.
type Props = field.Props

// Document aliases page.Document.
type Document = page.Document

// Fragment aliases page.Fragment.
type Fragment = page.Fragment

// Render builds one field tree. The theme and stylesheet come from ctx.
func Render(ctx context.Context, props Props) node.Node {
	return field.Render(ctx, props)
}

// RenderHTML renders fields with th (the default theme when nil) and returns
// the markup together with the CSS its classes need.
func RenderHTML(ctx context.Context, th *theme.Theme, fields ...Props) (Fragment, error) {
	renderer, err := page.New()
	if err != nil {
		return Fragment{}, err
	}
	return renderer.RenderFragment(ctx, th, fields...)
}

// RenderPage renders a document with the embedded page template.
func RenderPage(ctx context.Context, doc Document) ([]byte, error) {
	renderer, err := page.New()
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, doc)
}

// RenderYAML decodes a fields document, applies its error payload, and
// renders it as a page with th.
func RenderYAML(ctx context.Context, data []byte, th *theme.Theme) ([]byte, error) {
	file, err := schema.Decode(data)
	if err != nil {
		return nil, err
	}
	specs, formErrors := schema.ApplyErrors(file.Fields, file.Errors)
	fields, err := schema.PropsList(specs, nil)
	if err != nil {
		return nil, err
	}
	return RenderPage(ctx, Document{
		Title:      file.Title,
		Theme:      th,
		Fields:     fields,
		FormErrors: formErrors,
	})
}

// EmbeddedTemplates exposes the built-in page template so callers can reuse or
// extend it without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return page.TemplatesFS()
}
