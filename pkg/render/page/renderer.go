package page

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/node"
	rendertemplate "github.com/goliatone/go-formfield/pkg/render/template"
	"github.com/goliatone/go-formfield/pkg/render/template/pongo"
	"github.com/goliatone/go-formfield/pkg/style"
	"github.com/goliatone/go-formfield/pkg/theme"
)

// ContentType of rendered documents.
const ContentType = "text/html; charset=utf-8"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.Renderer
	lang             string
}

// WithTemplatesFS supplies an alternate template bundle holding page.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads the page template from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.Renderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithLang sets the document language, "en" by default.
func WithLang(lang string) Option {
	return func(cfg *config) {
		if lang = strings.TrimSpace(lang); lang != "" {
			cfg.lang = lang
		}
	}
}

// Document is one page worth of fields.
type Document struct {
	Title string
	// Theme overrides the theme carried by the render context.
	Theme      *theme.Theme
	Action     string
	Method     string
	Fields     []field.Props
	FormErrors []string
}

// Fragment is rendered field markup plus the rules its classes need.
type Fragment struct {
	HTML string
	CSS  string
}

// Renderer turns field props into standalone HTML documents.
type Renderer struct {
	templates rendertemplate.Renderer
	lang      string
}

// New constructs the page renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), lang: "en"}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(pongo.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("page renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}
	return &Renderer{templates: renderer, lang: cfg.lang}, nil
}

// ContentType reports the media type of Render output.
func (r *Renderer) ContentType() string {
	return ContentType
}

// Render produces a full HTML document. Every call collects styles into a
// fresh sheet so the document only carries the rules its fields use.
func (r *Renderer) Render(ctx context.Context, doc Document) ([]byte, error) {
	if r == nil || r.templates == nil {
		return nil, fmt.Errorf("page renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, th, sheet := prepare(ctx, doc.Theme)

	formErrors := make([]string, 0, len(doc.FormErrors))
	for _, message := range doc.FormErrors {
		if strings.TrimSpace(message) == "" {
			continue
		}
		markup, err := node.String(field.ValidationMessage(ctx, node.Text(message)))
		if err != nil {
			return nil, fmt.Errorf("page renderer: render form error: %w", err)
		}
		formErrors = append(formErrors, markup)
	}

	fields, err := renderFields(ctx, doc.Fields)
	if err != nil {
		return nil, err
	}

	method := strings.ToLower(strings.TrimSpace(doc.Method))
	if method == "" {
		method = "post"
	}

	result, err := r.templates.RenderTemplate(PageTemplate, map[string]any{
		"lang":       r.lang,
		"title":      doc.Title,
		"theme":      th.Name,
		"variant":    th.Variant,
		"action":     doc.Action,
		"method":     method,
		"cssVars":    th.CSSVarsBlock(),
		"stylesheet": sheet.CSS(),
		"formErrors": formErrors,
		"fields":     fields,
	})
	if err != nil {
		return nil, fmt.Errorf("page renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// RenderFragment renders fields without the document shell.
func (r *Renderer) RenderFragment(ctx context.Context, th *theme.Theme, fields ...field.Props) (Fragment, error) {
	if err := ctx.Err(); err != nil {
		return Fragment{}, err
	}
	ctx, _, sheet := prepare(ctx, th)

	markup, err := renderFields(ctx, fields)
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{HTML: strings.Join(markup, "\n"), CSS: sheet.CSS()}, nil
}

func prepare(ctx context.Context, override *theme.Theme) (context.Context, *theme.Theme, *style.Sheet) {
	th := override
	if th == nil {
		th = theme.FromContext(ctx)
	}
	sheet := style.NewSheet()
	ctx = style.WithSheet(theme.WithTheme(ctx, th), sheet)
	return ctx, th, sheet
}

func renderFields(ctx context.Context, fields []field.Props) ([]string, error) {
	out := make([]string, 0, len(fields))
	for i, props := range fields {
		markup, err := node.String(field.Render(ctx, props))
		if err != nil {
			return nil, fmt.Errorf("page renderer: render field %d: %w", i, err)
		}
		out = append(out, markup)
	}
	return out, nil
}
