package page

import (
	"embed"
	"io/fs"
)

// PageTemplate is the document template name inside TemplatesFS.
const PageTemplate = "page.tmpl"

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded page template so callers can copy and
// customise it.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}
