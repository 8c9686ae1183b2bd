package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfield/pkg/render/page"
)

var (
	renderFile     string
	renderOutput   string
	renderFragment bool
	renderTemplate string
)

var renderCmd = &cobra.Command{
	Use:     "render",
	Short:   "Render a fields file to HTML.",
	Long:    "Render a YAML fields file (fields, optional error payload, theme) into a themed HTML page or fragment.",
	Example: "fieldgen render -f profile.yaml -o profile.html",
	Args:    cobra.NoArgs,
	RunE:    renderRun,
}

func init() {
	renderCmd.Flags().StringVarP(&renderFile, "file", "f", "", "fields file path or URL (YAML or JSON)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (stdout if empty)")
	renderCmd.Flags().BoolVar(&renderFragment, "fragment", false, "render the fields without the page shell")
	renderCmd.Flags().StringVar(&renderTemplate, "templates", "", "directory holding a custom page.tmpl")
	_ = renderCmd.MarkFlagRequired("file")
}

func renderRun(cmd *cobra.Command, args []string) error {
	doc, err := loadFieldsDocument(cmd.Context(), renderFile)
	if err != nil {
		return err
	}
	return emit(cmd, doc, renderTemplate, renderFragment, renderOutput)
}

func emit(cmd *cobra.Command, doc page.Document, templatesDir string, fragment bool, output string) error {
	renderer, err := page.New(page.WithTemplatesDir(templatesDir))
	if err != nil {
		return errors.WithStack(err)
	}

	if fragment {
		frag, err := renderer.RenderFragment(cmd.Context(), doc.Theme, doc.Fields...)
		if err != nil {
			return errors.WithStack(err)
		}
		var b strings.Builder
		if frag.CSS != "" {
			b.WriteString("<style>\n")
			b.WriteString(frag.CSS)
			b.WriteString("\n</style>\n")
		}
		b.WriteString(frag.HTML)
		b.WriteString("\n")
		return writeOutput(output, []byte(b.String()))
	}

	out, err := renderer.Render(cmd.Context(), doc)
	if err != nil {
		return errors.WithStack(err)
	}
	return writeOutput(output, out)
}
