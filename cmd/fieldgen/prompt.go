package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formfield/internal/prompt"
	"github.com/goliatone/go-formfield/pkg/schema"
)

var (
	promptOutput string
	promptRender bool
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Build a field definition interactively.",
	Long:  "Ask for a field's name, label, control, and flags, then print it as a fields file or render it.",
	Args:  cobra.NoArgs,
	RunE:  promptRun,
}

func init() {
	promptCmd.Flags().StringVarP(&promptOutput, "output", "o", "", "output file (stdout if empty)")
	promptCmd.Flags().BoolVar(&promptRender, "render", false, "render the field as an HTML fragment instead of YAML")
}

func promptRun(cmd *cobra.Command, args []string) error {
	spec, err := prompt.Collect(cmd.Context(), prompt.NewSurveyDriver(), nil)
	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			logger.Warn("prompt aborted")
			return nil
		}
		return errors.WithStack(err)
	}

	if promptRender {
		th, err := resolveTheme("", "")
		if err != nil {
			return err
		}
		doc, err := buildDocument("", []schema.Spec{spec}, nil)
		if err != nil {
			return err
		}
		doc.Theme = th
		return emit(cmd, doc, "", true, promptOutput)
	}

	data, err := yaml.Marshal(schema.File{Fields: []schema.Spec{spec}})
	if err != nil {
		return errors.WithStack(err)
	}
	return writeOutput(promptOutput, data)
}
