package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formfield/pkg/controls"
	"github.com/goliatone/go-formfield/pkg/schema"
)

var inputTypes = []string{"text", "email", "password", "number", "date", "url"}

// Collect walks the user through one field definition. Controls are offered
// from registry, the default registry when nil.
func Collect(ctx context.Context, driver Driver, registry *controls.Registry) (schema.Spec, error) {
	if driver == nil {
		return schema.Spec{}, errors.New("prompt: driver is nil")
	}
	if registry == nil {
		registry = controls.NewDefaultRegistry()
	}

	var spec schema.Spec
	var err error

	if spec.Name, err = driver.Input(ctx, InputConfig{
		Message:   "Field name",
		Help:      "Form name of the control, dotted for nested values.",
		Validator: requireValue,
	}); err != nil {
		return schema.Spec{}, err
	}
	spec.Name = strings.TrimSpace(spec.Name)

	if spec.Label, err = driver.Input(ctx, InputConfig{
		Message: "Label",
		Default: schema.Humanize(spec.Name),
		Help:    "Leave empty to render the field without a label.",
	}); err != nil {
		return schema.Spec{}, err
	}

	names := registry.Names()
	choice, err := driver.Select(ctx, SelectConfig{
		Message:      "Control",
		Options:      names,
		DefaultIndex: indexOf(names, controls.NameInput),
	})
	if err != nil {
		return schema.Spec{}, err
	}
	if choice < 0 || choice >= len(names) {
		return schema.Spec{}, fmt.Errorf("prompt: invalid control choice %d", choice)
	}
	spec.Control = names[choice]

	switch spec.Control {
	case controls.NameInput:
		typeChoice, err := driver.Select(ctx, SelectConfig{Message: "Input type", Options: inputTypes})
		if err != nil {
			return schema.Spec{}, err
		}
		if typeChoice > 0 && typeChoice < len(inputTypes) {
			spec.Type = inputTypes[typeChoice]
		}
		if spec.Placeholder, err = driver.Input(ctx, InputConfig{Message: "Placeholder"}); err != nil {
			return schema.Spec{}, err
		}
	case controls.NameSelect:
		if spec.Options, err = collectOptions(ctx, driver); err != nil {
			return schema.Spec{}, err
		}
	}

	if spec.Description, err = driver.TextArea(ctx, TextAreaConfig{
		Message: "Description",
		Help:    "Markdown is supported.",
	}); err != nil {
		return schema.Spec{}, err
	}
	if strings.TrimSpace(spec.Description) != "" {
		spec.DescriptionFormat = schema.FormatMarkdown
	}

	if spec.Required, err = driver.Confirm(ctx, ConfirmConfig{Message: "Required?"}); err != nil {
		return schema.Spec{}, err
	}
	if spec.Horizontal, err = driver.Confirm(ctx, ConfirmConfig{Message: "Horizontal layout?"}); err != nil {
		return schema.Spec{}, err
	}
	spec.AutoID = true

	if err := spec.Validate(); err != nil {
		return schema.Spec{}, err
	}
	return spec, nil
}

func collectOptions(ctx context.Context, driver Driver) ([]schema.Option, error) {
	var options []schema.Option
	for {
		value, err := driver.Input(ctx, InputConfig{
			Message: fmt.Sprintf("Option %d value", len(options)+1),
			Help:    "Leave empty to finish.",
		})
		if err != nil {
			return nil, err
		}
		value = strings.TrimSpace(value)
		if value == "" {
			break
		}
		options = append(options, schema.Option{Value: value, Label: schema.Humanize(value)})
	}
	if len(options) == 0 {
		if err := driver.Info(ctx, "select has no options"); err != nil {
			return nil, err
		}
	}
	return options, nil
}

func requireValue(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("a value is required")
	}
	return nil
}
