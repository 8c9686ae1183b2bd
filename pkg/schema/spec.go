package schema

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formfield/pkg/controls"
	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/node"
)

// Content formats accepted for descriptions and errors.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Spec declares one field in a YAML or JSON document.
type Spec struct {
	Name              string            `yaml:"name" json:"name" validate:"required"`
	Label             string            `yaml:"label,omitempty" json:"label,omitempty"`
	Description       string            `yaml:"description,omitempty" json:"description,omitempty"`
	DescriptionFormat string            `yaml:"descriptionFormat,omitempty" json:"descriptionFormat,omitempty" validate:"omitempty,oneof=text markdown html"`
	Control           string            `yaml:"control,omitempty" json:"control,omitempty"`
	Type              string            `yaml:"type,omitempty" json:"type,omitempty"`
	Placeholder       string            `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Value             string            `yaml:"value,omitempty" json:"value,omitempty"`
	Checked           bool              `yaml:"checked,omitempty" json:"checked,omitempty"`
	Options           []Option          `yaml:"options,omitempty" json:"options,omitempty" validate:"dive"`
	Required          bool              `yaml:"required,omitempty" json:"required,omitempty"`
	Invalid           *bool             `yaml:"invalid,omitempty" json:"invalid,omitempty"`
	Disabled          *bool             `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	Loading           *bool             `yaml:"loading,omitempty" json:"loading,omitempty"`
	Error             string            `yaml:"error,omitempty" json:"error,omitempty"`
	ErrorFormat       string            `yaml:"errorFormat,omitempty" json:"errorFormat,omitempty" validate:"omitempty,oneof=text html"`
	Horizontal        bool              `yaml:"horizontal,omitempty" json:"horizontal,omitempty"`
	Overflow          bool              `yaml:"validationMessageHorizontalOverflow,omitempty" json:"validationMessageHorizontalOverflow,omitempty"`
	HTMLFor           *string           `yaml:"htmlFor,omitempty" json:"htmlFor,omitempty"`
	ID                string            `yaml:"id,omitempty" json:"id,omitempty"`
	AutoID            bool              `yaml:"autoId,omitempty" json:"autoId,omitempty"`
	Class             string            `yaml:"class,omitempty" json:"class,omitempty"`
	Attrs             map[string]string `yaml:"attrs,omitempty" json:"attrs,omitempty"`
	InputAttrs        map[string]string `yaml:"inputAttrs,omitempty" json:"inputAttrs,omitempty"`
}

// Option is a select entry.
type Option struct {
	Value string `yaml:"value" json:"value" validate:"required"`
	Label string `yaml:"label,omitempty" json:"label,omitempty"`
}

// File is a document of field specs plus an optional server error payload
// keyed by field path.
type File struct {
	Title   string              `yaml:"title,omitempty" json:"title,omitempty"`
	Theme   string              `yaml:"theme,omitempty" json:"theme,omitempty"`
	Variant string              `yaml:"variant,omitempty" json:"variant,omitempty"`
	Fields  []Spec              `yaml:"fields" json:"fields" validate:"required,min=1,dive"`
	Errors  map[string][]string `yaml:"errors,omitempty" json:"errors,omitempty"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func specValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Decode parses and validates a YAML (or JSON) field document.
func Decode(data []byte) (File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return File{}, fmt.Errorf("schema: decode fields: %w", err)
	}
	if err := file.Validate(); err != nil {
		return File{}, err
	}
	return file, nil
}

// Validate checks the document structure.
func (f File) Validate() error {
	if err := specValidator().Struct(f); err != nil {
		return fmt.Errorf("schema: invalid fields document: %w", err)
	}
	return nil
}

// Validate checks a single spec.
func (s Spec) Validate() error {
	if err := specValidator().Struct(s); err != nil {
		return fmt.Errorf("schema: invalid field %q: %w", s.Name, err)
	}
	return nil
}

// Props converts the spec into field render props, building the control with
// registry (the default registry when nil).
func (s Spec) Props(registry *controls.Registry) (field.Props, error) {
	if err := s.Validate(); err != nil {
		return field.Props{}, err
	}
	if registry == nil {
		registry = controls.NewDefaultRegistry()
	}

	controlName := strings.TrimSpace(s.Control)
	if controlName == "" {
		controlName = controls.NameInput
	}
	child, err := registry.Build(controlName, s.controlOptions()...)
	if err != nil {
		return field.Props{}, fmt.Errorf("schema: field %q: %w", s.Name, err)
	}

	description, err := content(s.Description, s.DescriptionFormat)
	if err != nil {
		return field.Props{}, fmt.Errorf("schema: field %q description: %w", s.Name, err)
	}
	errNode, err := content(s.Error, s.ErrorFormat)
	if err != nil {
		return field.Props{}, fmt.Errorf("schema: field %q error: %w", s.Name, err)
	}

	props := field.Props{
		Description:                         description,
		Invalid:                             s.Invalid,
		Loading:                             s.Loading,
		Disabled:                            s.Disabled,
		Required:                            s.Required,
		Error:                               errNode,
		Horizontal:                          s.Horizontal,
		ValidationMessageHorizontalOverflow: s.Overflow,
		HTMLFor:                             s.HTMLFor,
		ClassName:                           s.Class,
		Child:                               child,
	}
	if s.Label != "" {
		props.Label = node.Text(s.Label)
	}
	if len(s.Attrs) > 0 {
		props.Attrs = make(node.Props, len(s.Attrs))
		for key, value := range s.Attrs {
			props.Attrs[key] = value
		}
	}
	return props, nil
}

func (s Spec) controlOptions() []controls.Option {
	id := s.ID
	if id == "" && s.AutoID {
		id = controls.GenerateID(s.Name)
	}
	opts := []controls.Option{
		controls.WithName(s.Name),
		controls.WithID(id),
		controls.WithPlaceholder(s.Placeholder),
		controls.WithValue(s.Value),
	}
	if s.Type != "" {
		opts = append(opts, controls.WithType(s.Type))
	}
	if s.Checked {
		opts = append(opts, controls.WithAttr("checked", true))
	}
	for key, value := range s.InputAttrs {
		opts = append(opts, controls.WithAttr(key, value))
	}
	if len(s.Options) > 0 {
		options := make([]controls.SelectOption, 0, len(s.Options))
		for _, option := range s.Options {
			options = append(options, controls.SelectOption{Value: option.Value, Label: option.Label})
		}
		opts = append(opts, controls.WithOptions(options...))
	}
	return opts
}

func content(raw, format string) (node.Node, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	switch strings.TrimSpace(format) {
	case FormatMarkdown:
		return node.Markdown(raw)
	case FormatHTML:
		return node.Sanitized(raw), nil
	default:
		return node.Text(raw), nil
	}
}

// PropsList converts every spec, stopping at the first error.
func PropsList(specs []Spec, registry *controls.Registry) ([]field.Props, error) {
	out := make([]field.Props, 0, len(specs))
	for _, spec := range specs {
		props, err := spec.Props(registry)
		if err != nil {
			return nil, err
		}
		out = append(out, props)
	}
	return out, nil
}
