package controls

import (
	"strings"

	"github.com/rs/xid"

	"github.com/goliatone/go-formfield/pkg/node"
)

const (
	propOptions = "options"
	propValue   = "value"
)

// Option mutates the props of a control under construction.
type Option func(node.Props)

// SelectOption is a single <option> entry.
type SelectOption struct {
	Value string
	Label string
}

// WithID sets the control id the field label binds to.
func WithID(id string) Option {
	return WithAttr(node.PropID, strings.TrimSpace(id))
}

// WithName sets the form name.
func WithName(name string) Option {
	return WithAttr("name", strings.TrimSpace(name))
}

// WithType sets the input type.
func WithType(typ string) Option {
	return WithAttr("type", strings.TrimSpace(typ))
}

// WithPlaceholder sets the placeholder text.
func WithPlaceholder(text string) Option {
	return WithAttr("placeholder", text)
}

// WithValue sets the current value.
func WithValue(value string) Option {
	return WithAttr(propValue, value)
}

// WithClass sets the control class list.
func WithClass(class string) Option {
	return WithAttr(node.PropClassName, strings.TrimSpace(class))
}

// WithOptions sets the entries of a select control.
func WithOptions(options ...SelectOption) Option {
	return func(p node.Props) {
		if len(options) == 0 {
			return
		}
		cloned := make([]SelectOption, len(options))
		copy(cloned, options)
		p[propOptions] = cloned
	}
}

// WithAttr sets an arbitrary prop. Empty string values are ignored.
func WithAttr(key string, value any) Option {
	return func(p node.Props) {
		key = strings.TrimSpace(key)
		if key == "" {
			return
		}
		if s, ok := value.(string); ok && s == "" {
			return
		}
		p[key] = value
	}
}

// GenerateID returns a unique control id with the given prefix.
func GenerateID(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "ff"
	}
	return prefix + "-" + xid.New().String()
}

func build(defaults node.Props, opts []Option) node.Props {
	props := defaults.Clone()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(props)
	}
	return props
}

// Input builds a text-like <input>. The type defaults to "text".
func Input(opts ...Option) *node.Element {
	return node.El("input", build(node.Props{"type": "text"}, opts))
}

// Checkbox builds an <input type="checkbox">. A "checked" bool prop marks it
// selected.
func Checkbox(opts ...Option) *node.Element {
	props := build(nil, opts)
	props["type"] = "checkbox"
	return node.El("input", props)
}

// TextArea builds a <textarea>; the value prop becomes its content.
func TextArea(opts ...Option) *node.Element {
	return node.New(node.Component(renderTextArea), build(nil, opts))
}

func renderTextArea(props node.Props, _ []node.Node) node.Node {
	value, _ := props.String(propValue)
	return node.El("textarea", props.Without(propValue), node.Text(value))
}

// Select builds a <select> from the options prop, marking the entry matching
// the value prop.
func Select(opts ...Option) *node.Element {
	return node.New(node.Component(renderSelect), build(nil, opts))
}

func renderSelect(props node.Props, _ []node.Node) node.Node {
	value, _ := props.String(propValue)
	options, _ := props[propOptions].([]SelectOption)

	children := make([]node.Node, 0, len(options))
	for _, option := range options {
		label := option.Label
		if label == "" {
			label = option.Value
		}
		attrs := node.Props{propValue: option.Value}
		if value != "" && option.Value == value {
			attrs["selected"] = true
		}
		children = append(children, node.El("option", attrs, node.Text(label)))
	}
	return node.El("select", props.Without(propValue, propOptions), children...)
}

// Switch builds a toggle made of a wrapping label and a checkbox. The id
// given through WithID lands on the inner checkbox and is exposed to the
// field as inputId.
func Switch(opts ...Option) *node.Element {
	props := build(nil, opts)
	if id, ok := props.String(node.PropID); ok {
		delete(props, node.PropID)
		props[node.PropInputID] = id
	}
	return node.New(node.Component(renderSwitch), props)
}

func renderSwitch(props node.Props, _ []node.Node) node.Node {
	input := props.Without(node.PropInputID, node.PropClassName)
	input["type"] = "checkbox"
	input["role"] = "switch"
	if id, ok := props.String(node.PropInputID); ok && id != "" {
		input[node.PropID] = id
	}

	class, _ := props.String(node.PropClassName)
	wrapper := node.Props{node.PropClassName: strings.TrimSpace("ff-switch " + class)}
	if props.Bool(node.PropDisabled) {
		wrapper["data-disabled"] = true
	}
	return node.El("span", wrapper,
		node.El("input", input),
		node.El("span", node.Props{node.PropClassName: "ff-switch__slider", "aria-hidden": "true"}),
	)
}
