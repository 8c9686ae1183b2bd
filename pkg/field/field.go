package field

import (
	"context"

	"github.com/goliatone/go-formfield/pkg/node"
	"github.com/goliatone/go-formfield/pkg/style"
	"github.com/goliatone/go-formfield/pkg/theme"
)

// RequiredSuffix is appended to plain text labels of required fields.
const RequiredSuffix = " *"

// Props is the render configuration for a single field. It is built by the
// caller for each render and never retained.
type Props struct {
	// Label is either plain text (node.Text), which gets wrapped in a Label
	// bound to the control, or any other node rendered as is.
	Label node.Node
	// Description is shown under a plain text label.
	Description node.Node
	// Invalid, Loading, and Disabled are forwarded to the child only when set.
	Invalid  *bool
	Loading  *bool
	Disabled *bool
	// Required only affects plain text labels.
	Required bool
	// Error is displayed when Invalid is true.
	Error node.Node
	// Horizontal places label and control side by side.
	Horizontal bool
	// ValidationMessageHorizontalOverflow lets the validation message overflow
	// horizontally instead of pushing adjacent inline components.
	ValidationMessageHorizontalOverflow bool
	// HTMLFor overrides the identifier inferred from the child.
	HTMLFor *string
	// ClassName is appended to the container classes.
	ClassName string
	// Child is the single control, i.e. an input or switch.
	Child *node.Element
	// Attrs are forwarded onto the container element (aria-*, data-*, ...).
	Attrs node.Props
}

// Render builds the field tree using the theme and stylesheet carried by ctx.
func Render(ctx context.Context, props Props) *node.Element {
	th := theme.FromContext(ctx)
	classes := getStyles(th).register(style.SheetFromContext(ctx))

	inputID := resolveInputID(props)
	label := deriveLabel(ctx, props, inputID)
	child := props.Child.Clone(childOverrides(props))

	showMessage := isTrue(props.Invalid) && !node.IsEmpty(props.Error)
	overflow := style.If(props.ValidationMessageHorizontalOverflow, classes.validationMessageHorizontalOverflow)

	var inline, row node.Node
	if showMessage && !props.Horizontal {
		inline = node.El("div", node.Props{
			node.PropClassName: style.Cx(classes.fieldValidationWrapper, overflow),
		}, ValidationMessage(ctx, props.Error))
	}
	if showMessage && props.Horizontal {
		row = node.El("div", node.Props{
			node.PropClassName: style.Cx(classes.fieldValidationWrapper, classes.fieldValidationWrapperHorizontal, overflow),
		}, ValidationMessage(ctx, props.Error))
	}

	attrs := props.Attrs.Clone()
	attrs[node.PropClassName] = style.Cx(classes.field, style.If(props.Horizontal, classes.fieldHorizontal), props.ClassName)

	return node.El("div", attrs,
		label,
		node.El("div", nil, child, inline),
		row,
	)
}

// resolveInputID returns nil when neither an explicit nor an inferred id
// exists. An explicit empty HTMLFor is kept.
func resolveInputID(props Props) *string {
	if props.HTMLFor != nil {
		return props.HTMLFor
	}
	if id := ChildID(props.Child); id != "" {
		return &id
	}
	return nil
}

func deriveLabel(ctx context.Context, props Props, inputID *string) node.Node {
	text, ok := props.Label.(node.Text)
	if !ok {
		return props.Label
	}
	content := string(text)
	if props.Required {
		content += RequiredSuffix
	}
	return Label(ctx, LabelProps{
		HTMLFor:     inputID,
		Description: props.Description,
		Children:    node.Text(content),
	})
}

// childOverrides lists only the state flags the caller set, so the child keeps
// its own defaults for the rest.
func childOverrides(props Props) node.Props {
	overrides := node.Props{}
	if props.Invalid != nil {
		overrides[node.PropInvalid] = *props.Invalid
	}
	if props.Disabled != nil {
		overrides[node.PropDisabled] = *props.Disabled
	}
	if props.Loading != nil {
		overrides[node.PropLoading] = *props.Loading
	}
	return overrides
}

func isTrue(v *bool) bool {
	return v != nil && *v
}

// Bool returns a pointer to v for the optional flags.
func Bool(v bool) *bool {
	return &v
}

// String returns a pointer to v for HTMLFor.
func String(v string) *string {
	return &v
}
