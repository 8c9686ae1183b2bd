package field

import (
	"context"

	"github.com/goliatone/go-formfield/pkg/node"
	"github.com/goliatone/go-formfield/pkg/style"
	"github.com/goliatone/go-formfield/pkg/theme"
)

// LabelProps configures Label.
type LabelProps struct {
	// HTMLFor binds the label to a control id. Nil leaves it unbound; an
	// empty id still renders for="".
	HTMLFor     *string
	Description node.Node
	Children    node.Node
	ClassName   string
}

// Label renders a <label> with optional description underneath the content.
func Label(ctx context.Context, props LabelProps) *node.Element {
	th := theme.FromContext(ctx)
	sheet := style.SheetFromContext(ctx)

	labelClass := sheet.Class(style.Declare(
		"font-size", th.Token("typography.bodySmall.fontSize", "12px"),
		"font-weight", th.Token("typography.fontWeightMedium", "500"),
		"line-height", "1.25",
		"margin-bottom", th.Spacing(0.5),
		"max-width", "480px",
	))
	contentClass := sheet.Class(style.Declare(
		"display", "flex",
		"align-items", "center",
	))
	descriptionClass := sheet.Class(style.Declare(
		"color", th.Token("colors.text.secondary", "#6e6e6e"),
		"font-size", th.Token("typography.bodySmall.fontSize", "12px"),
		"font-weight", th.Token("typography.fontWeightRegular", "400"),
		"margin-top", th.Spacing(0.25),
		"display", "block",
	))

	attrs := node.Props{
		node.PropClassName: style.Cx(labelClass, props.ClassName),
	}
	if props.HTMLFor != nil {
		attrs[node.PropHTMLFor] = *props.HTMLFor
	}

	var description node.Node
	if !node.IsEmpty(props.Description) {
		description = node.El("span", node.Props{node.PropClassName: descriptionClass}, props.Description)
	}

	return node.El("label", attrs,
		node.El("span", node.Props{node.PropClassName: contentClass}, props.Children),
		description,
	)
}
