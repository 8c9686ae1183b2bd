package field

import (
	"context"

	"github.com/goliatone/go-formfield/pkg/node"
	"github.com/goliatone/go-formfield/pkg/style"
	"github.com/goliatone/go-formfield/pkg/theme"
)

const validationIcon = "⚠"

// ValidationMessage renders payload as an alert. An empty payload renders
// nothing.
func ValidationMessage(ctx context.Context, payload node.Node) node.Node {
	if node.IsEmpty(payload) {
		return nil
	}
	th := theme.FromContext(ctx)
	sheet := style.SheetFromContext(ctx)

	messageClass := sheet.Class(style.Declare(
		"font-size", th.Token("typography.bodySmall.fontSize", "12px"),
		"font-weight", th.Token("typography.fontWeightMedium", "500"),
		"padding", th.Spacing(0.5, 1),
		"color", th.Token("colors.error.contrastText", "#ffffff"),
		"background", th.Token("colors.error.main", "#d10e5c"),
		"border-radius", th.Token("shape.radius.default", "2px"),
		"position", "relative",
		"display", "inline-block",
	))
	iconClass := sheet.Class(style.Declare(
		"margin-right", th.Spacing(0.5),
	))

	return node.El("div", node.Props{
		node.PropClassName: messageClass,
		"role":             "alert",
	},
		node.El("span", node.Props{node.PropClassName: iconClass, "aria-hidden": "true"}, node.Text(validationIcon)),
		payload,
	)
}
