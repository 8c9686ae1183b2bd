// Package field renders the form field wrapper: a label, a single control, and
// validation messaging laid out vertically or horizontally.
//
// Styles derive from the ambient theme spacing unit and are registered on the
// stylesheet carried by the context:
//
//	sheet := style.NewSheet()
//	ctx = style.WithSheet(theme.WithTheme(ctx, th), sheet)
//	tree := field.Render(ctx, field.Props{
//		Label:    node.Text("Name"),
//		Required: true,
//		Invalid:  field.Bool(true),
//		Error:    node.Text("Required"),
//		Child:    controls.Input(controls.WithName("name")),
//	})
//
// Only the state flags that are set (Invalid, Disabled, Loading) are cloned
// onto the child.
package field
