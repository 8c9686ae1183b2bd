// Package theme supplies the ambient design tokens field components read at
// render time. Themes are built from go-theme manifests and selections and
// travel through context.Context:
//
//	ctx = theme.WithTheme(ctx, theme.FromSelection(selection))
//	margin := theme.FromContext(ctx).Spacing(2) // "16px" on the default grid
package theme
