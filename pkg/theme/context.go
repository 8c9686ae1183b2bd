package theme

import "context"

type contextKey struct{}

// WithTheme makes t the ambient theme for everything rendered with ctx.
func WithTheme(ctx context.Context, t *Theme) context.Context {
	if t == nil {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, t)
}

// FromContext returns the ambient theme, or Default when none is set.
func FromContext(ctx context.Context) *Theme {
	if ctx != nil {
		if t, ok := ctx.Value(contextKey{}).(*Theme); ok && t != nil {
			return t
		}
	}
	return Default()
}
