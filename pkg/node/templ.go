package node

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ToComponent adapts n into a templ.Component so field trees can be embedded in
// templ layouts or served with templ.Handler.
func ToComponent(n Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if IsEmpty(n) {
			return nil
		}
		return n.Render(w)
	})
}
