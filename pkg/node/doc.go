// Package node models the renderable tree produced by field components.
//
// Elements carry a type (an intrinsic tag or a Component), props, and
// children. Cloning an element with overrides is how wrappers inject state into
// caller-supplied controls without touching the rest of their props:
//
//	input := node.El("input", node.Props{"id": "name", "type": "text"})
//	invalid := input.Clone(node.Props{"invalid": true})
//
// Intrinsic elements serialise to HTML with deterministic attribute order.
package node
