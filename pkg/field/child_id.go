package field

import "github.com/goliatone/go-formfield/pkg/node"

// ChildID infers the control identifier from the child's props. inputId wins
// over id because composite controls put their focusable element's id there.
// Anything other than a string, or a child without props, yields "".
func ChildID(child *node.Element) (id string) {
	defer func() {
		if recover() != nil {
			id = ""
		}
	}()
	if child == nil || child.Props == nil {
		return ""
	}

	var inferred any
	if child.Props.Has(node.PropID) {
		inferred = child.Props[node.PropID]
	}
	if child.Props.Has(node.PropInputID) {
		inferred = child.Props[node.PropInputID]
	}
	value, _ := inferred.(string)
	return value
}
