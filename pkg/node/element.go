package node

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strconv"
)

// Well-known prop keys. Components and the intrinsic renderer interpret these;
// anything else on an intrinsic element is emitted as an attribute.
const (
	PropID        = "id"
	PropInputID   = "inputId"
	PropClassName = "className"
	PropHTMLFor   = "htmlFor"
	PropInvalid   = "invalid"
	PropLoading   = "loading"
	PropDisabled  = "disabled"
)

// Component renders props and children into a node at render time.
type Component func(props Props, children []Node) Node

// Element pairs a type with props and children. Type is either an intrinsic
// tag name (string) or a Component.
type Element struct {
	Type     any
	Props    Props
	Children []Node
}

// New builds an element of any supported type.
func New(typ any, props Props, children ...Node) *Element {
	if props == nil {
		props = Props{}
	}
	return &Element{
		Type:     typ,
		Props:    props,
		Children: Compact(children...),
	}
}

// El builds an intrinsic element.
func El(tag string, props Props, children ...Node) *Element {
	return New(tag, props, children...)
}

// Clone returns a copy of e whose props are e's props merged with overrides.
// Keys absent from overrides keep e's values; e itself is left untouched.
func (e *Element) Clone(overrides Props) *Element {
	if e == nil {
		return nil
	}
	children := make([]Node, len(e.Children))
	copy(children, e.Children)
	return &Element{
		Type:     e.Type,
		Props:    e.Props.Merge(overrides),
		Children: children,
	}
}

// Tag returns the intrinsic tag name, or "" for component elements.
func (e *Element) Tag() string {
	if e == nil {
		return ""
	}
	tag, _ := e.Type.(string)
	return tag
}

// Render writes the element. A nil element renders nothing.
func (e *Element) Render(w io.Writer) error {
	if e == nil {
		return nil
	}
	switch t := e.Type.(type) {
	case string:
		return renderIntrinsic(w, t, e.Props, e.Children)
	case Component:
		return renderComponent(w, t, e.Props, e.Children)
	case func(Props, []Node) Node:
		return renderComponent(w, t, e.Props, e.Children)
	default:
		return fmt.Errorf("node: unsupported element type %T", e.Type)
	}
}

func renderComponent(w io.Writer, fn Component, props Props, children []Node) error {
	if fn == nil {
		return nil
	}
	out := fn(props.Clone(), children)
	if IsEmpty(out) {
		return nil
	}
	return out.Render(w)
}

var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {}, "img": {},
	"input": {}, "link": {}, "meta": {}, "source": {}, "track": {}, "wbr": {},
}

func renderIntrinsic(w io.Writer, tag string, props Props, children []Node) error {
	if tag == "" {
		return Fragment(children).Render(w)
	}
	ew := &errWriter{w: w}
	ew.write("<" + tag)
	for _, attr := range attributes(props) {
		ew.write(" " + attr.name)
		if attr.bare {
			continue
		}
		ew.write(`="` + html.EscapeString(attr.value) + `"`)
	}
	ew.write(">")
	if ew.err != nil {
		return ew.err
	}

	if _, void := voidElements[tag]; void {
		return nil
	}

	for _, child := range children {
		if IsEmpty(child) {
			continue
		}
		if err := child.Render(w); err != nil {
			return err
		}
	}
	ew.write("</" + tag + ">")
	return ew.err
}

type attribute struct {
	name  string
	value string
	bare  bool
}

func attributes(props Props) []attribute {
	if len(props) == 0 {
		return nil
	}
	byName := make(map[string]attribute, len(props))
	for key, value := range props {
		switch key {
		case PropInputID:
			continue
		case PropInvalid:
			if truthy(value) {
				byName["aria-invalid"] = attribute{name: "aria-invalid", value: "true"}
			}
			continue
		case PropLoading:
			if truthy(value) {
				byName["aria-busy"] = attribute{name: "aria-busy", value: "true"}
				byName["data-loading"] = attribute{name: "data-loading", bare: true}
			}
			continue
		}

		name := attributeName(key)
		if !validAttributeName(name) {
			continue
		}
		switch v := value.(type) {
		case nil:
		case bool:
			if v {
				byName[name] = attribute{name: name, bare: true}
			}
		case string:
			if key == PropClassName && v == "" {
				continue
			}
			byName[name] = attribute{name: name, value: v}
		case int:
			byName[name] = attribute{name: name, value: strconv.Itoa(v)}
		case int64:
			byName[name] = attribute{name: name, value: strconv.FormatInt(v, 10)}
		case float64:
			byName[name] = attribute{name: name, value: strconv.FormatFloat(v, 'f', -1, 64)}
		case fmt.Stringer:
			byName[name] = attribute{name: name, value: v.String()}
		default:
			// slices, maps, and funcs only mean something to components
		}
	}

	out := make([]attribute, 0, len(byName))
	for _, attr := range byName {
		out = append(out, attr)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

func attributeName(key string) string {
	switch key {
	case PropClassName:
		return "class"
	case PropHTMLFor:
		return "for"
	default:
		return key
	}
}

// validAttributeName rejects names the HTML attribute-name grammar does not
// allow, so prop keys cannot close the tag or start a new one.
func validAttributeName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r <= 0x20, r == 0x7f, r >= 0x80 && r <= 0x9f:
			return false
		case r == '"', r == '\'', r == '>', r == '<', r == '/', r == '=':
			return false
		}
	}
	return true
}

func truthy(value any) bool {
	v, ok := value.(bool)
	return ok && v
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) write(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}
