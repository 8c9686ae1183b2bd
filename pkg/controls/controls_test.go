package controls

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/node"
	"github.com/goliatone/go-formfield/pkg/testsupport"
)

func TestControlMarkup(t *testing.T) {
	cases := []struct {
		name string
		el   *node.Element
		want string
	}{
		{
			name: "input",
			el:   Input(WithID("name"), WithName("name"), WithPlaceholder("Jane")),
			want: `<input id="name" name="name" placeholder="Jane" type="text">`,
		},
		{
			name: "input with field state",
			el:   Input().Clone(node.Props{"invalid": true, "disabled": true}),
			want: `<input aria-invalid="true" disabled type="text">`,
		},
		{
			name: "textarea",
			el:   TextArea(WithName("bio"), WithValue("<hi>")),
			want: `<textarea name="bio">&lt;hi&gt;</textarea>`,
		},
		{
			name: "select",
			el: Select(WithID("s"), WithValue("b"), WithOptions(
				SelectOption{Value: "a", Label: "A"},
				SelectOption{Value: "b"},
			)),
			want: `<select id="s"><option value="a">A</option><option selected value="b">b</option></select>`,
		},
		{
			name: "switch",
			el:   Switch(WithID("sw"), WithName("enabled")),
			want: `<span class="ff-switch"><input id="sw" name="enabled" role="switch" type="checkbox"><span aria-hidden="true" class="ff-switch__slider"></span></span>`,
		},
		{
			name: "disabled switch",
			el:   Switch(WithID("sw")).Clone(node.Props{"disabled": true}),
			want: `<span class="ff-switch" data-disabled><input disabled id="sw" role="switch" type="checkbox"><span aria-hidden="true" class="ff-switch__slider"></span></span>`,
		},
		{
			name: "checkbox",
			el:   Checkbox(WithName("tos"), WithAttr("checked", true)),
			want: `<input checked name="tos" type="checkbox">`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := testsupport.MustRender(t, tc.el); got != tc.want {
				t.Fatalf("markup mismatch\nwant: %s\n got: %s", tc.want, got)
			}
		})
	}
}

func TestSwitchExposesInputID(t *testing.T) {
	sw := Switch(WithID("notify"))
	if sw.Props.Has(node.PropID) {
		t.Fatalf("switch should not keep id on the wrapper")
	}
	if got, _ := sw.Props.String(node.PropInputID); got != "notify" {
		t.Fatalf("expected inputId notify, got %q", got)
	}
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID("name"), GenerateID("name")
	if a == b {
		t.Fatalf("expected unique ids")
	}
	if !strings.HasPrefix(a, "name-") {
		t.Fatalf("unexpected prefix: %s", a)
	}
	if !strings.HasPrefix(GenerateID(" "), "ff-") {
		t.Fatalf("expected default prefix")
	}
}

func TestDefaultRegistry(t *testing.T) {
	reg := NewDefaultRegistry()
	want := []string{NameCheckbox, NameInput, NameSelect, NameSwitch, NameTextArea}
	if diff := cmp.Diff(want, reg.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}

	el, err := reg.Build(" Input ", WithName("x"))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if el.Tag() != "input" {
		t.Fatalf("unexpected element %q", el.Tag())
	}
	if _, err := reg.Build("colour-picker"); err == nil {
		t.Fatalf("expected error for unknown control")
	}
}

func TestRegistryCloneIsIsolated(t *testing.T) {
	reg := NewDefaultRegistry()
	cloned := reg.Clone()
	cloned.MustRegister("rating", func(opts ...Option) *node.Element {
		return Input(append([]Option{WithType("range")}, opts...)...)
	})

	if _, ok := reg.Lookup("rating"); ok {
		t.Fatalf("original registry mutated")
	}
	if _, ok := cloned.Lookup("rating"); !ok {
		t.Fatalf("clone should hold the new control")
	}
	if err := reg.Register("", Input); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if err := reg.Register("nil", nil); err == nil {
		t.Fatalf("expected error for nil constructor")
	}
}
