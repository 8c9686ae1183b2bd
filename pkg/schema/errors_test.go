package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMapErrors(t *testing.T) {
	specs := []Spec{{Name: "name"}, {Name: "owner.firstName"}, {Name: "tags"}}
	payload := map[string][]string{
		"/name":                {"is required", " is required "},
		"body.owner.firstName": {"too short"},
		"#/owner/firstName":    {"must be letters"},
		"tags[0]":              {"unknown tag"},
		"non_field_errors":     {"try again"},
		"/unknown":             {"lost field"},
		"name.extra":           {"nested under name"},
		"blank":                {"   "},
	}

	mapping := MapErrors(specs, payload)

	wantFields := map[string][]string{
		"name":            {"is required", "nested under name"},
		"owner.firstName": {"too short", "must be letters"},
		"tags":            {"unknown tag"},
	}
	sortStrings := cmpopts.SortSlices(func(a, b string) bool { return a < b })
	if diff := cmp.Diff(wantFields, mapping.Fields, sortStrings); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"try again", "lost field"}, mapping.Form, sortStrings); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitErrorPath(t *testing.T) {
	cases := map[string][]string{
		"/owner/firstName":   {"owner", "firstName"},
		"#/items/0/name":     {"items", "0", "name"},
		"$.items[2].name":    {"items", "2", "name"},
		"/a~1b/c~0d":         {"a/b", "c~d"},
		"/~01":               {"~1"},
		"  ":                 nil,
		"data.attributes.id": {"data", "attributes", "id"},
	}
	for raw, want := range cases {
		if diff := cmp.Diff(want, splitErrorPath(raw), cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("%q mismatch (-want +got):\n%s", raw, diff)
		}
	}
}

func TestMapErrorsPrefersDeepestName(t *testing.T) {
	specs := []Spec{{Name: "owner"}, {Name: "owner.address.city"}, {Name: "id"}}
	mapping := MapErrors(specs, map[string][]string{
		"/owner/address/city/0": {"unknown city"},
		"/owner/address/zip":    {"bad zip"},
		"data/attributes/id":    {"taken"},
	})
	want := map[string][]string{
		"owner.address.city": {"unknown city"},
		"owner":              {"bad zip"},
		"id":                 {"taken"},
	}
	if diff := cmp.Diff(want, mapping.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}
}

func TestMapErrorsEmptyPayload(t *testing.T) {
	mapping := MapErrors([]Spec{{Name: "a"}}, nil)
	if mapping.Fields != nil || mapping.Form != nil {
		t.Fatalf("expected empty mapping, got %#v", mapping)
	}
}

func TestApplyErrors(t *testing.T) {
	specs := []Spec{{Name: "email"}, {Name: "name", Error: "stale"}}
	updated, form := ApplyErrors(specs, map[string][]string{
		"email": {"is required", "must be an email"},
		"form":  {"please review the form"},
	})

	if specs[0].Invalid != nil {
		t.Fatalf("input specs must not be mutated")
	}
	if updated[0].Invalid == nil || !*updated[0].Invalid {
		t.Fatalf("expected email to be invalid")
	}
	if updated[0].Error != "is required; must be an email" {
		t.Fatalf("unexpected joined error %q", updated[0].Error)
	}
	if updated[1].Invalid != nil || updated[1].Error != "stale" {
		t.Fatalf("untouched spec changed: %#v", updated[1])
	}
	if diff := cmp.Diff([]string{"please review the form"}, form); diff != "" {
		t.Fatalf("form errors mismatch (-want +got):\n%s", diff)
	}
}
