package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/schema"
)

type stubDriver struct {
	inputs   []string
	selects  []int
	confirms []bool
	texts    []string
	infos    []string
	err      error
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if len(s.inputs) == 0 {
		return cfg.Default, nil
	}
	value := s.inputs[0]
	s.inputs = s.inputs[1:]
	if value == "<default>" {
		return cfg.Default, nil
	}
	return value, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	if len(s.confirms) == 0 {
		return cfg.Default, nil
	}
	value := s.confirms[0]
	s.confirms = s.confirms[1:]
	return value, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if len(s.selects) == 0 {
		return cfg.DefaultIndex, nil
	}
	value := s.selects[0]
	s.selects = s.selects[1:]
	return value, nil
}

func (s *stubDriver) TextArea(_ context.Context, cfg TextAreaConfig) (string, error) {
	if len(s.texts) == 0 {
		return cfg.Default, nil
	}
	value := s.texts[0]
	s.texts = s.texts[1:]
	return value, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infos = append(s.infos, msg)
	return nil
}

func TestCollectInput(t *testing.T) {
	driver := &stubDriver{
		// name, label (default from name), placeholder
		inputs: []string{"emailAddress", "<default>", "you@example.com"},
		// registry names are sorted: checkbox, input, select, ...
		selects:  []int{1, 1},
		texts:    []string{"We never share it."},
		confirms: []bool{true, false},
	}

	spec, err := Collect(context.Background(), driver, nil)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	want := schema.Spec{
		Name:              "emailAddress",
		Label:             "Email address",
		Control:           "input",
		Type:              "email",
		Placeholder:       "you@example.com",
		Description:       "We never share it.",
		DescriptionFormat: schema.FormatMarkdown,
		Required:          true,
		AutoID:            true,
	}
	if diff := cmp.Diff(want, spec); diff != "" {
		t.Fatalf("spec mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectSelectOptions(t *testing.T) {
	driver := &stubDriver{
		inputs:   []string{"plan", "Plan", "free", "pro_plus", ""},
		selects:  []int{2},
		confirms: []bool{false, true},
	}

	spec, err := Collect(context.Background(), driver, nil)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if spec.Control != "select" || !spec.Horizontal {
		t.Fatalf("unexpected spec %#v", spec)
	}
	wantOptions := []schema.Option{{Value: "free", Label: "Free"}, {Value: "pro_plus", Label: "Pro plus"}}
	if diff := cmp.Diff(wantOptions, spec.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if spec.Description != "" || spec.DescriptionFormat != "" {
		t.Fatalf("empty description should stay plain")
	}
}

func TestCollectSelectWithoutOptions(t *testing.T) {
	driver := &stubDriver{inputs: []string{"plan", "Plan", ""}, selects: []int{2}}
	if _, err := Collect(context.Background(), driver, nil); err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(driver.infos) != 1 {
		t.Fatalf("expected a notice about missing options, got %v", driver.infos)
	}
}

func TestCollectErrors(t *testing.T) {
	if _, err := Collect(context.Background(), nil, nil); err == nil {
		t.Fatalf("expected error for nil driver")
	}

	aborted := &stubDriver{err: ErrAborted}
	if _, err := Collect(context.Background(), aborted, nil); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected aborted error, got %v", err)
	}

	blank := &stubDriver{inputs: []string{"  ", ""}}
	if _, err := Collect(context.Background(), blank, nil); err == nil {
		t.Fatalf("expected validation error for blank name")
	}

	badChoice := &stubDriver{inputs: []string{"a", "A"}, selects: []int{42}}
	if _, err := Collect(context.Background(), badChoice, nil); err == nil {
		t.Fatalf("expected error for out of range control")
	}
}

func TestRequireValue(t *testing.T) {
	if err := requireValue(" "); err == nil {
		t.Fatalf("expected error")
	}
	if err := requireValue("x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
