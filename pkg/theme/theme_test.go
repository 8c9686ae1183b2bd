package theme

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	gotheme "github.com/goliatone/go-theme"
)

func TestDefaultSpacing(t *testing.T) {
	th := Default()
	cases := []struct {
		got  string
		want string
	}{
		{th.Spacing(2), "16px"},
		{th.Spacing(0.5), "4px"},
		{th.Spacing(), "8px"},
		{th.Spacing(0.5, 1), "4px 8px"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("want %q, got %q", tc.want, tc.got)
		}
	}
}

func TestSpacingFuncOverride(t *testing.T) {
	k := 3.0
	th := Default().WithSpacing(func(u float64) string { return fmt.Sprintf("%gpx", u*k) })
	if got := th.Spacing(2); got != "6px" {
		t.Fatalf("want 6px, got %q", got)
	}
	if got := th.Spacing(0.5); got != "1.5px" {
		t.Fatalf("want 1.5px, got %q", got)
	}
	if got := Default().Spacing(2); got != "16px" {
		t.Fatalf("original theme should be unaffected, got %q", got)
	}
}

func TestGridSizeToken(t *testing.T) {
	th := New("acme", "", map[string]string{GridSizeToken: "4px"})
	if got := th.Spacing(2); got != "8px" {
		t.Fatalf("want 8px, got %q", got)
	}
	invalid := New("acme", "", map[string]string{GridSizeToken: "wide"})
	if invalid.GridSize != DefaultGridSize {
		t.Fatalf("invalid grid token should fall back, got %v", invalid.GridSize)
	}
}

func TestFromSelectionMergesVariantTokens(t *testing.T) {
	manifest := &gotheme.Manifest{
		Name:   "acme",
		Tokens: map[string]string{"brand": "#123456", GridSizeToken: "10"},
		Variants: map[string]gotheme.Variant{
			"dark": {Tokens: map[string]string{"brand": "#654321"}},
		},
	}

	th := FromSelection(&gotheme.Selection{Theme: "acme", Variant: "dark", Manifest: manifest})
	if th.Name != "acme" || th.Variant != "dark" {
		t.Fatalf("unexpected identity %s/%s", th.Name, th.Variant)
	}
	if got := th.Token("brand", ""); got != "#654321" {
		t.Fatalf("variant token not applied, got %q", got)
	}
	if got := th.Spacing(1); got != "10px" {
		t.Fatalf("grid token not applied, got %q", got)
	}
	want := map[string]string{"--brand": "#654321", "--spacing-gridSize": "10"}
	if diff := cmp.Diff(want, th.CSSVars()); diff != "" {
		t.Fatalf("css vars mismatch (-want +got):\n%s", diff)
	}
}

func TestUnsafeTokensAreIgnored(t *testing.T) {
	th := New("acme", "", map[string]string{
		"colors.error.main":   "red;}</style><script>alert(1)</script>",
		"colors.text.primary": "#111111",
		"bad}key":             "#222222",
	})
	if got := th.Token("colors.error.main", "#d10e5c"); got != "#d10e5c" {
		t.Fatalf("unsafe token should fall back, got %q", got)
	}
	want := map[string]string{"--colors-text-primary": "#111111"}
	if diff := cmp.Diff(want, th.CSSVars()); diff != "" {
		t.Fatalf("css vars mismatch (-want +got):\n%s", diff)
	}
}

func TestFromRendererConfig(t *testing.T) {
	th := FromRendererConfig(&gotheme.RendererConfig{
		Theme:   "acme",
		Variant: "light",
		Tokens:  map[string]string{GridSizeToken: "6px"},
	})
	if th.Spacing(2) != "12px" {
		t.Fatalf("unexpected spacing %q", th.Spacing(2))
	}
	if FromRendererConfig(nil).Name != DefaultName {
		t.Fatalf("nil config should return default theme")
	}
}

func TestSelectorAndResolver(t *testing.T) {
	selector := NewSelector(&gotheme.Manifest{
		Name: "acme",
		Variants: map[string]gotheme.Variant{
			"dark": {Tokens: map[string]string{GridSizeToken: "2"}},
		},
	})

	if _, err := selector.Select("missing", ""); !errors.Is(err, ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound, got %v", err)
	}
	if _, err := selector.Select("acme", "sepia"); !errors.Is(err, ErrVariantNotFound) {
		t.Fatalf("expected ErrVariantNotFound, got %v", err)
	}

	resolver := NewResolver(selector, "acme", "dark")
	th, err := resolver.Resolve("", "")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if th.Variant != "dark" || th.Spacing(1) != "2px" {
		t.Fatalf("defaults not applied: %s %s", th.Variant, th.Spacing(1))
	}

	th, err = NewResolver(nil, "", "").Resolve("acme", "")
	if err != nil || th.Name != DefaultName {
		t.Fatalf("expected default theme without selector, got %v (%v)", th, err)
	}
}

func TestLoadManifest(t *testing.T) {
	manifest, err := LoadManifest([]byte(`
name: acme
version: "1.0.0"
tokens:
  spacing.gridSize: 4px
variants:
  dark:
    tokens:
      colors.error.text: "#ff5286"
`))
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}
	if manifest.Name != "acme" || manifest.Tokens[GridSizeToken] != "4px" {
		t.Fatalf("unexpected manifest %+v", manifest)
	}
	if manifest.Variants["dark"].Tokens["colors.error.text"] != "#ff5286" {
		t.Fatalf("variant tokens missing")
	}

	if _, err := LoadManifest([]byte("tokens: {}")); err == nil {
		t.Fatalf("expected error for unnamed manifest")
	}
}

func TestContextRoundTrip(t *testing.T) {
	th := New("acme", "", nil)
	ctx := WithTheme(context.Background(), th)
	if FromContext(ctx) != th {
		t.Fatalf("expected ambient theme")
	}
	if FromContext(context.Background()).Name != DefaultName {
		t.Fatalf("expected default theme")
	}
	replaced := WithTheme(ctx, New("other", "", nil))
	if FromContext(replaced).Name != "other" || FromContext(ctx).Name != "acme" {
		t.Fatalf("re-supplying a theme should only affect the derived context")
	}
}
