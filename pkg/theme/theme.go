package theme

import (
	"sort"
	"strconv"
	"strings"

	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formfield/pkg/style"
)

const (
	// DefaultGridSize is the spacing unit, in pixels, used when a theme does
	// not declare one.
	DefaultGridSize = 8.0
	// GridSizeToken names the manifest token that overrides the grid size.
	GridSizeToken = "spacing.gridSize"
	// DefaultName is the name reported by Default.
	DefaultName = "default"
)

// SpacingFunc maps a unit multiplier to a CSS length.
type SpacingFunc func(multiplier float64) string

// Theme exposes design tokens to components. Values are read-only once built;
// use the With* helpers to derive variants.
type Theme struct {
	Name     string
	Variant  string
	Tokens   map[string]string
	GridSize float64

	spacing SpacingFunc
}

// Default returns the built-in theme.
func Default() *Theme {
	return &Theme{Name: DefaultName, GridSize: DefaultGridSize}
}

// New builds a theme from a token set. The grid size comes from GridSizeToken
// when present and valid.
func New(name, variant string, tokens map[string]string) *Theme {
	return &Theme{
		Name:     name,
		Variant:  variant,
		Tokens:   copyTokens(tokens),
		GridSize: parseGridSize(tokens[GridSizeToken]),
	}
}

// FromSelection merges the manifest tokens with the selected variant's
// overrides.
func FromSelection(selection *gotheme.Selection) *Theme {
	if selection == nil {
		return Default()
	}
	tokens := make(map[string]string)
	if manifest := selection.Manifest; manifest != nil {
		for key, value := range manifest.Tokens {
			tokens[key] = value
		}
		if variant, ok := manifest.Variants[selection.Variant]; ok {
			for key, value := range variant.Tokens {
				tokens[key] = value
			}
		}
	}
	return New(selection.Theme, selection.Variant, tokens)
}

// FromRendererConfig builds a theme from a resolved go-theme renderer config.
func FromRendererConfig(cfg *gotheme.RendererConfig) *Theme {
	if cfg == nil {
		return Default()
	}
	return New(cfg.Theme, cfg.Variant, cfg.Tokens)
}

// WithSpacing returns a copy of t whose spacing is computed by fn.
func (t *Theme) WithSpacing(fn SpacingFunc) *Theme {
	out := t.clone()
	out.spacing = fn
	return out
}

// Spacing converts multipliers of the grid unit into CSS lengths. Several
// multipliers produce a space separated shorthand; none means one unit.
func (t *Theme) Spacing(multipliers ...float64) string {
	if len(multipliers) == 0 {
		multipliers = []float64{1}
	}
	parts := make([]string, 0, len(multipliers))
	for _, m := range multipliers {
		parts = append(parts, t.unit(m))
	}
	return strings.Join(parts, " ")
}

func (t *Theme) unit(multiplier float64) string {
	if t != nil && t.spacing != nil {
		return t.spacing(multiplier)
	}
	grid := DefaultGridSize
	if t != nil && t.GridSize > 0 {
		grid = t.GridSize
	}
	return Px(multiplier * grid)
}

// Token returns the token value for key, or fallback when unset or not
// usable as a CSS value.
func (t *Theme) Token(key, fallback string) string {
	if t == nil {
		return fallback
	}
	if value := strings.TrimSpace(t.Tokens[key]); value != "" && style.SafeValue(value) {
		return value
	}
	return fallback
}

// CSSVars derives custom properties from the tokens: "colors.error" becomes
// "--colors-error".
func (t *Theme) CSSVars() map[string]string {
	if t == nil || len(t.Tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(t.Tokens))
	for key, value := range t.Tokens {
		name := strings.NewReplacer(".", "-", " ", "-").Replace(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if !validVarName(name) || value == "" || !style.SafeValue(value) {
			continue
		}
		out["--"+name] = value
	}
	return out
}

// CSSVarsBlock renders CSSVars as a sorted :root block.
func (t *Theme) CSSVarsBlock() string {
	vars := t.CSSVars()
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString("  ")
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

func validVarName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

// Px formats a pixel length.
func Px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

func (t *Theme) clone() *Theme {
	if t == nil {
		return Default()
	}
	out := *t
	out.Tokens = copyTokens(t.Tokens)
	return &out
}

func parseGridSize(raw string) float64 {
	trimmed := strings.TrimSuffix(strings.TrimSpace(raw), "px")
	if trimmed == "" {
		return DefaultGridSize
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(trimmed), 64)
	if err != nil || value <= 0 {
		return DefaultGridSize
	}
	return value
}

func copyTokens(in map[string]string) map[string]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]string, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}
