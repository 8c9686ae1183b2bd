package theme

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	gotheme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

var (
	// ErrThemeNotFound is returned when no manifest matches the requested name.
	ErrThemeNotFound = errors.New("theme: not found")
	// ErrVariantNotFound is returned when the manifest lacks the variant.
	ErrVariantNotFound = errors.New("theme: variant not found")
)

// Selector is an in-memory gotheme.ThemeSelector over registered manifests.
type Selector struct {
	mu        sync.RWMutex
	manifests map[string]*gotheme.Manifest
}

var _ gotheme.ThemeSelector = (*Selector)(nil)

// NewSelector registers the given manifests, skipping nil and unnamed ones.
func NewSelector(manifests ...*gotheme.Manifest) *Selector {
	s := &Selector{manifests: make(map[string]*gotheme.Manifest)}
	for _, manifest := range manifests {
		_ = s.Register(manifest)
	}
	return s
}

// Register adds or replaces a manifest.
func (s *Selector) Register(manifest *gotheme.Manifest) error {
	if manifest == nil {
		return errors.New("theme: manifest is nil")
	}
	name := strings.TrimSpace(manifest.Name)
	if name == "" {
		return errors.New("theme: manifest name is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.manifests[name] = manifest
	return nil
}

// Names returns the registered theme names, sorted.
func (s *Selector) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.manifests))
	for name := range s.manifests {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Select resolves a manifest and variant. An empty variant selects the base
// tokens.
func (s *Selector) Select(name, variant string, _ ...gotheme.QueryOption) (*gotheme.Selection, error) {
	name = strings.TrimSpace(name)
	variant = strings.TrimSpace(variant)

	s.mu.RLock()
	manifest, ok := s.manifests[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w: %q in theme %q", ErrVariantNotFound, variant, name)
		}
	}
	return &gotheme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

// Resolver turns selector results into Themes, applying defaults for blank
// names.
type Resolver struct {
	selector       gotheme.ThemeSelector
	defaultTheme   string
	defaultVariant string
}

// NewResolver wraps selector with default theme and variant names.
func NewResolver(selector gotheme.ThemeSelector, defaultTheme, defaultVariant string) *Resolver {
	return &Resolver{
		selector:       selector,
		defaultTheme:   strings.TrimSpace(defaultTheme),
		defaultVariant: strings.TrimSpace(defaultVariant),
	}
}

// Resolve selects name/variant, falling back to the defaults. Without a
// selector or any theme name it returns Default.
func (r *Resolver) Resolve(name, variant string) (*Theme, error) {
	if r == nil || r.selector == nil {
		return Default(), nil
	}
	name = strings.TrimSpace(name)
	variant = strings.TrimSpace(variant)
	if name == "" {
		name = r.defaultTheme
		if variant == "" {
			variant = r.defaultVariant
		}
	}
	if name == "" {
		return Default(), nil
	}
	selection, err := r.selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("theme: select %q/%q: %w", name, variant, err)
	}
	return FromSelection(selection), nil
}

type manifestFile struct {
	Name     string                 `yaml:"name"`
	Version  string                 `yaml:"version"`
	Tokens   map[string]string      `yaml:"tokens"`
	Variants map[string]variantFile `yaml:"variants"`
}

type variantFile struct {
	Tokens map[string]string `yaml:"tokens"`
}

// LoadManifest decodes a YAML theme manifest:
//
//	name: acme
//	tokens:
//	  spacing.gridSize: 4px
//	variants:
//	  dark:
//	    tokens:
//	      colors.error.text: "#ff5286"
func LoadManifest(data []byte) (*gotheme.Manifest, error) {
	var file manifestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("theme: decode manifest: %w", err)
	}
	if strings.TrimSpace(file.Name) == "" {
		return nil, errors.New("theme: manifest name is required")
	}
	manifest := &gotheme.Manifest{
		Name:    strings.TrimSpace(file.Name),
		Version: file.Version,
		Tokens:  copyTokens(file.Tokens),
	}
	if len(file.Variants) > 0 {
		manifest.Variants = make(map[string]gotheme.Variant, len(file.Variants))
		for name, variant := range file.Variants {
			manifest.Variants[name] = gotheme.Variant{Tokens: copyTokens(variant.Tokens)}
		}
	}
	return manifest, nil
}
