package style

import (
	"context"
	"hash/fnv"
	"strconv"
	"strings"
	"sync"
)

// ClassPrefix prefixes every generated class name.
const ClassPrefix = "css-"

// Sheet maps styles to class names and accumulates the matching CSS rules in
// insertion order. It is safe for concurrent use.
type Sheet struct {
	mu      sync.RWMutex
	classes map[string]string
	rules   []string
}

// NewSheet creates an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{classes: make(map[string]string)}
}

// Class registers s and returns its class name. Identical styles share a
// class; an empty style yields "".
func (sh *Sheet) Class(s Style) string {
	if s.Empty() {
		return ""
	}
	key := s.key()

	sh.mu.RLock()
	name, ok := sh.classes[key]
	sh.mu.RUnlock()
	if ok {
		return name
	}

	sh.mu.Lock()
	defer sh.mu.Unlock()
	if name, ok := sh.classes[key]; ok {
		return name
	}
	name = className(key)
	sh.classes[key] = name
	sh.rules = append(sh.rules, rulesFor(name, s)...)
	return name
}

// CSS returns the stylesheet text.
func (sh *Sheet) CSS() string {
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	return strings.Join(sh.rules, "\n")
}

// Rules returns a copy of the registered rules.
func (sh *Sheet) Rules() []string {
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	out := make([]string, len(sh.rules))
	copy(out, sh.rules)
	return out
}

// Len reports the number of registered classes.
func (sh *Sheet) Len() int {
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	return len(sh.classes)
}

// Reset drops every registered class.
func (sh *Sheet) Reset() {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	sh.classes = make(map[string]string)
	sh.rules = nil
}

func className(key string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return ClassPrefix + strconv.FormatUint(h.Sum64(), 36)
}

func rulesFor(name string, s Style) []string {
	selector := "." + name
	out := make([]string, 0, 1+len(s.Rules))
	if len(s.Declarations) > 0 {
		out = append(out, selector+"{"+body(s.Declarations)+"}")
	}
	for _, rule := range s.Rules {
		if len(rule.Declarations) == 0 {
			continue
		}
		nested := strings.ReplaceAll(rule.Selector, "&", selector)
		if !strings.Contains(rule.Selector, "&") {
			nested = selector + " " + rule.Selector
		}
		out = append(out, nested+"{"+body(rule.Declarations)+"}")
	}
	return out
}

type sheetKey struct{}

// WithSheet attaches sh to ctx.
func WithSheet(ctx context.Context, sh *Sheet) context.Context {
	if sh == nil {
		return ctx
	}
	return context.WithValue(ctx, sheetKey{}, sh)
}

// SheetFromContext returns the sheet attached to ctx, or a fresh detached
// sheet when none is present.
func SheetFromContext(ctx context.Context) *Sheet {
	if ctx != nil {
		if sh, ok := ctx.Value(sheetKey{}).(*Sheet); ok && sh != nil {
			return sh
		}
	}
	return NewSheet()
}
