package node

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	markupPolicyOnce sync.Once
	markupPolicy     *bluemonday.Policy

	markdownOnce sync.Once
	markdown     goldmark.Markdown
)

// Sanitized builds trusted markup from untrusted HTML, keeping the inline and
// block elements descriptions and validation payloads need.
func Sanitized(raw string) HTML {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return HTML(strings.TrimSpace(markupSanitizer().Sanitize(trimmed)))
}

// Markdown renders src as sanitized HTML.
func Markdown(src string) (HTML, error) {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := markdownEngine().Convert([]byte(trimmed), &buf); err != nil {
		return "", fmt.Errorf("node: convert markdown: %w", err)
	}
	return Sanitized(buf.String()), nil
}

func markupSanitizer() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").Globally()
		policy.AllowAttrs("aria-hidden", "role").Globally()
		markupPolicy = policy
	})
	return markupPolicy
}

func markdownEngine() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdown = goldmark.New()
	})
	return markdown
}
