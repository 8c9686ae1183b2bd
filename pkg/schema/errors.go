package schema

import (
	"strconv"
	"strings"
)

// ErrorMapping splits a server error payload into field-level and form-level
// messages keyed by the dotted spec names.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// MapErrors normalises error payloads (JSON pointer, dotted, or bracketed
// paths, optionally under wrappers such as "body") onto the spec names.
// Unknown paths become form-level errors so messages are not lost.
func MapErrors(specs []Spec, payload map[string][]string) ErrorMapping {
	mapping := ErrorMapping{Fields: make(map[string][]string)}
	if len(payload) == 0 {
		mapping.Fields = nil
		return mapping
	}

	index := make(fieldIndex, len(specs))
	for _, spec := range specs {
		if name := strings.TrimSpace(spec.Name); name != "" {
			index[name] = struct{}{}
		}
	}

	for rawPath, messages := range payload {
		normalized := normalizeMessages(messages)
		if len(normalized) == 0 {
			continue
		}
		mapped, ok := index.resolve(rawPath)
		if !ok {
			mapping.Form = append(mapping.Form, normalized...)
			continue
		}
		mapping.Fields[mapped] = append(mapping.Fields[mapped], normalized...)
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

// ApplyErrors marks the specs named in payload invalid and sets their error
// text. It returns updated copies plus the form-level messages.
func ApplyErrors(specs []Spec, payload map[string][]string) ([]Spec, []string) {
	mapping := MapErrors(specs, payload)
	out := make([]Spec, len(specs))
	copy(out, specs)

	for i := range out {
		messages := normalizeMessages(mapping.Fields[strings.TrimSpace(out[i].Name)])
		if len(messages) == 0 {
			continue
		}
		invalid := true
		out[i].Invalid = &invalid
		out[i].Error = strings.Join(messages, "; ")
		out[i].ErrorFormat = FormatText
	}
	return out, mapping.Form
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// fieldIndex resolves error paths to spec names.
type fieldIndex map[string]struct{}

// resolve returns the deepest spec name that prefixes one of the readings of
// raw. ok is false for form-level keys and paths no spec claims.
func (idx fieldIndex) resolve(raw string) (name string, ok bool) {
	key := strings.TrimSpace(raw)
	if formLevelKeys[strings.ToLower(key)] {
		return "", false
	}

	depth := 0
	for _, reading := range pathReadings(splitErrorPath(key)) {
		for n := len(reading); n > depth; n-- {
			candidate := strings.Join(reading[:n], ".")
			if _, found := idx[candidate]; found {
				name, depth = candidate, n
				break
			}
		}
	}
	return name, name != ""
}

var formLevelKeys = map[string]bool{
	"": true, ".": true, "/": true, "#": true, "$": true,
	"form": true, "base": true, "__all__": true,
	"non_field_errors": true, "non-field-errors": true,
}

// wrapperKeys are envelope segments APIs put in front of the field path.
var wrapperKeys = map[string]bool{
	"body": true, "request": true, "payload": true, "data": true, "attributes": true,
}

var pointerUnescaper = strings.NewReplacer("~1", "/", "~0", "~")

// splitErrorPath accepts JSON pointers ("/a/b", "#/a/b"), JSONPath-ish
// ("$.a.b"), dotted and bracketed ("a[0].b") forms.
func splitErrorPath(key string) []string {
	key = strings.TrimLeft(key, "#$./")
	fields := strings.FieldsFunc(key, func(r rune) bool {
		return r == '.' || r == '/' || r == '[' || r == ']'
	})
	segments := fields[:0]
	for _, field := range fields {
		if field = strings.TrimSpace(field); field != "" {
			segments = append(segments, pointerUnescaper.Replace(field))
		}
	}
	return segments
}

// pathReadings lists segments as given, without leading wrappers, and both
// of those with array indexes removed.
func pathReadings(segments []string) [][]string {
	unwrapped := segments
	for len(unwrapped) > 0 && wrapperKeys[strings.ToLower(unwrapped[0])] {
		unwrapped = unwrapped[1:]
	}
	return [][]string{segments, unwrapped, withoutIndexes(segments), withoutIndexes(unwrapped)}
}

func withoutIndexes(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if _, err := strconv.Atoi(segment); err != nil {
			out = append(out, segment)
		}
	}
	return out
}
