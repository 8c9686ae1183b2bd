package node

// Props holds element properties keyed by name.
type Props map[string]any

// Clone returns a shallow copy. A nil receiver yields an empty map.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for key, value := range p {
		out[key] = value
	}
	return out
}

// Merge returns a new map holding p overlaid with overrides.
func (p Props) Merge(overrides Props) Props {
	out := make(Props, len(p)+len(overrides))
	for key, value := range p {
		out[key] = value
	}
	for key, value := range overrides {
		out[key] = value
	}
	return out
}

// Has reports whether key is present, regardless of its value.
func (p Props) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// String returns the value stored under key when it is a string.
func (p Props) String(key string) (string, bool) {
	v, ok := p[key].(string)
	return v, ok
}

// Bool returns the value stored under key when it is a bool, false otherwise.
func (p Props) Bool(key string) bool {
	v, _ := p[key].(bool)
	return v
}

// Without returns a copy with the given keys removed.
func (p Props) Without(keys ...string) Props {
	out := p.Clone()
	for _, key := range keys {
		delete(out, key)
	}
	return out
}
