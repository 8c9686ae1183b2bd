package schema

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// ExtensionKey is the vendor extension read from OpenAPI properties to tweak
// the generated spec (control, placeholder, horizontal, class).
const ExtensionKey = "x-formfield"

// FromOpenAPI builds specs from the object schema called name. The name is
// looked up under components.schemas first, then as an operationId whose
// request body carries the schema. Nested objects flatten into dotted names.
func FromOpenAPI(ctx context.Context, data []byte, name string) ([]Spec, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New("schema: openapi document payload is empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("schema: openapi schema name is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("schema: load openapi document: %w", err)
	}

	ref := lookupSchema(doc, name)
	if ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("schema: openapi schema %q not found", name)
	}
	if len(ref.Value.Properties) == 0 {
		return nil, fmt.Errorf("schema: openapi schema %q has no properties", name)
	}

	specs := collectProperties("", ref.Value)
	slices.SortFunc(specs, func(a, b Spec) int {
		return strings.Compare(a.Name, b.Name)
	})
	return specs, nil
}

func lookupSchema(doc *openapi3.T, name string) *openapi3.SchemaRef {
	if doc.Components != nil {
		if ref, ok := doc.Components.Schemas[name]; ok {
			return ref
		}
	}
	if doc.Paths == nil {
		return nil
	}
	for _, item := range doc.Paths.Map() {
		if item == nil {
			continue
		}
		for _, operation := range item.Operations() {
			if operation == nil || operation.OperationID != name {
				continue
			}
			return requestSchema(operation.RequestBody)
		}
	}
	return nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.SchemaRef {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok && mt != nil {
			return mt.Schema
		}
	}
	for _, mt := range content {
		if mt != nil {
			return mt.Schema
		}
	}
	return nil
}

func collectProperties(prefix string, schema *openapi3.Schema) []Spec {
	var out []Spec
	for name, property := range schema.Properties {
		if property == nil || property.Value == nil {
			continue
		}
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}
		value := property.Value
		if firstSchemaType(value.Type) == "object" && len(value.Properties) > 0 {
			out = append(out, collectProperties(path, value)...)
			continue
		}
		spec := convertProperty(path, name, value)
		spec.Required = slices.Contains(schema.Required, name)
		out = append(out, spec)
	}
	return out
}

func convertProperty(path, name string, src *openapi3.Schema) Spec {
	spec := Spec{
		Name:        path,
		ID:          strings.ReplaceAll(path, ".", "-"),
		Label:       strings.TrimSpace(src.Title),
		Description: src.Description,
		Value:       defaultValue(src.Default),
	}
	if spec.Label == "" {
		spec.Label = Humanize(name)
	}
	if src.ReadOnly {
		disabled := true
		spec.Disabled = &disabled
	}

	switch {
	case len(src.Enum) > 0:
		spec.Control = "select"
		for _, value := range src.Enum {
			option := defaultValue(value)
			if option == "" {
				continue
			}
			spec.Options = append(spec.Options, Option{Value: option, Label: Humanize(option)})
		}
	case firstSchemaType(src.Type) == "boolean":
		spec.Control = "switch"
		spec.Checked = spec.Value == "true"
		spec.Value = ""
	case firstSchemaType(src.Type) == "integer", firstSchemaType(src.Type) == "number":
		spec.Type = "number"
	default:
		spec.Type = inputType(src.Format)
		if src.MaxLength != nil && *src.MaxLength > 500 {
			spec.Control = "textarea"
			spec.Type = ""
		}
	}

	spec.InputAttrs = constraintAttrs(src)
	applyExtension(&spec, src.Extensions)
	return spec
}

func inputType(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "email":
		return "email"
	case "password":
		return "password"
	case "date":
		return "date"
	case "date-time":
		return "datetime-local"
	case "uri", "url":
		return "url"
	default:
		return ""
	}
}

func constraintAttrs(src *openapi3.Schema) map[string]string {
	attrs := make(map[string]string)
	if src.Min != nil {
		attrs["min"] = strconv.FormatFloat(*src.Min, 'f', -1, 64)
	}
	if src.Max != nil {
		attrs["max"] = strconv.FormatFloat(*src.Max, 'f', -1, 64)
	}
	if src.MinLength > 0 {
		attrs["minlength"] = strconv.FormatUint(src.MinLength, 10)
	}
	if src.MaxLength != nil {
		attrs["maxlength"] = strconv.FormatUint(*src.MaxLength, 10)
	}
	if src.Pattern != "" {
		attrs["pattern"] = src.Pattern
	}
	if len(attrs) == 0 {
		return nil
	}
	return attrs
}

func applyExtension(spec *Spec, extensions map[string]any) {
	raw, ok := extensions[ExtensionKey].(map[string]any)
	if !ok {
		return
	}
	if value, ok := raw["control"].(string); ok && value != "" {
		spec.Control = value
		if value != "input" {
			spec.Type = ""
		}
	}
	if value, ok := raw["placeholder"].(string); ok {
		spec.Placeholder = value
	}
	if value, ok := raw["class"].(string); ok {
		spec.Class = value
	}
	if value, ok := raw["horizontal"].(bool); ok {
		spec.Horizontal = value
	}
	if value, ok := raw["descriptionFormat"].(string); ok {
		spec.DescriptionFormat = value
	}
}

func defaultValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values, ",")
	}
}
