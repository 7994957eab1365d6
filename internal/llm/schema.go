package llm

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// SchemaType names a JSON value type in the provider's schema dialect.
type SchemaType string

const (
	TypeObject  SchemaType = "OBJECT"
	TypeArray   SchemaType = "ARRAY"
	TypeString  SchemaType = "STRING"
	TypeInteger SchemaType = "INTEGER"
	TypeNumber  SchemaType = "NUMBER"
	TypeBoolean SchemaType = "BOOLEAN"
)

// Schema declares the shape a structured response must have. The same value
// is sent to the provider and used to check what comes back.
type Schema struct {
	Type        SchemaType
	Description string
	Properties  map[string]*Schema
	Items       *Schema
	Required    []string
}

// Check verifies that v, as produced by a json.Decoder with UseNumber,
// conforms to s. Objects must carry every required property with a non-null
// value and may not carry properties the schema does not declare.
func (s *Schema) Check(v any) error {
	return s.check(v, "$")
}

func (s *Schema) check(v any, path string) error {
	if s == nil {
		return nil
	}
	if v == nil {
		return fmt.Errorf("%s: null where %s expected", path, strings.ToLower(string(s.Type)))
	}

	switch s.Type {
	case TypeObject:
		obj, ok := v.(map[string]any)
		if !ok {
			return typeMismatch(path, s.Type, v)
		}
		for _, name := range s.Required {
			val, present := obj[name]
			if !present {
				return fmt.Errorf("%s: missing required field %q", path, name)
			}
			if val == nil {
				return fmt.Errorf("%s: required field %q is null", path, name)
			}
		}
		for _, name := range sortedKeys(obj) {
			prop, known := s.Properties[name]
			if !known {
				return fmt.Errorf("%s: unexpected field %q", path, name)
			}
			if obj[name] == nil {
				continue
			}
			if err := prop.check(obj[name], path+"."+name); err != nil {
				return err
			}
		}
	case TypeArray:
		arr, ok := v.([]any)
		if !ok {
			return typeMismatch(path, s.Type, v)
		}
		for i, item := range arr {
			if err := s.Items.check(item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case TypeString:
		if _, ok := v.(string); !ok {
			return typeMismatch(path, s.Type, v)
		}
	case TypeInteger:
		n, ok := v.(json.Number)
		if !ok {
			return typeMismatch(path, s.Type, v)
		}
		if _, err := n.Int64(); err != nil {
			return fmt.Errorf("%s: %s is not an integer", path, n)
		}
	case TypeNumber:
		n, ok := v.(json.Number)
		if !ok {
			return typeMismatch(path, s.Type, v)
		}
		if _, err := n.Float64(); err != nil {
			return fmt.Errorf("%s: %s is not a number", path, n)
		}
	case TypeBoolean:
		if _, ok := v.(bool); !ok {
			return typeMismatch(path, s.Type, v)
		}
	default:
		return fmt.Errorf("%s: unsupported schema type %q", path, s.Type)
	}
	return nil
}

// JSONSchema renders s as a standard JSON Schema document, the dialect
// Ollama's structured output expects.
func (s *Schema) JSONSchema() map[string]any {
	if s == nil {
		return nil
	}
	out := map[string]any{"type": strings.ToLower(string(s.Type))}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, p := range s.Properties {
			props[name] = p.JSONSchema()
		}
		out["properties"] = props
	}
	if s.Items != nil {
		out["items"] = s.Items.JSONSchema()
	}
	if len(s.Required) > 0 {
		out["required"] = append([]string(nil), s.Required...)
	}
	return out
}

func typeMismatch(path string, want SchemaType, got any) error {
	return fmt.Errorf("%s: expected %s, got %s", path, strings.ToLower(string(want)), jsonKind(got))
}

func jsonKind(v any) string {
	switch v.(type) {
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
