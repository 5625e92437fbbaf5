// README: Declarative field schemas used to validate model inputs and outputs.
package ai

import (
	"fmt"
	"math"
	"strings"
)

type FieldType string

const (
	TypeString  FieldType = "string"
	TypeNumber  FieldType = "number"
	TypeInteger FieldType = "integer"
	TypeBoolean FieldType = "boolean"
	TypeArray   FieldType = "array"
	TypeObject  FieldType = "object"
)

// Field declares one named slot of a schema: its type, whether it must be
// present, and optional value constraints (enum for strings, min/max for
// numerics, Items for array elements, Fields for nested objects).
type Field struct {
	Name     string
	Type     FieldType
	Required bool
	Enum     []string
	Min      *float64
	Max      *float64
	Items    *Field
	Fields   []Field
}

// Schema is a flat set of declared fields over a JSON-like record.
type Schema struct {
	Fields []Field
}

// Float is a shorthand for bound pointers in schema literals.
func Float(v float64) *float64 { return &v }

// Validate checks a decoded JSON object against the schema. All violations
// are collected so the error names everything wrong at once. Fields not
// declared in the schema are tolerated; required, typed, and constrained
// fields are not negotiable.
func (s Schema) Validate(v map[string]any) error {
	var violations []string
	for _, f := range s.Fields {
		val, ok := v[f.Name]
		if !ok || val == nil {
			if f.Required {
				violations = append(violations, fmt.Sprintf("missing required field %q", f.Name))
			}
			continue
		}
		violations = append(violations, checkField(f.Name, f, val)...)
	}
	if len(violations) > 0 {
		return fmt.Errorf("%s", strings.Join(violations, "; "))
	}
	return nil
}

func checkField(path string, f Field, val any) []string {
	switch f.Type {
	case TypeString:
		s, ok := val.(string)
		if !ok {
			return []string{fmt.Sprintf("field %q: expected string, got %T", path, val)}
		}
		if len(f.Enum) > 0 && !inEnum(s, f.Enum) {
			return []string{fmt.Sprintf("field %q: %q not in %v", path, s, f.Enum)}
		}
	case TypeNumber, TypeInteger:
		n, ok := val.(float64)
		if !ok {
			return []string{fmt.Sprintf("field %q: expected %s, got %T", path, f.Type, val)}
		}
		if f.Type == TypeInteger && n != math.Trunc(n) {
			return []string{fmt.Sprintf("field %q: expected integer, got %v", path, n)}
		}
		var out []string
		if f.Min != nil && n < *f.Min {
			out = append(out, fmt.Sprintf("field %q: %v below minimum %v", path, n, *f.Min))
		}
		if f.Max != nil && n > *f.Max {
			out = append(out, fmt.Sprintf("field %q: %v above maximum %v", path, n, *f.Max))
		}
		return out
	case TypeBoolean:
		if _, ok := val.(bool); !ok {
			return []string{fmt.Sprintf("field %q: expected boolean, got %T", path, val)}
		}
	case TypeArray:
		items, ok := val.([]any)
		if !ok {
			return []string{fmt.Sprintf("field %q: expected array, got %T", path, val)}
		}
		if f.Items == nil {
			return nil
		}
		var out []string
		for i, item := range items {
			out = append(out, checkField(fmt.Sprintf("%s[%d]", path, i), *f.Items, item)...)
		}
		return out
	case TypeObject:
		obj, ok := val.(map[string]any)
		if !ok {
			return []string{fmt.Sprintf("field %q: expected object, got %T", path, val)}
		}
		var out []string
		for _, child := range f.Fields {
			cv, present := obj[child.Name]
			if !present || cv == nil {
				if child.Required {
					out = append(out, fmt.Sprintf("field %q: missing required field %q", path, child.Name))
				}
				continue
			}
			out = append(out, checkField(path+"."+child.Name, child, cv)...)
		}
		return out
	default:
		return []string{fmt.Sprintf("field %q: unknown schema type %q", path, f.Type)}
	}
	return nil
}

func inEnum(s string, enum []string) bool {
	for _, e := range enum {
		if s == e {
			return true
		}
	}
	return false
}
