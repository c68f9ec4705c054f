package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"column-mover/internal/common"
)

// Table is the root of a mapping definition. It is built once and never
// modified while files are processed.
type Table struct {
	// Version of the mapping schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Columns in output order.
	Columns []ColumnSpec `yaml:"columns"`
}

// ColumnSpec describes how one output column is computed.
type ColumnSpec struct {
	// Output is the destination header. Unique within a table.
	Output string `yaml:"output"`

	// Value is a literal constant used as the raw cell value.
	Value *string `yaml:"value,omitempty"`

	// Source is one input field name, or an ordered list of two or more.
	Source StringArray `yaml:"source,omitempty"`

	// Transform is the name of a registered transform applied to the raw value(s).
	Transform string `yaml:"transform,omitempty"`

	// Type is an optional assertion applied after the transform.
	Type CoerceKind `yaml:"type,omitempty"`
}

// SourceKind tags which value source a column uses.
type SourceKind int

const (
	SourceNone     SourceKind = iota // no source; value comes from a zero-arity transform
	SourceLiteral                    // Value
	SourceField                      // Source with one name
	SourceFields                     // Source with two or more names
	SourceConflict                   // both Value and Source set
)

// String returns a human-readable representation of the source kind.
func (k SourceKind) String() string {
	switch k {
	case SourceNone:
		return "none"
	case SourceLiteral:
		return "literal"
	case SourceField:
		return "field"
	case SourceFields:
		return "fields"
	case SourceConflict:
		return "conflict"
	default:
		return common.UnknownStr
	}
}

// Kind returns the value source variant of the column.
func (c ColumnSpec) Kind() SourceKind {
	switch {
	case c.Value != nil && len(c.Source) > 0:
		return SourceConflict
	case c.Value != nil:
		return SourceLiteral
	case len(c.Source) == 1:
		return SourceField
	case len(c.Source) > 1:
		return SourceFields
	default:
		return SourceNone
	}
}

// Arity returns how many raw values the column hands to its transform.
func (c ColumnSpec) Arity() int {
	switch c.Kind() {
	case SourceLiteral, SourceField:
		return 1
	case SourceFields:
		return len(c.Source)
	default:
		return 0
	}
}

// Literal returns a column that always emits value.
func Literal(output, value string) ColumnSpec {
	return ColumnSpec{Output: output, Value: &value}
}

// Field returns a column copying the named input field.
func Field(output, name string) ColumnSpec {
	return ColumnSpec{Output: output, Source: StringArray{name}}
}

// Fields returns a column reading several input fields in order. It needs
// a transform to combine them.
func Fields(output string, names ...string) ColumnSpec {
	return ColumnSpec{Output: output, Source: StringArray(names)}
}

// Derived returns a column whose value comes from a zero-arity transform.
func Derived(output, transform string) ColumnSpec {
	return ColumnSpec{Output: output, Transform: transform}
}

// WithTransform returns a copy of the column using the named transform.
func (c ColumnSpec) WithTransform(name string) ColumnSpec {
	c.Transform = name
	return c
}

// WithType returns a copy of the column asserting the given type.
func (c ColumnSpec) WithType(k CoerceKind) ColumnSpec {
	c.Type = k
	return c
}

// Headers returns the output column names in table order.
func (t *Table) Headers() []string {
	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = c.Output
	}

	return headers
}

// Column returns the column with the given output name, or nil.
func (t *Table) Column(output string) *ColumnSpec {
	for i := range t.Columns {
		if t.Columns[i].Output == output {
			return &t.Columns[i]
		}
	}

	return nil
}

// InputFields returns every input field name the table reads, once each,
// in order of first use.
func (t *Table) InputFields() []string {
	seen := make(map[string]struct{})

	var fields []string

	for _, c := range t.Columns {
		for _, name := range c.Source {
			if _, ok := seen[name]; ok {
				continue
			}

			seen[name] = struct{}{}
			fields = append(fields, name)
		}
	}

	return fields
}

// StringArray is a string slice that can be unmarshaled from a single string or a list.
type StringArray []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}

		if str == "" {
			*s = StringArray{}
		} else {
			*s = StringArray{str}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or list of strings for source", node.Line)
	}
}

// MarshalYAML writes a single name as a plain string and longer lists as a sequence.
func (s StringArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}
