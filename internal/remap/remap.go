package remap

import (
	"fmt"

	"column-mover/internal/mapping"
	"column-mover/internal/transform"
)

// InputRow maps header names to raw cell values.
type InputRow map[string]string

// OutputRow holds one cell per mapping column, in table order.
type OutputRow []string

// Transformer computes output rows from input rows. It is safe for
// concurrent use as long as the registry's transforms are.
type Transformer struct {
	table    *mapping.Table
	registry *transform.Registry
}

// New validates the table against the registry and returns a Transformer.
func New(table *mapping.Table, registry *transform.Registry) (*Transformer, error) {
	if diags := mapping.Validate(table, registry); !diags.IsValid() {
		return nil, fmt.Errorf("invalid mapping table: %w", diags.Error())
	}

	return &Transformer{table: table, registry: registry}, nil
}

// Headers returns the output header row.
func (t *Transformer) Headers() []string {
	return t.table.Headers()
}

// Sources returns the input field names the table reads.
func (t *Transformer) Sources() []string {
	return t.table.InputFields()
}

// Width returns the number of output columns.
func (t *Transformer) Width() int {
	return len(t.table.Columns)
}

// Transform computes every column for row, stopping at the first failure.
func (t *Transformer) Transform(row InputRow) (OutputRow, error) {
	out := make(OutputRow, 0, len(t.table.Columns))

	for i := range t.table.Columns {
		cell, err := t.Cell(&t.table.Columns[i], row)
		if err != nil {
			return nil, err
		}

		out = append(out, cell)
	}

	return out, nil
}

// Cell computes a single column for row.
func (t *Transformer) Cell(c *mapping.ColumnSpec, row InputRow) (string, error) {
	args, err := resolve(c, row)
	if err != nil {
		return "", err
	}

	var cell string

	switch {
	case c.Transform != "":
		cell, err = t.registry.Apply(c.Transform, args...)
		if err != nil {
			return "", &TransformError{Column: c.Output, Transform: c.Transform, Err: err}
		}
	case len(args) == 1:
		cell = args[0]
	default:
		// Validate rejects field lists without a transform.
		return "", &TransformError{
			Column: c.Output,
			Err:    fmt.Errorf("%d source values and no transform to combine them", len(args)),
		}
	}

	cell, err = c.Type.Coerce(cell)
	if err != nil {
		return "", &TypeCoercionError{Column: c.Output, Type: c.Type, Err: err}
	}

	if cell == "" {
		return "", &NullCellError{Column: c.Output}
	}

	return cell, nil
}

// resolve returns the raw values the column reads, in source order.
func resolve(c *mapping.ColumnSpec, row InputRow) ([]string, error) {
	switch c.Kind() {
	case mapping.SourceLiteral:
		return []string{*c.Value}, nil
	case mapping.SourceField, mapping.SourceFields:
		args := make([]string, len(c.Source))
		for i, name := range c.Source {
			v, ok := row[name]
			if !ok {
				return nil, &MissingFieldError{Column: c.Output, Field: name}
			}

			args[i] = v
		}

		return args, nil
	case mapping.SourceNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("column %q: %s value source", c.Output, c.Kind())
	}
}
