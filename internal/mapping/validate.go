package mapping

import (
	"fmt"

	"column-mover/internal/common"
	"column-mover/internal/diagnostic"
	"column-mover/internal/transform"
)

// Validate checks a table for structural problems and for transforms that
// are unknown to the registry or called with the wrong number of values.
func Validate(t *Table, registry *transform.Registry) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if t == nil {
		res.AddError("table_is_nil", "mapping table is nil", diagnostic.Location{})
		return res
	}

	if registry == nil {
		res.AddError("registry_is_nil", "transform registry is nil", diagnostic.Location{})
		return res
	}

	if len(t.Columns) == 0 {
		res.AddError("no_columns", "mapping table has no columns", diagnostic.Location{})
		return res
	}

	for _, dup := range common.Duplicates(t.Headers()) {
		res.AddError("duplicate_column", fmt.Sprintf("duplicate output column %q", dup), diagnostic.Location{Column: dup})
	}

	for i := range t.Columns {
		validateColumn(res, i, &t.Columns[i], registry)
	}

	return res
}

func validateColumn(res *diagnostic.Diagnostics, idx int, c *ColumnSpec, registry *transform.Registry) {
	loc := diagnostic.Location{Column: c.Output}
	if c.Output == "" {
		loc.Column = fmt.Sprintf("#%d", idx+1)
		res.AddError("empty_output", "column has no output name", loc)
	}

	validateSource(res, loc, c)
	validateTransform(res, loc, c, registry)

	if c.Type < CoerceNone || c.Type > CoerceDecimal {
		res.AddError("unknown_type", fmt.Sprintf("unknown type %s", c.Type), loc)
	}
}

func validateSource(res *diagnostic.Diagnostics, loc diagnostic.Location, c *ColumnSpec) {
	switch c.Kind() {
	case SourceConflict:
		res.AddError("conflicting_source", "column sets both value and source", loc)
	case SourceLiteral:
		if *c.Value == "" && c.Transform == "" {
			res.AddError("empty_literal", "literal value is empty", loc)
		}
	case SourceField, SourceFields:
		for _, name := range c.Source {
			if name == "" {
				res.AddError("empty_source_name", "source field name is empty", loc)
			}
		}

		for _, dup := range common.Duplicates(c.Source) {
			res.AddWarning("repeated_source", fmt.Sprintf("source field %q listed more than once", dup), loc)
		}

		if c.Kind() == SourceFields && c.Transform == "" {
			res.AddError("missing_transform", "a list of source fields needs a transform to combine them", loc)
		}
	case SourceNone:
		if c.Transform == "" {
			res.AddError("missing_source", "column has neither value, source nor transform", loc)
		}
	}
}

func validateTransform(res *diagnostic.Diagnostics, loc diagnostic.Location, c *ColumnSpec, registry *transform.Registry) {
	if c.Transform == "" || c.Kind() == SourceConflict {
		return
	}

	def := registry.Get(c.Transform)
	if def == nil {
		res.AddError("unknown_transform", fmt.Sprintf("unknown transform %q", c.Transform), loc)
		return
	}

	if def.Arity != c.Arity() {
		res.AddError("transform_arity", fmt.Sprintf(
			"transform %q takes %d value(s) but the %s source supplies %d",
			c.Transform, def.Arity, c.Kind(), c.Arity()), loc)
	}
}
