package remap

import (
	"errors"
	"fmt"

	"column-mover/internal/mapping"
)

// CellError is implemented by every error raised while computing a cell.
type CellError interface {
	error
	// OutputColumn is the output column being computed.
	OutputColumn() string
	// Code is a short stable identifier for diagnostics.
	Code() string
}

// MissingFieldError reports a source field absent from the input row.
type MissingFieldError struct {
	Column string
	Field  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("column %q: input field %q not found", e.Column, e.Field)
}

func (e *MissingFieldError) OutputColumn() string { return e.Column }
func (e *MissingFieldError) Code() string         { return "missing_field" }

// TransformError reports a failing transform.
type TransformError struct {
	Column    string
	Transform string
	Err       error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("column %q: transform %s: %v", e.Column, e.Transform, e.Err)
}

func (e *TransformError) Unwrap() error        { return e.Err }
func (e *TransformError) OutputColumn() string { return e.Column }
func (e *TransformError) Code() string         { return "transform_failed" }

// TypeCoercionError reports a value that is not of the column's declared type.
type TypeCoercionError struct {
	Column string
	Type   mapping.CoerceKind
	Err    error
}

func (e *TypeCoercionError) Error() string {
	return fmt.Sprintf("column %q: not a valid %s: %v", e.Column, e.Type, e.Err)
}

func (e *TypeCoercionError) Unwrap() error        { return e.Err }
func (e *TypeCoercionError) OutputColumn() string { return e.Column }
func (e *TypeCoercionError) Code() string         { return "type_coercion" }

// NullCellError reports an empty computed value.
type NullCellError struct {
	Column string
}

func (e *NullCellError) Error() string {
	return fmt.Sprintf("column %q: value is empty", e.Column)
}

func (e *NullCellError) OutputColumn() string { return e.Column }
func (e *NullCellError) Code() string         { return "null_cell" }

// AsCellError returns the CellError in err's chain, if any.
func AsCellError(err error) (CellError, bool) {
	var ce CellError
	if errors.As(err, &ce) {
		return ce, true
	}

	return nil, false
}
