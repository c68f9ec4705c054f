package batch

import (
	"errors"
	"fmt"

	"column-mover/internal/remap"
)

// RowArityError reports a data row whose field count differs from the header's.
type RowArityError struct {
	Row  int
	Want int
	Got  int
}

func (e *RowArityError) Error() string {
	return fmt.Sprintf("row %d has %d fields, header has %d", e.Row, e.Got, e.Want)
}

// RowError attaches file and row context to a row failure.
type RowError struct {
	File string
	Row  int
	Err  error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s: row %d: %v", e.File, e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// Column returns the output column that failed, if the cause names one.
func (e *RowError) Column() string {
	if ce, ok := remap.AsCellError(e.Err); ok {
		return ce.OutputColumn()
	}

	return ""
}

// Code returns the diagnostic code of the underlying failure.
func (e *RowError) Code() string {
	if ce, ok := remap.AsCellError(e.Err); ok {
		return ce.Code()
	}

	var arity *RowArityError
	if errors.As(e.Err, &arity) {
		return "row_arity"
	}

	return "row_failed"
}
