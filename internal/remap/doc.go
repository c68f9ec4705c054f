// Package remap applies a mapping table to one input row at a time.
//
// For every column, in table order, the transformer resolves the raw value
// (literal, one field or several fields), runs the column's transform,
// checks its type and rejects empty results. The first failure stops the
// row; the returned error names the output column and wraps the cause:
//
//	*MissingFieldError   the row has no such input field
//	*TransformError      the transform failed
//	*TypeCoercionError   the value is not of the declared type
//	*NullCellError       the computed value is empty
//
// All four implement CellError.
package remap
