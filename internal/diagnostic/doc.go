// Package diagnostic provides structured errors and warnings for mapping
// table validation and batch runs.
//
// Key capabilities:
//   - Mapping table problems (duplicate columns, unknown transforms, arity)
//   - Row failures with file, row and column context
//   - A combined error for callers that only need pass/fail
package diagnostic
