package batch

import (
	"column-mover/internal/common"
	"column-mover/internal/diagnostic"
)

// FileStatus is the outcome of processing one input file.
type FileStatus int

const (
	// StatusWritten means every row was converted.
	StatusWritten FileStatus = iota
	// StatusPartial means the output was kept with blank records for failed rows.
	StatusPartial
	// StatusDiscarded means a row failed and the output was removed.
	StatusDiscarded
	// StatusFailed means the file could not be read or written.
	StatusFailed
)

// String returns a human-readable status name.
func (s FileStatus) String() string {
	switch s {
	case StatusWritten:
		return "written"
	case StatusPartial:
		return "partial"
	case StatusDiscarded:
		return "discarded"
	case StatusFailed:
		return "failed"
	default:
		return common.UnknownStr
	}
}

// FileResult describes what happened to one input file.
type FileResult struct {
	Input  string
	Output string
	Status FileStatus
	// Rows is the number of data rows read.
	Rows int
	// Converted is the number of rows written with computed values.
	Converted int
	// Failed is the number of rows that failed.
	Failed int
	// Err is the first error met, nil for StatusWritten.
	Err error
}

// Report collects the results of a run.
type Report struct {
	Files       []FileResult
	Diagnostics diagnostic.Diagnostics
}

// Summary counts files per status.
type Summary struct {
	Files     int
	Written   int
	Partial   int
	Discarded int
	Failed    int
}

// Summary returns per-status file counts.
func (r *Report) Summary() Summary {
	s := Summary{Files: len(r.Files)}

	for _, f := range r.Files {
		switch f.Status {
		case StatusWritten:
			s.Written++
		case StatusPartial:
			s.Partial++
		case StatusDiscarded:
			s.Discarded++
		case StatusFailed:
			s.Failed++
		}
	}

	return s
}

// Clean reports whether every file was converted without errors.
func (s Summary) Clean() bool {
	return s.Written == s.Files
}
