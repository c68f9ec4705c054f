package batch

import (
	"fmt"
	"strings"

	"column-mover/internal/common"
)

// Policy decides what happens to an output file when a row fails.
type Policy int

const (
	// AllOrNothing aborts the file at the first failing row and removes its output.
	AllOrNothing Policy = iota
	// SkipRow writes a blank record for each failing row and keeps going.
	SkipRow
)

// String returns the configuration name of the policy.
func (p Policy) String() string {
	switch p {
	case AllOrNothing:
		return "all-or-nothing"
	case SkipRow:
		return "skip-row"
	default:
		return common.UnknownStr
	}
}

// ParsePolicy parses a policy name as used in flags and config files.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all-or-nothing", "abort":
		return AllOrNothing, nil
	case "skip-row", "skip":
		return SkipRow, nil
	default:
		return AllOrNothing, fmt.Errorf("unknown policy %q (want all-or-nothing or skip-row)", s)
	}
}
