package transform

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

// Names of the built-in transforms.
const (
	StripUnderscoresName = "strip_underscores"
	SubtractDecimalName  = "subtract_decimal"
	SubtractIntegerName  = "subtract_integer"
	TodayName            = "today"
	DateISOName          = "date_iso"
	TrimName             = "trim"
)

// DisplayDateLayout is the DD.MM.YYYY layout used for context-derived dates.
const DisplayDateLayout = "02.01.2006"

// ISODateLayout is the YYYY-MM-DD layout produced by date_iso.
const ISODateLayout = "2006-01-02"

// inputDateLayouts are the source date layouts date_iso understands.
var inputDateLayouts = []string{
	DisplayDateLayout,
	ISODateLayout,
	"02-01-2006",
	"2006.01.02",
	"02/01/2006",
}

// Builtins returns a registry holding every built-in transform. Date-based
// transforms read the given clock.
func Builtins(clk clockwork.Clock) *Registry {
	r := NewRegistry()

	r.MustRegister(Def{
		Name:        StripUnderscoresName,
		Arity:       1,
		Description: "removes every underscore",
		Func:        unary(StripUnderscores),
	})
	r.MustRegister(Def{
		Name:        SubtractDecimalName,
		Arity:       2,
		Description: "a - b as a decimal number with a comma separator",
		Func:        binary(SubtractDecimal),
	})
	r.MustRegister(Def{
		Name:        SubtractIntegerName,
		Arity:       2,
		Description: "a - b as an integer",
		Func:        binary(SubtractInteger),
	})
	r.MustRegister(Def{
		Name:        TodayName,
		Arity:       0,
		Description: "current date as DD.MM.YYYY",
		Func: func(...string) (string, error) {
			return Today(clk), nil
		},
	})
	r.MustRegister(Def{
		Name:        DateISOName,
		Arity:       1,
		Description: "reformats a date as YYYY-MM-DD",
		Func:        unaryErr(DateISO),
	})
	r.MustRegister(Def{
		Name:        TrimName,
		Arity:       1,
		Description: "strips surrounding whitespace",
		Func:        unary(strings.TrimSpace),
	})

	return r
}

// StripUnderscores removes every underscore, e.g. "G_11" -> "G11".
func StripUnderscores(v string) string {
	return strings.ReplaceAll(v, "_", "")
}

// SubtractDecimal parses both values as floating point numbers and returns
// their difference with at least one fractional digit and a comma as the
// decimal separator: "1500", "100" -> "1400,0".
func SubtractDecimal(a, b string) (string, error) {
	x, err := parseFloat(a)
	if err != nil {
		return "", err
	}

	y, err := parseFloat(b)
	if err != nil {
		return "", err
	}

	diff := x - y
	if math.IsNaN(diff) || math.IsInf(diff, 0) {
		return "", fmt.Errorf("%s - %s is not a finite number", a, b)
	}

	return strings.Replace(formatDecimal(diff), ".", ",", 1), nil
}

// SubtractInteger parses both values as base-10 integers and returns their
// difference: "1500", "100" -> "1400".
func SubtractInteger(a, b string) (string, error) {
	x, err := parseInt(a)
	if err != nil {
		return "", err
	}

	y, err := parseInt(b)
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(x-y, 10), nil
}

// Today returns the clock's current date as DD.MM.YYYY.
func Today(clk clockwork.Clock) string {
	return clk.Now().Format(DisplayDateLayout)
}

// DateISO reformats a date in any of the accepted input layouts as YYYY-MM-DD.
func DateISO(v string) (string, error) {
	s := strings.TrimSpace(v)
	for _, layout := range inputDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(ISODateLayout), nil
		}
	}

	return "", fmt.Errorf("unrecognized date %q", v)
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q as number: %w", s, unwrapNumError(err))
	}

	return f, nil
}

func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q as integer: %w", s, unwrapNumError(err))
	}

	return n, nil
}

// unwrapNumError drops the strconv prefix, which repeats the input.
func unwrapNumError(err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return numErr.Err
	}

	return err
}

// formatDecimal renders f using the shortest representation that round-trips,
// keeping a trailing ".0" for whole numbers and switching to exponent form
// outside [1e-4, 1e16).
func formatDecimal(f float64) string {
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}

func unary(fn func(string) string) Func {
	return func(args ...string) (string, error) {
		return fn(args[0]), nil
	}
}

func unaryErr(fn func(string) (string, error)) Func {
	return func(args ...string) (string, error) {
		return fn(args[0])
	}
}

func binary(fn func(string, string) (string, error)) Func {
	return func(args ...string) (string, error) {
		return fn(args[0], args[1])
	}
}
