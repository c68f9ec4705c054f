package mapping

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

//go:generate go tool stringer -type=CoerceKind -linecomment -output=coercekind_string.go

// CoerceKind is the type a computed cell must be representable as.
type CoerceKind int

const (
	CoerceNone    CoerceKind = iota // none
	CoerceString                    // string
	CoerceInteger                   // integer
	CoerceDecimal                   // decimal
)

// ParseCoerceKind parses a type name as written in a mapping file.
func ParseCoerceKind(s string) (CoerceKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return CoerceNone, nil
	case "string", "str", "text":
		return CoerceString, nil
	case "integer", "int":
		return CoerceInteger, nil
	case "decimal", "float", "number":
		return CoerceDecimal, nil
	default:
		return CoerceNone, fmt.Errorf("unknown type %q", s)
	}
}

// Coerce checks that v is representable as k and returns it unchanged.
func (k CoerceKind) Coerce(v string) (string, error) {
	switch k {
	case CoerceNone:
		return v, nil
	case CoerceString:
		if !utf8.ValidString(v) {
			return "", fmt.Errorf("%q is not valid UTF-8 text", v)
		}
	case CoerceInteger:
		if _, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err != nil {
			return "", fmt.Errorf("%q is not an integer", v)
		}
	case CoerceDecimal:
		f, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(v), ",", ".", 1), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return "", fmt.Errorf("%q is not a decimal number", v)
		}
	default:
		return "", fmt.Errorf("unsupported type %s", k)
	}

	return v, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *CoerceKind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	parsed, err := ParseCoerceKind(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*k = parsed

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (k CoerceKind) MarshalYAML() (any, error) {
	return k.String(), nil
}
