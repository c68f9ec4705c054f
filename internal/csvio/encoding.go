package csvio

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	xtransform "golang.org/x/text/transform"
)

// DefaultEncoding is used when no input encoding is configured.
const DefaultEncoding = "utf-8"

// LookupEncoding resolves an IANA charset name such as "utf-8",
// "windows-1250" or "iso-8859-2".
func LookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultEncoding
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}

	if enc == nil {
		return nil, fmt.Errorf("encoding %q is not supported", name)
	}

	return enc, nil
}

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Decode converts data in the named encoding to UTF-8. A leading byte order
// mark is dropped and invalid sequences become U+FFFD.
func Decode(data []byte, name string) ([]byte, error) {
	enc, err := LookupEncoding(name)
	if err != nil {
		return nil, err
	}

	var t xtransform.Transformer = enc.NewDecoder()
	if enc == unicode.UTF8 {
		// cut by hand: BOMOverride switches to a pass-through decoder
		data = bytes.TrimPrefix(data, utf8BOM)
		t = unicode.UTF8.NewDecoder()
	}

	out, _, err := xtransform.Bytes(t, data)
	if err != nil {
		return nil, fmt.Errorf("decode %s input: %w", name, err)
	}

	return out, nil
}

// ErrInvalidDelimiter is returned for delimiters encoding/csv cannot use.
var ErrInvalidDelimiter = errors.New("invalid delimiter")

// CheckDelimiter reports whether r can separate fields.
func CheckDelimiter(r rune) error {
	switch r {
	case 0, '"', '\r', '\n', utf8.RuneError:
		return fmt.Errorf("%w %q", ErrInvalidDelimiter, r)
	}

	return nil
}
