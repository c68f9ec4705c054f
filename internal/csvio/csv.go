package csvio

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Document is a parsed input file: a header and its data records. Records
// are kept as read; their width may differ from the header's.
type Document struct {
	Header  []string
	Records [][]string
}

// ReadAll parses delimiter-separated data. The first record is the header.
// Empty input yields an empty Document. A blank line after the header is
// kept as a record with no fields; blank lines before it are ignored.
func ReadAll(r io.Reader, comma rune) (*Document, error) {
	if err := CheckDelimiter(comma); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	doc := &Document{}

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return doc, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	doc.Header = header
	prev := cr.InputOffset()

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			doc.addBlank(blankLines(data[prev:]))
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read record %d: %w", len(doc.Records)+1, err)
		}

		// encoding/csv skips empty lines; they sit between prev and rec
		cur := cr.InputOffset()
		doc.addBlank(blankLines(data[prev:cur]))
		doc.Records = append(doc.Records, rec)
		prev = cur
	}

	return doc, nil
}

func (d *Document) addBlank(n int) {
	for range n {
		d.Records = append(d.Records, []string{})
	}
}

// blankLines counts the empty lines at the start of b.
func blankLines(b []byte) int {
	n := 0

	for {
		switch {
		case bytes.HasPrefix(b, []byte("\n")):
			b = b[1:]
		case bytes.HasPrefix(b, []byte("\r\n")):
			b = b[2:]
		default:
			return n
		}

		n++
	}
}

// ReadFileData decodes raw file bytes with the named encoding and parses them.
func ReadFileData(data []byte, encodingName string, comma rune) (*Document, error) {
	decoded, err := Decode(data, encodingName)
	if err != nil {
		return nil, err
	}

	return ReadAll(bytes.NewReader(decoded), comma)
}

// Writer writes delimiter-separated records with "\n" line endings.
type Writer struct {
	w *csv.Writer
}

// NewWriter returns a Writer using comma as the field delimiter.
func NewWriter(w io.Writer, comma rune) *Writer {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	cw.UseCRLF = false

	return &Writer{w: cw}
}

// Write writes a single record.
func (w *Writer) Write(record []string) error {
	return w.w.Write(record)
}

// Blank writes a record of width empty cells.
func (w *Writer) Blank(width int) error {
	return w.w.Write(make([]string, width))
}

// Flush writes buffered data and reports any write error.
func (w *Writer) Flush() error {
	w.w.Flush()
	return w.w.Error()
}
