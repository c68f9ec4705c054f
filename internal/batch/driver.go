package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"

	"column-mover/internal/common"
	"column-mover/internal/csvio"
	"column-mover/internal/diagnostic"
	"column-mover/internal/match"
	"column-mover/internal/remap"
)

// Options configures a Driver.
type Options struct {
	// Pattern selects input files, e.g. "data/*".
	Pattern string
	// OutputDir is created next to the matched files (in the pattern's directory).
	OutputDir string
	// Delimiter separates fields in input and output.
	Delimiter rune
	// Encoding is the IANA name of the input encoding.
	Encoding string
	// Policy decides what happens to files with failing rows.
	Policy Policy
	// Exclude lists extra paths never treated as input.
	Exclude []string
}

// DefaultOptions returns the options of the standard gas meter setup:
// data/* in, "PLIKI GAZ" out, semicolon separated UTF-8.
func DefaultOptions() Options {
	return Options{
		Pattern:   filepath.Join("data", "*"),
		OutputDir: "PLIKI GAZ",
		Delimiter: ';',
		Encoding:  csvio.DefaultEncoding,
		Policy:    AllOrNothing,
	}
}

// Validate checks the options for values the driver cannot work with.
func (o Options) Validate() error {
	if o.Pattern == "" {
		return errors.New("input pattern is empty")
	}

	if _, err := filepath.Match(o.Pattern, ""); err != nil {
		return fmt.Errorf("invalid pattern %q: %w", o.Pattern, err)
	}

	if dir := filepath.Dir(o.Pattern); hasMeta(dir) {
		return fmt.Errorf("pattern %q: wildcards are only allowed in the file name, not in directory %q", o.Pattern, dir)
	}

	if o.OutputDir == "" || filepath.Clean(o.OutputDir) == "." {
		return fmt.Errorf("output directory %q would overwrite the input files", o.OutputDir)
	}

	if err := csvio.CheckDelimiter(o.Delimiter); err != nil {
		return err
	}

	if _, err := csvio.LookupEncoding(o.Encoding); err != nil {
		return err
	}

	if o.Policy != AllOrNothing && o.Policy != SkipRow {
		return fmt.Errorf("unknown policy %d", o.Policy)
	}

	return nil
}

// Driver runs a Transformer over every matched file.
type Driver struct {
	opts        Options
	transformer *remap.Transformer
	log         logrus.FieldLogger
	remove      func(string) error
}

// NewDriver validates opts and returns a Driver. A nil logger discards output.
func NewDriver(tr *remap.Transformer, opts Options, log logrus.FieldLogger) (*Driver, error) {
	if tr == nil {
		return nil, errors.New("transformer is nil")
	}

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	return &Driver{opts: opts, transformer: tr, log: log, remove: os.Remove}, nil
}

// OutputRoot returns the directory output files are written to.
func (d *Driver) OutputRoot() string {
	return filepath.Join(filepath.Dir(d.opts.Pattern), d.opts.OutputDir)
}

// Run processes every matched file. Row and file failures are recorded in
// the report; the returned error is only set when the run could not start
// or the context was canceled.
func (d *Driver) Run(ctx context.Context) (*Report, error) {
	files, err := Discover(d.opts.Pattern, d.opts.Exclude...)
	if err != nil {
		return nil, err
	}

	root := d.OutputRoot()
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	d.log.WithFields(logrus.Fields{
		"pattern": d.opts.Pattern,
		"output":  root,
		"files":   len(files),
		"policy":  d.opts.Policy.String(),
	}).Info("starting batch")

	report := &Report{}
	claimed := make(map[string]string, len(files))

	for _, in := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		var diags diagnostic.Diagnostics

		out := filepath.Join(root, filepath.Base(in))

		var res FileResult
		if prev, taken := claimed[out]; taken {
			res = d.collision(in, out, prev, &diags)
		} else {
			claimed[out] = in
			res = d.ProcessFile(in, out, &diags)
		}

		report.Files = append(report.Files, res)
		report.Diagnostics.Merge(diags)
	}

	s := report.Summary()
	d.log.WithFields(logrus.Fields{
		"files":     s.Files,
		"written":   s.Written,
		"partial":   s.Partial,
		"discarded": s.Discarded,
		"failed":    s.Failed,
	}).Info("batch finished")

	return report, nil
}

// ProcessFile converts one input file into out, applying the policy.
// Problems are appended to diags.
func (d *Driver) ProcessFile(in, out string, diags *diagnostic.Diagnostics) FileResult {
	name := filepath.Base(in)
	log := d.log.WithField("file", name)
	res := FileResult{Input: in, Output: out}

	fail := func(code string, err error) FileResult {
		res.Status = StatusFailed
		res.Err = err
		d.removeOutput(out, log)
		diags.AddError(code, err.Error(), diagnostic.Location{File: name})
		log.WithError(err).Error("file failed")

		return res
	}

	if sameFile(in, out) {
		err := fmt.Errorf("output %s is the input file", out)
		res.Status = StatusFailed
		res.Err = err
		diags.AddError("output_is_input", err.Error(), diagnostic.Location{File: name})
		log.WithError(err).Error("file failed")

		return res
	}

	data, err := os.ReadFile(in)
	if err != nil {
		return fail("read_failed", err)
	}

	doc, err := csvio.ReadFileData(data, d.opts.Encoding, d.opts.Delimiter)
	if err != nil {
		return fail("parse_failed", err)
	}

	d.checkHeader(doc.Header, name, log, diags)

	f, err := os.Create(out)
	if err != nil {
		return fail("create_failed", err)
	}

	res.Rows = len(doc.Records)

	status, rowErr := d.writeRows(f, doc, name, log, diags, &res)

	closeErr := f.Close()

	switch {
	case rowErr != nil:
		if status == StatusFailed {
			return fail("write_failed", rowErr)
		}

		res.Status = status
		res.Err = rowErr

		d.removeOutput(out, log)
		log.WithField("output", out).Warn("output discarded")
	case closeErr != nil:
		return fail("write_failed", closeErr)
	default:
		res.Status = status
	}

	log.WithFields(logrus.Fields{
		"rows":      res.Rows,
		"converted": res.Converted,
		"failed":    res.Failed,
		"status":    res.Status.String(),
	}).Info("file processed")

	diags.AddInfo("file_"+res.Status.String(),
		fmt.Sprintf("%d rows, %d converted, %d failed", res.Rows, res.Converted, res.Failed),
		diagnostic.Location{File: name})

	return res
}

// collision fails in without touching out, which prev already produced.
func (d *Driver) collision(in, out, prev string, diags *diagnostic.Diagnostics) FileResult {
	name := filepath.Base(in)
	err := fmt.Errorf("output %s is already written for %s", out, prev)

	diags.AddError("output_collision", err.Error(), diagnostic.Location{File: name})
	d.log.WithField("file", name).WithError(err).Error("file failed")

	return FileResult{Input: in, Output: out, Status: StatusFailed, Err: err}
}

// writeRows writes the header and every row. It returns the file status and
// the first error.
func (d *Driver) writeRows(
	f *os.File,
	doc *csvio.Document,
	name string,
	log logrus.FieldLogger,
	diags *diagnostic.Diagnostics,
	res *FileResult,
) (FileStatus, error) {
	w := csvio.NewWriter(f, d.opts.Delimiter)
	if err := w.Write(d.transformer.Headers()); err != nil {
		return StatusFailed, err
	}

	var firstErr error

	for i, rec := range doc.Records {
		row := i + 1

		out, err := d.convert(doc.Header, rec, row)
		if err != nil {
			rowErr := &RowError{File: name, Row: row, Err: err}
			d.recordRowError(rowErr, log, diags)
			res.Failed++

			if firstErr == nil {
				firstErr = rowErr
			}

			if d.opts.Policy == AllOrNothing {
				return StatusDiscarded, rowErr
			}

			if err := w.Blank(d.transformer.Width()); err != nil {
				return StatusFailed, err
			}

			continue
		}

		if err := w.Write(out); err != nil {
			return StatusFailed, err
		}

		res.Converted++
	}

	if err := w.Flush(); err != nil {
		return StatusFailed, err
	}

	if firstErr != nil {
		res.Err = firstErr
		return StatusPartial, nil
	}

	return StatusWritten, nil
}

func (d *Driver) convert(header, rec []string, row int) (remap.OutputRow, error) {
	if len(rec) != len(header) {
		return nil, &RowArityError{Row: row, Want: len(header), Got: len(rec)}
	}

	input := make(remap.InputRow, len(header))
	for j, h := range header {
		input[h] = rec[j]
	}

	return d.transformer.Transform(input)
}

func (d *Driver) recordRowError(err *RowError, log logrus.FieldLogger, diags *diagnostic.Diagnostics) {
	loc := diagnostic.Location{File: err.File, Row: err.Row, Column: err.Column()}

	fields := logrus.Fields{"row": err.Row}
	if loc.Column != "" {
		fields["column"] = loc.Column
	}

	entry := log.WithFields(fields).WithError(err.Err)

	if d.opts.Policy == AllOrNothing {
		diags.AddError(err.Code(), err.Err.Error(), loc)
		entry.Error("row failed, skipping file")
	} else {
		diags.AddWarning(err.Code(), err.Err.Error(), loc)
		entry.Warn("row failed, writing blank record")
	}
}

func (d *Driver) checkHeader(header []string, name string, log logrus.FieldLogger, diags *diagnostic.Diagnostics) {
	loc := diagnostic.Location{File: name}

	if len(header) == 0 {
		diags.AddWarning("empty_input", "input has no header", loc)
		log.Warn("input has no header")

		return
	}

	for _, dup := range common.Duplicates(header) {
		loc.Column = dup
		diags.AddWarning("duplicate_header", fmt.Sprintf("header %q appears more than once, the last one wins", dup), loc)
		log.WithField("column", dup).Warn("duplicate header")
	}

	present := make(map[string]struct{}, len(header))
	for _, h := range header {
		present[h] = struct{}{}
	}

	for _, src := range d.transformer.Sources() {
		if _, ok := present[src]; ok {
			continue
		}

		msg := fmt.Sprintf("input has no column %q", src)
		entry := log.WithField("source", src)

		if hint, ok := match.Suggest(src, header); ok {
			msg += fmt.Sprintf(", did you mean %q?", hint)
			entry = entry.WithField("suggestion", hint)
		}

		loc.Column = src
		diags.AddWarning("missing_source_column", msg, loc)
		entry.Warn("source column missing from header")
	}
}

// removeOutput deletes a partial or stale output file. Anything that is not
// a regular file is left alone.
func (d *Driver) removeOutput(path string, log logrus.FieldLogger) {
	fi, err := os.Lstat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return
	}

	if err := d.remove(path); err != nil {
		log.WithField("output", path).WithError(err).Warn("could not remove output")
	}
}

// hasMeta reports whether path contains glob metacharacters.
func hasMeta(path string) bool {
	magic := `*?[`
	if runtime.GOOS != "windows" {
		magic = `*?[\`
	}

	return strings.ContainsAny(path, magic)
}

// sameFile reports whether both paths name the same existing file.
func sameFile(a, b string) bool {
	fa, err := os.Stat(a)
	if err != nil {
		return false
	}

	fb, err := os.Stat(b)
	if err != nil {
		return false
	}

	return os.SameFile(fa, fb)
}
