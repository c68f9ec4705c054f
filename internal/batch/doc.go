// Package batch discovers input files and converts each one with a
// remap.Transformer.
//
// Files are processed one at a time. Every file is read whole, its rows are
// checked against the header width and transformed, and the output is
// written under the output directory with the input's base name. What
// happens to a file with a failing row depends on the Policy:
//
//	AllOrNothing  stop at the first failing row and delete the output
//	SkipRow       write an empty record in the failing row's place and go on
//
// Row and file failures are logged and recorded in the Report. They never
// stop the batch; only failing to create the output directory does.
package batch
