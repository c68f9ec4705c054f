// Package csvio reads and writes the delimiter-separated files handled by
// the batch driver.
//
// Input bytes are decoded to UTF-8 first. Undecodable sequences are replaced
// rather than rejected, so a stray byte in a customer name never fails a
// whole file. Output is always UTF-8 with "\n" line endings.
package csvio
