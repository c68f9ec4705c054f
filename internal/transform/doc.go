// Package transform holds the named derivation functions a mapping table
// can reference.
//
// A mapping column names its transform instead of embedding a closure, so
// tables stay serializable and every function can be tested on its own.
// Each function declares its arity: the number of source values it takes.
// Zero-arity functions compute a value from context alone (the current
// date, read through an injectable clock).
//
// # Built-in transforms
//
//	strip_underscores  (1)  "G_11" -> "G11"
//	subtract_decimal   (2)  "1500", "100" -> "1400,0"
//	subtract_integer   (2)  "1500", "100" -> "1400"
//	today              (0)  clock date as DD.MM.YYYY
//	date_iso           (1)  "05.03.2024" -> "2024-03-05"
//	trim               (1)  strip surrounding whitespace
package transform
