// Package mapping defines the declarative mapping table that turns one
// input record into one output record.
//
// The table is an ordered list of columns. Each column names its output
// header and how the cell is obtained:
//
//	version: "1"
//	columns:
//	  - output: Numer ewidencyjny
//	    source: POD
//	    type: string
//	  - output: Rodzaj odczytu
//	    value: RZEC                       # literal
//	  - output: Grupa Taryfowa OSD
//	    source: Taryfa
//	    transform: strip_underscores
//	  - output: Wskazanie na początek
//	    source: [WskazanieLicznika, ZuzycieM3]
//	    transform: subtract_decimal
//	  - output: Data zatwierdzenia
//	    transform: today                  # context-derived, no source
//
// # Value sources
//
// Exactly one of the following supplies the raw value:
//   - value: a literal constant
//   - source: a single input field name
//   - source: a list of two or more input field names
//
// A column without a value source is only valid when its transform takes
// no arguments.
//
// # Transforms and types
//
// Transforms are referenced by name and looked up in a transform.Registry.
// Their arity must match the number of source values (1 for a literal or a
// single field, N for a field list, 0 for none). The optional type
// (string, integer, decimal) is checked after the transform runs.
//
// The column order of the table is the column order of the output file.
package mapping
