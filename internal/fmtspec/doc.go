// Package fmtspec renders float64 values according to the standard
// format-specification mini-language used by Vector.FormatSpec.
//
// # Grammar
//
//	spec      := [[fill]align][sign]["z"]["#"]["0"][width][grouping]["." precision][type]
//	fill      := any character
//	align     := "<" | ">" | "=" | "^"
//	sign      := "+" | "-" | " "
//	grouping  := "," | "_"
//	type      := "e" | "E" | "f" | "F" | "g" | "G" | "n" | "%"
//
// An empty type renders the shortest representation that round-trips
// (3.0, 1e+16, 1e-05). With a precision it behaves like "g" but keeps at
// least one fractional digit in fixed notation.
//
// # Usage
//
//	s, err := fmtspec.Float(0.927295, ".1f") // "0.9"
//
//	spec, err := fmtspec.Parse(">10.3e")
//	s := spec.Float(12345.678)           // " 1.235e+04"
package fmtspec
