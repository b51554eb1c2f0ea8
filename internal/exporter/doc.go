// Package exporter writes analysis reports to CSV and JSON files.
//
// The analysis engine keeps full float64 precision; all presentation
// rounding happens here, at the output boundary, so chained computations
// never compound rounding error.
package exporter
