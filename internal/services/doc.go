// Package services holds the application service layer between the HTTP
// transport and the analysis engine. Services own file discovery, parsing,
// report writing, and health reporting; the math stays in internal/spc.
package services
