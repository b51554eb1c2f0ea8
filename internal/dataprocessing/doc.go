// Package dataprocessing reads quality-inspection measurement records from
// CSV and XLSX files and converts them into domain.InspectionRecord values
// for the analysis engine.
//
// Input files are expected to carry one measured characteristic per file,
// with a header row naming the actual measurement column and the lower/upper
// specification columns. Header matching is tolerant: column names are
// compared case-insensitively and several common spellings are accepted.
package dataprocessing
