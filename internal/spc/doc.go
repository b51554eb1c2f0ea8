// Package spc computes Statistical Process Control analytics from a sequence
// of quality-inspection measurements.
//
// One call to Analyzer.Analyze runs a single synchronous pass over the input
// records: validation and extraction, subgrouping, Shewhart control-limit
// derivation, Cp/Cpk/Pp/Ppk capability computation, histogram binning,
// runs/trend detection, and a rule-based interpretation of the results. The
// computation is a pure function of its inputs; concurrent calls need no
// coordination.
//
// Measurement order is process/time order and is semantically significant:
// subgrouping, moving ranges, and trend detection all depend on it.
package spc
