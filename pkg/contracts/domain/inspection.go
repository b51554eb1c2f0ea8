package domain

import (
	"math"
	"strconv"
	"strings"
)

// InspectionRecord represents a single quality-inspection measurement as it
// arrives from an external feed. All three specification fields are textual
// because upstream sources (spreadsheets, MES exports) deliver them as text.
type InspectionRecord struct {
	ActualSpecification string `json:"actual_specification" validate:"required"`
	FromSpecification   string `json:"from_specification" validate:"required"`
	ToSpecification     string `json:"to_specification" validate:"required"`
}

// Values parses the three specification fields. A record is usable only when
// every field parses to a finite number; NaN and infinities are rejected.
func (r InspectionRecord) Values() (actual, lsl, usl float64, ok bool) {
	actual, ok = parseFinite(r.ActualSpecification)
	if !ok {
		return 0, 0, 0, false
	}
	lsl, ok = parseFinite(r.FromSpecification)
	if !ok {
		return 0, 0, 0, false
	}
	usl, ok = parseFinite(r.ToSpecification)
	if !ok {
		return 0, 0, 0, false
	}
	return actual, lsl, usl, true
}

// IsValid reports whether all three fields parse to finite numbers.
func (r InspectionRecord) IsValid() bool {
	_, _, _, ok := r.Values()
	return ok
}

func parseFinite(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
