package exporter

import (
	"fmt"
	"math"
	"strconv"
)

// reportPrecision is the number of decimal places kept in reports.
const reportPrecision = 4

// roundTo rounds a value to the given number of decimal places.
func roundTo(f float64, places int) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	shift := math.Pow(10, float64(places))
	return math.Round(f*shift) / shift
}

// formatFloat formats a float64 value for CSV output at report precision.
// Trailing zeros are trimmed so 13.4 stays 13.4, not 13.4000.
func formatFloat(f float64) string {
	return strconv.FormatFloat(roundTo(f, reportPrecision), 'f', -1, 64)
}

// formatInt formats an int value for CSV output
func formatInt(i int) string {
	return fmt.Sprintf("%d", i)
}
