// Package form turns submitted key-value form bodies into typed draft
// records. Each entity has a Form struct that keeps the raw submitted
// strings so a failed submission can be re-rendered exactly as entered,
// plus a Validate step that yields field-level errors.
package form

import (
	"math"
	"strconv"
	"strings"
)

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// parseNumber accepts only finite values; ParseFloat would otherwise let
// "NaN" and "Inf" through into stored records.
func parseNumber(raw string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// trimFloat renders a stored numeric value back into form text without
// trailing zeros.
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
