package audit

import "strings"

// formulaMarkers flag spreadsheet formulas that leaked through an export
// without being evaluated.
var formulaMarkers = []string{"=IF(", "VLOOKUP", "CONCAT"}

// Sanitize trims imported free text. Empty input and un-evaluated
// spreadsheet formulas are replaced by fallback.
func Sanitize(text, fallback string) string {
	if text == "" {
		return fallback
	}
	s := strings.TrimSpace(text)
	if isFormula(s) {
		return fallback
	}
	return s
}

func isFormula(s string) bool {
	if strings.HasPrefix(s, "=") {
		return true
	}
	for _, m := range formulaMarkers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
