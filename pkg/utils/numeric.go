package utils

import (
	"regexp"
	"strconv"
	"strings"
)

// Commas are accepted only as thousands separators in groups of three,
// e.g. "1,234.56". A decimal comma like "12,34" does not match and the
// value falls through to ParseFloat, which rejects it.
var thousandsPattern = regexp.MustCompile(`^\d{1,3}(,\d{3})+(\.\d+)?$`)

// ParseNumberOrZero converts a cell value to a float64, returning 0 for
// anything that does not parse. Source sheets routinely carry blank cells,
// text like "N/A", or numbers with thousands separators; a bad cell must
// never abort receipt generation.
func ParseNumberOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if thousandsPattern.MatchString(s) {
		s = strings.ReplaceAll(s, ",", "")
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	if n < 0 {
		return 0
	}
	return n
}
