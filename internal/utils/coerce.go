package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseFloatOrZero parses s as a finite number. Blank, malformed and
// non-finite input yields 0.
func ParseFloatOrZero(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
