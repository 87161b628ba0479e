package validation

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber разбирает конечное число из текстового значения.
// Пробелы по краям игнорируются, NaN и бесконечности отклоняются.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

// ParseWhole разбирает целое число. Значения с дробной частью отклоняются.
func ParseWhole(s string) (int, bool) {
	v, ok := ParseNumber(s)
	if !ok || v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return 0, false
	}

	return int(v), true
}
