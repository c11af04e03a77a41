package fuzzydl

import (
	"math"
	"strconv"
	"strings"
)

// FormatDouble renders a float64 the way fuzzyDL files conventionally spell
// numbers: at least one fractional digit ("1.0", "-1000000.0"), and
// computerized scientific notation outside [1e-3, 1e7) ("1.0E7", "1.5E-4").
func FormatDouble(f float64) string {
	return formatNumber(f, 64)
}

// FormatFloat is FormatDouble for single-precision values.
func FormatFloat(f float32) string {
	return formatNumber(float64(f), 32)
}

func formatNumber(f float64, bitSize int) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(f)
	if abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(f, 'f', -1, bitSize)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	// strconv yields "1E+07" or "1.5E-04".
	s := strconv.FormatFloat(f, 'E', -1, bitSize)
	mantissa, exponent, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	exp, err := strconv.Atoi(exponent)
	if err != nil {
		return s
	}
	return mantissa + "E" + strconv.Itoa(exp)
}

// formatInt renders an integer bound.
func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}
