package formatter

import (
	"fmt"
	"math"
	"strconv"
)

// defaultPrecision mirrors the stream default used when a negative precision is given.
const defaultPrecision = 6

// FormatFixed renders v with precision significant digits, right aligned in a
// field of at least width cells. Trailing zeros are dropped and the exponent
// form is used when the decimal exponent is below -4 or at least precision,
// the same output a C++ stream produces for setw(width) and setprecision(precision).
// The sign counts toward the field and the result is never cut to width.
func FormatFixed(v float64, width, precision int) string {
	if precision < 0 {
		precision = defaultPrecision
	}
	switch {
	case math.IsNaN(v):
		return fmt.Sprintf("%*s", width, "nan")
	case math.IsInf(v, 1):
		return fmt.Sprintf("%*s", width, "inf")
	case math.IsInf(v, -1):
		return fmt.Sprintf("%*s", width, "-inf")
	}
	return fmt.Sprintf("%*.*g", width, precision, v)
}

// FormatInteger renders v in base 10 with no padding.
func FormatInteger(v int64) string {
	return strconv.FormatInt(v, 10)
}

// Truncate narrows v to an integer, dropping the fraction toward zero.
// NaN becomes 0 and out of range values clamp to the int64 bounds.
func Truncate(v float64) int64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}
	return int64(v)
}
