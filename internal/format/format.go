// Package format renders evaluation results for display.
package format

import (
	"fmt"
	"math"
)

// Scientific renders v as "<mantissa> x 10^<exponent>" with a six-digit
// mantissa. Zero renders as "0". Every other value uses this form, however
// short its plain decimal spelling would be.
func Scientific(v float64) string {
	if v == 0 {
		return "0"
	}
	exp := int(math.Floor(math.Log10(math.Abs(v))))
	mantissa := v / math.Pow(10, float64(exp))
	// Log10 can land one ulp short of an integer for exact powers of ten.
	switch m := math.Abs(mantissa); {
	case m >= 10:
		exp++
		mantissa = v / math.Pow(10, float64(exp))
	case m < 1:
		exp--
		mantissa = v / math.Pow(10, float64(exp))
	}
	return fmt.Sprintf("%.6f x 10^%d", mantissa, exp)
}
