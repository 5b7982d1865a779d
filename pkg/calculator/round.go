package calculator

import (
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

// maxFractionDigits is the number of fractional digits of the smallest
// subnormal float64; no float64 has more.
const maxFractionDigits = 1074

// Round rounds x to the given number of fractional digits using half-to-even
// rounding on the shortest decimal representation of x, so 2.5 rounds to 2
// and 0.125 rounds to 0.12 at precision 2.
//
// Values outside the decimal range (|x| >= 1e19, NaN, ±Inf) and precisions
// beyond decimal.MaxScale are formatted with strconv at the requested
// precision and parsed back. Precisions above 1074 are treated as 1074.
func Round(x float64, precision int) float64 {
	precision = max(0, min(precision, maxFractionDigits))
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	if precision <= decimal.MaxScale {
		if d, err := decimal.NewFromFloat64(x); err == nil {
			if f, ok := d.Round(precision).Float64(); ok {
				return f
			}
		}
	}

	rounded, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', precision, 64), 64)
	if err != nil {
		return x
	}
	return rounded
}

func (c *Calculator) round(x float64) float64 {
	return Round(x, c.precision)
}
