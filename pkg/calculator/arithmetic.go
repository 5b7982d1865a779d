package calculator

import (
	"fmt"
	"math"
)

// Bounds of the range in which every integer is exactly representable as a float64.
const (
	MaxSafeInteger = 1<<53 - 1
	MinSafeInteger = -MaxSafeInteger
)

// maxFactorial is the largest n whose factorial fits in a float64
const maxFactorial = 170

func validateFinite(values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validationf("all parameters must be finite numbers, got %v", v)
		}
	}
	return nil
}

// Add returns a+b. It fails with ErrOverflow when the sum would leave the
// safe integer range.
func (c *Calculator) Add(a, b float64) (float64, error) {
	if err := validateFinite(a, b); err != nil {
		return 0, err
	}

	var result float64
	switch {
	case a == 0:
		result = c.record(OpAdd, b, true, a, b)
	case b == 0:
		result = c.record(OpAdd, a, true, a, b)
	default:
		if (a > 0 && b > MaxSafeInteger-a) || (a < 0 && b < MinSafeInteger-a) {
			return 0, overflowf("%v + %v exceeds the safe integer range", a, b)
		}
		result = c.record(OpAdd, a+b, false, a, b)
	}

	if c.debug {
		c.notify(LevelDebug, OpAdd, result, "addition performed "+describe(OpAdd, result, []float64{a, b}), a, b)
	}
	return result, nil
}

// Subtract returns a-b
func (c *Calculator) Subtract(a, b float64) (float64, error) {
	if err := validateFinite(a, b); err != nil {
		return 0, err
	}
	return c.record(OpSubtract, a-b, false, a, b), nil
}

// Multiply returns a*b. Multiplying by zero or one returns without a history entry.
func (c *Calculator) Multiply(a, b float64) (float64, error) {
	if err := validateFinite(a, b); err != nil {
		return 0, err
	}

	switch {
	case a == 0 || b == 0:
		return c.record(OpMultiply, 0, true, a, b), nil
	case a == 1:
		return c.record(OpMultiply, b, true, a, b), nil
	case b == 1:
		return c.record(OpMultiply, a, true, a, b), nil
	}
	return c.record(OpMultiply, a*b, false, a, b), nil
}

// Divide returns dividend/divisor rounded to the calculator precision
func (c *Calculator) Divide(dividend, divisor float64) (float64, error) {
	if err := validateFinite(dividend, divisor); err != nil {
		return 0, err
	}
	if divisor == 0 {
		return 0, ErrDivisionByZero
	}
	return c.record(OpDivide, c.round(dividend/divisor), false, dividend, divisor), nil
}

// Power returns base raised to exponent. Zero raised to a negative power
// fails with ErrDomain.
func (c *Calculator) Power(base, exponent float64) (float64, error) {
	if err := validateFinite(base, exponent); err != nil {
		return 0, err
	}

	if exponent == 0 {
		return c.record(OpPower, 1, true, base, exponent), nil
	}
	if base == 0 && exponent < 0 {
		return 0, fmt.Errorf("%w: cannot raise 0 to negative power %v", ErrDomain, exponent)
	}
	if base == 1 {
		return c.record(OpPower, 1, true, base, exponent), nil
	}
	if base == -1 {
		result := -1.0
		if math.Mod(exponent, 2) == 0 {
			result = 1
		}
		return c.record(OpPower, result, true, base, exponent), nil
	}

	return c.record(OpPower, math.Pow(base, exponent), false, base, exponent), nil
}

// Factorial returns n! for a non-negative integer n no greater than 170
func (c *Calculator) Factorial(n float64) (float64, error) {
	if math.IsNaN(n) || math.IsInf(n, 0) || n != math.Trunc(n) || n < 0 {
		return 0, validationf("factorial requires non-negative integer, got %v", n)
	}
	if n <= 1 {
		return c.record(OpFactorial, 1, true, n), nil
	}
	if n > maxFactorial {
		return 0, overflowf("factorial of %v exceeds the float64 range (max %d)", n, maxFactorial)
	}

	result := 1.0
	for i := 2.0; i <= n; i++ {
		result *= i
	}
	return c.record(OpFactorial, result, false, n), nil
}

// Sqrt returns the principal square root of n rounded to the calculator
// precision. Zero and one are returned as is.
func (c *Calculator) Sqrt(n float64) (float64, error) {
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0, validationf("square root requires non-negative number, got %v", n)
	}
	if n == 0 || n == 1 {
		return c.record(OpSqrt, n, true, n), nil
	}
	return c.record(OpSqrt, c.round(math.Sqrt(n)), false, n), nil
}
