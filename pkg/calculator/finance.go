package calculator

import (
	"math"
)

// Percentage returns pct percent of value
func (c *Calculator) Percentage(value, pct float64) (float64, error) {
	if err := validateFinite(value, pct); err != nil {
		return 0, err
	}
	if pct < 0 {
		return 0, validationf("percentage must be non-negative, got %v", pct)
	}
	return c.record(OpPercentage, value*pct/100, false, value, pct), nil
}

func validateInterest(principal, rate, time float64) error {
	if principal <= 0 {
		return validationf("principal must be positive, got %v", principal)
	}
	if rate < 0 {
		return validationf("rate must be non-negative, got %v", rate)
	}
	if time < 0 {
		return validationf("time must be non-negative, got %v", time)
	}
	return nil
}

// CompoundInterest returns the final amount principal·(1+rate/freq)^(freq·time)
// rounded to the calculator precision. A frequency of 1 compounds yearly.
func (c *Calculator) CompoundInterest(principal, rate, time, compoundFreq float64) (float64, error) {
	if err := validateFinite(principal, rate, time, compoundFreq); err != nil {
		return 0, err
	}
	if err := validateInterest(principal, rate, time); err != nil {
		return 0, err
	}
	if compoundFreq <= 0 {
		return 0, validationf("compound frequency must be positive, got %v", compoundFreq)
	}

	amount := principal * math.Pow(1+rate/compoundFreq, compoundFreq*time)
	return c.record(OpCompoundInterest, c.round(amount), false, principal, rate, time, compoundFreq), nil
}

// SimpleInterest returns the interest principal·rate·time, not the total amount
func (c *Calculator) SimpleInterest(principal, rate, time float64) (float64, error) {
	if err := validateFinite(principal, rate, time); err != nil {
		return 0, err
	}
	if err := validateInterest(principal, rate, time); err != nil {
		return 0, err
	}
	return c.record(OpSimpleInterest, principal*rate*time, false, principal, rate, time), nil
}
