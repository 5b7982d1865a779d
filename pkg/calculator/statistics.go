package calculator

import (
	"fmt"
	"slices"
)

func validateSample(name string, numbers []float64) error {
	if len(numbers) == 0 {
		return validationf("%s requires non-empty array of numbers", name)
	}
	return validateFinite(numbers...)
}

// Mean returns the arithmetic mean. The history entry holds the sample size
// rather than the full sample.
func (c *Calculator) Mean(numbers []float64) (float64, error) {
	if err := validateSample("mean", numbers); err != nil {
		return 0, err
	}

	var sum float64
	for _, n := range numbers {
		sum += n
	}
	return c.record(OpMean, sum/float64(len(numbers)), false, float64(len(numbers))), nil
}

// Median returns the middle value of the numerically sorted sample, or the
// average of the two middle values for an even count.
func (c *Calculator) Median(numbers []float64) (float64, error) {
	if err := validateSample("median", numbers); err != nil {
		return 0, err
	}

	sorted := slices.Clone(numbers)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	result := sorted[mid]
	if len(sorted)%2 == 0 {
		result = (sorted[mid-1] + sorted[mid]) / 2
	}

	c.notify(LevelInfo, OpMedian, result, fmt.Sprintf("median of %v = %s", numbers, formatNumber(result)), numbers...)
	return result, nil
}

// Mode returns every value attaining the highest frequency, in ascending order
func (c *Calculator) Mode(numbers []float64) ([]float64, error) {
	if err := validateSample("mode", numbers); err != nil {
		return nil, err
	}

	counts := make(map[float64]int, len(numbers))
	maxCount := 0
	for _, n := range numbers {
		counts[n]++
		if counts[n] > maxCount {
			maxCount = counts[n]
		}
	}

	modes := make([]float64, 0)
	for value, count := range counts {
		if count == maxCount {
			modes = append(modes, value)
		}
	}
	slices.Sort(modes)

	c.notify(LevelInfo, OpMode, float64(maxCount), fmt.Sprintf("mode of %v = %v (frequency %d)", numbers, modes, maxCount), numbers...)
	return modes, nil
}
