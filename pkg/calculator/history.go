package calculator

import (
	"fmt"
	"slices"
)

// History returns a copy of the operation history in call order
func (c *Calculator) History() []OperationRecord {
	history := make([]OperationRecord, len(c.history))
	for i, entry := range c.history {
		entry.Operands = slices.Clone(entry.Operands)
		history[i] = entry
	}
	return history
}

// ClearHistory empties the history and returns the number of removed entries
func (c *Calculator) ClearHistory() int {
	count := len(c.history)
	c.history = make([]OperationRecord, 0)
	c.notify(LevelInfo, OpClearHistory, float64(count), fmt.Sprintf("history cleared (%d operations removed)", count))
	return count
}

// SetPrecision sets the number of fractional digits used for rounding.
// Precisions above 15 are accepted with a warning, and precisions above
// MaxPrecision are rejected.
func (c *Calculator) SetPrecision(precision int) error {
	if precision < 0 {
		return validationf("precision must be non-negative integer, got %d", precision)
	}
	if precision > MaxPrecision {
		return validationf("precision must be at most %d, got %d", MaxPrecision, precision)
	}
	if precision > maxRecommendedPrecision {
		c.notify(LevelWarn, OpSetPrecision, float64(precision), "high precision values may cause floating point errors")
	}
	c.precision = precision
	c.notify(LevelInfo, OpSetPrecision, float64(precision), fmt.Sprintf("precision set to %d decimal places", precision))
	return nil
}
