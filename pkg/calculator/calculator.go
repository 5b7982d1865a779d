// Package calculator implements an arithmetic, geometry, statistics and
// finance calculator with input validation and an append-only operation
// history.
//
// A Calculator is not safe for concurrent use. Callers that share one
// instance between goroutines must serialize access themselves.
package calculator

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultPrecision is the number of fractional digits used when no precision is configured
const DefaultPrecision = 10

// maxRecommendedPrecision is the largest precision that float64 results can honour
const maxRecommendedPrecision = 15

// MaxPrecision is the largest precision SetPrecision accepts
const MaxPrecision = 100

// OperationRecord is one entry of the calculator history
type OperationRecord struct {
	Operation Operation `json:"operation"`
	Operands  []float64 `json:"operands"`
	Result    float64   `json:"result"`
	Timestamp time.Time `json:"timestamp"`
}

// Calculator holds the precision setting, the operation history and the debug flag
type Calculator struct {
	precision int
	history   []OperationRecord
	debug     bool
	observer  Observer
	now       func() time.Time
}

// Option configures a Calculator
type Option func(*Calculator)

// WithPrecision sets the initial precision. Values outside [0, MaxPrecision] are ignored.
func WithPrecision(precision int) Option {
	return func(c *Calculator) {
		if precision >= 0 && precision <= MaxPrecision {
			c.precision = precision
		}
	}
}

// WithDebug sets the debug flag
func WithDebug(debug bool) Option {
	return func(c *Calculator) {
		c.debug = debug
	}
}

// WithObserver sets the observer that receives diagnostic events
func WithObserver(observer Observer) Option {
	return func(c *Calculator) {
		if observer != nil {
			c.observer = observer
		}
	}
}

// WithClock sets the clock used to timestamp history entries
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) {
		if now != nil {
			c.now = now
		}
	}
}

// New creates a Calculator with the given options
func New(opts ...Option) *Calculator {
	c := &Calculator{
		precision: DefaultPrecision,
		history:   make([]OperationRecord, 0),
		observer:  NopObserver{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewDebug creates a Calculator with the debug flag set
func NewDebug(opts ...Option) *Calculator {
	return New(append([]Option{WithDebug(true)}, opts...)...)
}

// Precision returns the number of fractional digits results are rounded to
func (c *Calculator) Precision() int {
	return c.precision
}

// HistoryLen returns the number of recorded operations without copying them
func (c *Calculator) HistoryLen() int {
	return len(c.history)
}

// Debug reports whether the debug flag is set
func (c *Calculator) Debug() bool {
	return c.debug
}

// record appends a history entry when the policy table allows it and
// notifies the observer either way.
func (c *Calculator) record(op Operation, result float64, fastPath bool, operands ...float64) float64 {
	recorded := op.Records()
	if fastPath {
		recorded = op.RecordsFastPath()
	}

	if recorded {
		c.history = append(c.history, OperationRecord{
			Operation: op,
			Operands:  append([]float64(nil), operands...),
			Result:    result,
			Timestamp: c.now(),
		})
	}

	c.observer.Observe(Event{
		Level:     LevelInfo,
		Operation: op,
		Operands:  operands,
		Result:    result,
		Recorded:  recorded,
		Message:   describe(op, result, operands),
	})

	return result
}

// notify emits a diagnostic without touching history.
func (c *Calculator) notify(level Level, op Operation, result float64, message string, operands ...float64) {
	c.observer.Observe(Event{
		Level:     level,
		Operation: op,
		Operands:  operands,
		Result:    result,
		Message:   message,
	})
}

func describe(op Operation, result float64, operands []float64) string {
	symbol := op.Symbol()
	switch len(operands) {
	case 2:
		return fmt.Sprintf("%s %s %s = %s", formatNumber(operands[0]), symbol, formatNumber(operands[1]), formatNumber(result))
	case 1:
		return fmt.Sprintf("%s(%s) = %s", symbol, formatNumber(operands[0]), formatNumber(result))
	default:
		parts := make([]string, len(operands))
		for i, operand := range operands {
			parts[i] = formatNumber(operand)
		}
		return fmt.Sprintf("%s(%s) = %s", symbol, strings.Join(parts, ", "), formatNumber(result))
	}
}

func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
