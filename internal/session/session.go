// Package session serializes access to a shared calculator.
package session

import (
	"sync"

	"github.com/averycrespi/calc-mcp/pkg/calculator"
)

// Session owns one calculator and runs calls against it one at a time
type Session struct {
	calc *calculator.Calculator
	mu   sync.Mutex
}

// New creates a session around calc
func New(calc *calculator.Calculator) *Session {
	if calc == nil {
		calc = calculator.New()
	}
	return &Session{calc: calc}
}

// Do runs fn with exclusive access to the calculator
func (s *Session) Do(fn func(calc *calculator.Calculator) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.calc)
}

// Outcome describes one computation run through a session
type Outcome struct {
	Result float64
	// Recorded is true when the computation appended a history entry.
	Recorded  bool
	Precision int
}

// Compute runs a single-result operation with exclusive access to the
// calculator and reports whether it was recorded.
func (s *Session) Compute(fn func(calc *calculator.Calculator) (float64, error)) (Outcome, error) {
	var outcome Outcome
	err := s.Do(func(calc *calculator.Calculator) error {
		before := calc.HistoryLen()
		result, err := fn(calc)
		if err != nil {
			return err
		}
		outcome = Outcome{
			Result:    result,
			Recorded:  calc.HistoryLen() > before,
			Precision: calc.Precision(),
		}
		return nil
	})
	return outcome, err
}

// History returns a copy of the calculator history
func (s *Session) History() []calculator.OperationRecord {
	var history []calculator.OperationRecord
	_ = s.Do(func(calc *calculator.Calculator) error {
		history = calc.History()
		return nil
	})
	return history
}

// ClearHistory empties the calculator history and returns the number of removed entries
func (s *Session) ClearHistory() int {
	var removed int
	_ = s.Do(func(calc *calculator.Calculator) error {
		removed = calc.ClearHistory()
		return nil
	})
	return removed
}

// Precision returns the current calculator precision
func (s *Session) Precision() int {
	var precision int
	_ = s.Do(func(calc *calculator.Calculator) error {
		precision = calc.Precision()
		return nil
	})
	return precision
}
