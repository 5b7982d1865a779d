package calculator

// Legacy exposes the backward-compatible call sites of older releases,
// bound to an explicitly constructed Calculator.
type Legacy struct {
	calc *Calculator
}

// NewLegacy binds the legacy aliases to calc
func NewLegacy(calc *Calculator) *Legacy {
	return &Legacy{calc: calc}
}

// Calculator returns the bound instance
func (l *Legacy) Calculator() *Calculator { return l.calc }

// Somar is an alias for Add
func (l *Legacy) Somar(a, b float64) (float64, error) { return l.calc.Add(a, b) }

// Subtrair is an alias for Subtract
func (l *Legacy) Subtrair(a, b float64) (float64, error) { return l.calc.Subtract(a, b) }

// Multiplicar is an alias for Multiply
func (l *Legacy) Multiplicar(a, b float64) (float64, error) { return l.calc.Multiply(a, b) }

// Dividir is an alias for Divide
func (l *Legacy) Dividir(a, b float64) (float64, error) { return l.calc.Divide(a, b) }

// Fatorial is an alias for Factorial
func (l *Legacy) Fatorial(n float64) (float64, error) { return l.calc.Factorial(n) }
