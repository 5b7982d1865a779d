package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name        string
		a, b        float64
		expected    float64
		expectedErr error
	}{
		{name: "Positive operands", a: 2, b: 3, expected: 5},
		{name: "Negative operands", a: -2.5, b: -1.5, expected: -4},
		{name: "Zero left", a: 0, b: 7, expected: 7},
		{name: "Zero right", a: 7, b: 0, expected: 7},
		{name: "At safe boundary", a: MaxSafeInteger - 1, b: 1, expected: MaxSafeInteger},
		{name: "Positive overflow", a: MaxSafeInteger, b: 1, expectedErr: ErrOverflow},
		{name: "Negative overflow", a: MinSafeInteger, b: -1, expectedErr: ErrOverflow},
		{name: "Zero fast path skips overflow check", a: 0, b: MaxSafeInteger, expected: MaxSafeInteger},
		{name: "NaN operand", a: math.NaN(), b: 1, expectedErr: ErrValidation},
		{name: "Infinite operand", a: 1, b: math.Inf(-1), expectedErr: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := New()
			result, err := calc.Add(tt.a, tt.b)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, calc.History(), "failed calls must not record history")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
			require.Len(t, calc.History(), 1)
			assert.Equal(t, OpAdd, calc.History()[0].Operation)
			assert.Equal(t, []float64{tt.a, tt.b}, calc.History()[0].Operands)
		})
	}
}

func TestAdd_Commutative(t *testing.T) {
	calc := New()
	pairs := [][2]float64{{1, 2}, {-3.5, 8.25}, {0, 4}, {1e10, -1e9}, {0.1, 0.2}}

	for _, p := range pairs {
		ab, err := calc.Add(p[0], p[1])
		require.NoError(t, err)
		ba, err := calc.Add(p[1], p[0])
		require.NoError(t, err)
		assert.Equal(t, ab, ba)
	}
}

func TestAdd_DebugEmitsExtraLine(t *testing.T) {
	recorder := &eventRecorder{}
	calc := NewDebug(WithObserver(recorder))

	_, err := calc.Add(1, 2)
	require.NoError(t, err)

	debugEvents := recorder.byLevel(LevelDebug)
	require.Len(t, debugEvents, 1)
	assert.Equal(t, OpAdd, debugEvents[0].Operation)
	assert.Contains(t, debugEvents[0].Message, "1 + 2 = 3")

	plain, plainRecorder := newTestCalculator()
	_, err = plain.Add(1, 2)
	require.NoError(t, err)
	assert.Empty(t, plainRecorder.byLevel(LevelDebug))
}

func TestSubtract_Antisymmetric(t *testing.T) {
	calc := New()
	pairs := [][2]float64{{5, 3}, {-1, 4}, {2.5, 2.5}, {1e6, -7}}

	for _, p := range pairs {
		ab, err := calc.Subtract(p[0], p[1])
		require.NoError(t, err)
		ba, err := calc.Subtract(p[1], p[0])
		require.NoError(t, err)
		assert.Equal(t, ab, -ba)
	}
	assert.Len(t, calc.History(), 2*len(pairs))
}

func TestSubtract_Validation(t *testing.T) {
	calc := New()
	_, err := calc.Subtract(math.Inf(1), 1)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestMultiply(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		expected float64
		recorded bool
	}{
		{name: "General product", a: 3, b: 4, expected: 12, recorded: true},
		{name: "Negative product", a: -2, b: 4.5, expected: -9, recorded: true},
		{name: "Zero left", a: 0, b: 9, expected: 0},
		{name: "Zero right", a: 9, b: 0, expected: 0},
		{name: "One left", a: 1, b: 9, expected: 9},
		{name: "One right", a: 9, b: 1, expected: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := New()
			result, err := calc.Multiply(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
			if tt.recorded {
				assert.Len(t, calc.History(), 1)
			} else {
				assert.Empty(t, calc.History())
			}
		})
	}
}

func TestDivide(t *testing.T) {
	calc := New()

	result, err := calc.Divide(10, 4)
	require.NoError(t, err)
	assert.Equal(t, 2.5, result)

	result, err = calc.Divide(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.3333333333, result)

	require.Len(t, calc.History(), 2)
	assert.Equal(t, 0.3333333333, calc.History()[1].Result)
}

func TestDivide_ByZero(t *testing.T) {
	calc := New()

	_, err := calc.Divide(5, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = calc.Divide(0, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)

	assert.Empty(t, calc.History())
}

func TestDivide_RoundsHalfToEven(t *testing.T) {
	calc := New(WithPrecision(0))

	result, err := calc.Divide(5, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, result)

	result, err = calc.Divide(7, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.0, result)
}

func TestDivide_InverseWithinPrecision(t *testing.T) {
	for _, p := range []int{2, 5, 10} {
		calc := New(WithPrecision(p))
		for _, pair := range [][2]float64{{22, 7}, {1, 3}, {100, -9}} {
			q, err := calc.Divide(pair[0], pair[1])
			require.NoError(t, err)
			ulp := math.Pow10(-p)
			assert.InDelta(t, pair[0], q*pair[1], ulp*math.Abs(pair[1]))
		}
	}
}

func TestPower(t *testing.T) {
	tests := []struct {
		name           string
		base, exponent float64
		expected       float64
		expectedErr    error
		recorded       bool
	}{
		{name: "General power", base: 2, exponent: 10, expected: 1024, recorded: true},
		{name: "Fractional exponent", base: 9, exponent: 0.5, expected: 3, recorded: true},
		{name: "Negative exponent", base: 2, exponent: -2, expected: 0.25, recorded: true},
		{name: "Zero exponent", base: 5, exponent: 0, expected: 1},
		{name: "Zero to zero", base: 0, exponent: 0, expected: 1},
		{name: "Zero to negative", base: 0, exponent: -1, expectedErr: ErrDomain},
		{name: "Base one", base: 1, exponent: 1e6, expected: 1},
		{name: "Minus one even", base: -1, exponent: 4, expected: 1},
		{name: "Minus one odd", base: -1, exponent: 3, expected: -1},
		{name: "Infinite exponent", base: 2, exponent: math.Inf(1), expectedErr: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := New()
			result, err := calc.Power(tt.base, tt.exponent)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, calc.History())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
			assert.Equal(t, tt.recorded, len(calc.History()) == 1)
		})
	}
}

func TestPower_ZeroExponentForAnyBase(t *testing.T) {
	calc := New()
	for _, base := range []float64{0, 1, -1, 2.5, -1e9, 1e-9} {
		result, err := calc.Power(base, 0)
		require.NoError(t, err)
		assert.Equal(t, 1.0, result)
	}
}

func TestFactorial(t *testing.T) {
	tests := []struct {
		name        string
		n           float64
		expected    float64
		expectedErr error
		recorded    bool
	}{
		{name: "Five", n: 5, expected: 120, recorded: true},
		{name: "Ten", n: 10, expected: 3628800, recorded: true},
		{name: "Zero", n: 0, expected: 1},
		{name: "One", n: 1, expected: 1},
		{name: "Negative", n: -1, expectedErr: ErrValidation},
		{name: "Fractional", n: 2.5, expectedErr: ErrValidation},
		{name: "NaN", n: math.NaN(), expectedErr: ErrValidation},
		{name: "Too large", n: 171, expectedErr: ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := New()
			result, err := calc.Factorial(tt.n)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, calc.History())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
			assert.Equal(t, tt.recorded, len(calc.History()) == 1)
		})
	}
}

func TestFactorial_LargestFinite(t *testing.T) {
	calc := New()
	result, err := calc.Factorial(170)
	require.NoError(t, err)
	assert.False(t, math.IsInf(result, 0))
	assert.InEpsilon(t, 7.257415615307994e306, result, 1e-12)
}

func TestSqrt(t *testing.T) {
	tests := []struct {
		name        string
		n           float64
		precision   int
		expected    float64
		expectedErr error
	}{
		{name: "Perfect square", n: 16, precision: 10, expected: 4},
		{name: "Irrational root rounded", n: 2, precision: 4, expected: 1.4142},
		{name: "Zero", n: 0, precision: 10, expected: 0},
		{name: "One", n: 1, precision: 0, expected: 1},
		{name: "Negative", n: -4, precision: 10, expectedErr: ErrValidation},
		{name: "Infinite", n: math.Inf(1), precision: 10, expectedErr: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := New(WithPrecision(tt.precision))
			result, err := calc.Sqrt(tt.n)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, calc.History())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
			require.Len(t, calc.History(), 1, "sqrt records on every path")
			assert.Equal(t, []float64{tt.n}, calc.History()[0].Operands)
		})
	}
}
