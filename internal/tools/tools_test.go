package tools

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/averycrespi/calc-mcp/internal/results"
	"github.com/averycrespi/calc-mcp/internal/session"
	"github.com/averycrespi/calc-mcp/pkg/calculator"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text
}

func callTool(t *testing.T, tool Tool, arguments map[string]any) *mcp.CallToolResult {
	t.Helper()
	result, err := tool.Handle(context.Background(), newRequest(arguments))
	require.NoError(t, err)
	return result
}

func decodeOperation(t *testing.T, result *mcp.CallToolResult) results.OperationResult {
	t.Helper()
	require.False(t, result.IsError, resultText(t, result))
	var out results.OperationResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))
	return out
}

func decodeError(t *testing.T, result *mcp.CallToolResult) results.ErrorResult {
	t.Helper()
	require.True(t, result.IsError)
	var out results.ErrorResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))
	return out
}

func TestAll_ToolNamesUnique(t *testing.T) {
	all := All(session.New(nil))
	assert.Len(t, all, 22)

	seen := make(map[string]bool)
	for _, tool := range all {
		name := tool.GetTool().Name
		assert.False(t, seen[name], "duplicate tool %s", name)
		assert.Contains(t, name, ToolPrefix)
		seen[name] = true
	}
}

func TestOperationTools(t *testing.T) {
	tests := []struct {
		name      string
		tool      func(s *session.Session) Tool
		arguments map[string]any
		expected  float64
		recorded  bool
	}{
		{"Add", func(s *session.Session) Tool { return NewAddTool(s) }, map[string]any{"a": 2.0, "b": 3.0}, 5, true},
		{"Subtract", func(s *session.Session) Tool { return NewSubtractTool(s) }, map[string]any{"a": 2.0, "b": 3.0}, -1, true},
		{"Multiply", func(s *session.Session) Tool { return NewMultiplyTool(s) }, map[string]any{"a": 4.0, "b": 2.5}, 10, true},
		{"Multiply fast path", func(s *session.Session) Tool { return NewMultiplyTool(s) }, map[string]any{"a": 1.0, "b": 2.5}, 2.5, false},
		{"Divide", func(s *session.Session) Tool { return NewDivideTool(s) }, map[string]any{"dividend": 1.0, "divisor": 4.0}, 0.25, true},
		{"Power", func(s *session.Session) Tool { return NewPowerTool(s) }, map[string]any{"base": 2.0, "exponent": 8.0}, 256, true},
		{"Factorial", func(s *session.Session) Tool { return NewFactorialTool(s) }, map[string]any{"n": 5.0}, 120, true},
		{"Sqrt", func(s *session.Session) Tool { return NewSqrtTool(s) }, map[string]any{"n": 81.0}, 9, true},
		{"Circle area", func(s *session.Session) Tool { return NewCircleAreaTool(s) }, map[string]any{"radius": 0.0}, 0, false},
		{"Rectangle perimeter", func(s *session.Session) Tool { return NewRectanglePerimeterTool(s) }, map[string]any{"width": 2.0, "height": 3.0}, 10, false},
		{"Cos", func(s *session.Session) Tool { return NewCosTool(s) }, map[string]any{"angle": 0.0}, 1, false},
		{"Percentage", func(s *session.Session) Tool { return NewPercentageTool(s) }, map[string]any{"value": 50.0, "pct": 10.0}, 5, true},
		{"Compound interest default frequency", func(s *session.Session) Tool { return NewCompoundInterestTool(s) }, map[string]any{"principal": 100.0, "rate": 0.1, "time": 2.0}, 121, true},
		{"Simple interest", func(s *session.Session) Tool { return NewSimpleInterestTool(s) }, map[string]any{"principal": 200.0, "rate": 0.5, "time": 2.0}, 200, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := session.New(calculator.New())
			out := decodeOperation(t, callTool(t, tt.tool(s), tt.arguments))

			assert.InDelta(t, tt.expected, float64(out.Result), 1e-9)
			assert.Equal(t, tt.recorded, out.Recorded)
			assert.Equal(t, calculator.DefaultPrecision, out.Precision)
			assert.Len(t, s.History(), map[bool]int{true: 1, false: 0}[tt.recorded])
		})
	}
}

func TestOperationTools_Errors(t *testing.T) {
	tests := []struct {
		name      string
		tool      func(s *session.Session) Tool
		arguments map[string]any
		expected  results.ErrorKind
	}{
		{"Divide by zero", func(s *session.Session) Tool { return NewDivideTool(s) }, map[string]any{"dividend": 1.0, "divisor": 0.0}, results.ErrorKindDivisionByZero},
		{"Zero to negative power", func(s *session.Session) Tool { return NewPowerTool(s) }, map[string]any{"base": 0.0, "exponent": -1.0}, results.ErrorKindDomain},
		{"Factorial overflow", func(s *session.Session) Tool { return NewFactorialTool(s) }, map[string]any{"n": 171.0}, results.ErrorKindOverflow},
		{"Add overflow", func(s *session.Session) Tool { return NewAddTool(s) }, map[string]any{"a": float64(calculator.MaxSafeInteger), "b": 1.0}, results.ErrorKindOverflow},
		{"Wrong argument type", func(s *session.Session) Tool { return NewAddTool(s) }, map[string]any{"a": "1", "b": 1.0}, results.ErrorKindValidation},
		{"Missing argument", func(s *session.Session) Tool { return NewSubtractTool(s) }, map[string]any{"a": 1.0}, results.ErrorKindValidation},
		{"Negative radius", func(s *session.Session) Tool { return NewCirclePerimeterTool(s) }, map[string]any{"radius": -1.0}, results.ErrorKindValidation},
		{"Zero compound frequency", func(s *session.Session) Tool { return NewCompoundInterestTool(s) }, map[string]any{"principal": 1.0, "rate": 0.1, "time": 1.0, "compound_freq": 0.0}, results.ErrorKindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := session.New(calculator.New())
			out := decodeError(t, callTool(t, tt.tool(s), tt.arguments))

			assert.Equal(t, tt.expected, out.Kind)
			assert.NotEmpty(t, out.Message)
			assert.Empty(t, s.History())
		})
	}
}

func TestOperationTool_GetTool(t *testing.T) {
	tool := NewCompoundInterestTool(session.New(nil)).GetTool()

	assert.Equal(t, ToolCompoundInterest, tool.Name)
	assert.ElementsMatch(t, []string{"principal", "rate", "time"}, tool.InputSchema.Required)
	assert.Contains(t, tool.InputSchema.Properties, "compound_freq")
}

func TestSampleTools(t *testing.T) {
	s := session.New(calculator.New())

	mean := decodeOperation(t, callTool(t, NewMeanTool(s), map[string]any{"numbers": []any{1.0, 2.0, 3.0, 4.0}}))
	assert.Equal(t, results.Number(2.5), mean.Result)
	assert.True(t, mean.Recorded)

	median := decodeOperation(t, callTool(t, NewMedianTool(s), map[string]any{"numbers": []any{5.0, 1.0, 3.0}}))
	assert.Equal(t, results.Number(3), median.Result)
	assert.False(t, median.Recorded)

	out := decodeError(t, callTool(t, NewMeanTool(s), map[string]any{"numbers": []any{}}))
	assert.Equal(t, results.ErrorKindValidation, out.Kind)

	assert.Len(t, s.History(), 1)
}

func TestModeTool(t *testing.T) {
	s := session.New(calculator.New())

	result := callTool(t, NewModeTool(s), map[string]any{"numbers": []any{1.0, 1.0, 2.0, 2.0, 3.0}})
	require.False(t, result.IsError)

	var out results.ModeResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &out))
	assert.Equal(t, []results.Number{1, 2}, out.Modes)
	assert.Equal(t, "Found 2 mode(s).", out.Message)

	errOut := decodeError(t, callTool(t, NewModeTool(s), map[string]any{"numbers": []any{"x"}}))
	assert.Equal(t, results.ErrorKindValidation, errOut.Kind)
}

func TestHistoryTools(t *testing.T) {
	s := session.New(calculator.New())
	for _, args := range []map[string]any{{"a": 1.0, "b": 2.0}, {"a": 3.0, "b": 4.0}, {"a": 5.0, "b": 6.0}} {
		decodeOperation(t, callTool(t, NewAddTool(s), args))
	}

	var history results.HistoryResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, callTool(t, NewGetHistoryTool(s), nil))), &history))
	assert.Equal(t, 3, history.Count)
	assert.Equal(t, calculator.OpAdd, history.Entries[2].Operation)
	assert.Equal(t, []results.Number{5, 6}, history.Entries[2].Operands)

	var cleared results.ClearHistoryResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, callTool(t, NewClearHistoryTool(s), nil))), &cleared))
	assert.Equal(t, 3, cleared.Removed)

	require.NoError(t, json.Unmarshal([]byte(resultText(t, callTool(t, NewGetHistoryTool(s), nil))), &history))
	assert.Equal(t, 0, history.Count)
	assert.Empty(t, history.Entries)
}

func TestSetPrecisionTool(t *testing.T) {
	s := session.New(calculator.New())

	var out results.PrecisionResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, callTool(t, NewSetPrecisionTool(s), map[string]any{"precision": 2.0}))), &out))
	assert.Equal(t, 2, out.Precision)
	assert.Empty(t, out.Warning)

	divided := decodeOperation(t, callTool(t, NewDivideTool(s), map[string]any{"dividend": 2.0, "divisor": 3.0}))
	assert.Equal(t, results.Number(0.67), divided.Result)
	assert.Equal(t, 2, divided.Precision)

	require.NoError(t, json.Unmarshal([]byte(resultText(t, callTool(t, NewSetPrecisionTool(s), map[string]any{"precision": 18.0}))), &out))
	assert.Equal(t, highPrecisionWarning, out.Warning)

	errOut := decodeError(t, callTool(t, NewSetPrecisionTool(s), map[string]any{"precision": -1.0}))
	assert.Equal(t, results.ErrorKindValidation, errOut.Kind)
	assert.Equal(t, 18, s.Precision())

	for _, precision := range []float64{calculator.MaxPrecision + 1, 2e9, 1e20} {
		errOut = decodeError(t, callTool(t, NewSetPrecisionTool(s), map[string]any{"precision": precision}))
		assert.Equal(t, results.ErrorKindValidation, errOut.Kind, "%v", precision)
	}
	assert.Equal(t, 18, s.Precision())
}

func TestOverflowingResultKeepsHistoryReadable(t *testing.T) {
	s := session.New(calculator.New())

	product := decodeOperation(t, callTool(t, NewMultiplyTool(s), map[string]any{"a": 1e200, "b": 1e200}))
	assert.True(t, math.IsInf(float64(product.Result), 1))
	assert.True(t, product.Recorded)
	assert.Contains(t, resultText(t, callTool(t, NewMultiplyTool(s), map[string]any{"a": -1e200, "b": 1e200})), `"result": "-Infinity"`)

	result := callTool(t, NewGetHistoryTool(s), nil)
	require.False(t, result.IsError, resultText(t, result))

	var history results.HistoryResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &history))
	require.Equal(t, 2, history.Count)
	assert.True(t, math.IsInf(float64(history.Entries[0].Result), 1))
	assert.Equal(t, []results.Number{1e200, 1e200}, history.Entries[0].Operands)
	assert.True(t, math.IsInf(float64(history.Entries[1].Result), -1))
}
