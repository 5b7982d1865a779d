package logger

import (
	"strconv"

	"github.com/ternarybob/arbor"

	"github.com/averycrespi/calc-mcp/pkg/calculator"
)

// Observer forwards calculator events to an arbor logger.
type Observer struct {
	logger arbor.ILogger
}

var _ calculator.Observer = (*Observer)(nil)

// NewObserver creates an observer that logs to logger, or to the global
// logger when logger is nil.
func NewObserver(logger arbor.ILogger) *Observer {
	return &Observer{logger: logger}
}

// Observe logs a single calculator event at its level.
func (o *Observer) Observe(event calculator.Event) {
	logger := o.logger
	if logger == nil {
		logger = GetLogger()
	}

	operands := make([]string, len(event.Operands))
	for i, operand := range event.Operands {
		operands[i] = formatFloat(operand)
	}

	operation := string(event.Operation)
	result := formatFloat(event.Result)
	recorded := strconv.FormatBool(event.Recorded)

	switch event.Level {
	case calculator.LevelDebug:
		logger.Debug().Str("operation", operation).Strs("operands", operands).
			Str("result", result).Str("recorded", recorded).Msg(event.Message)
	case calculator.LevelWarn:
		logger.Warn().Str("operation", operation).Strs("operands", operands).
			Str("result", result).Str("recorded", recorded).Msg(event.Message)
	default:
		logger.Info().Str("operation", operation).Strs("operands", operands).
			Str("result", result).Str("recorded", recorded).Msg(event.Message)
	}
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
