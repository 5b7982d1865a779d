package results

import (
	"fmt"
	"time"

	"github.com/averycrespi/calc-mcp/pkg/calculator"
)

// OperationResult represents the result of a single-valued calculator tool
type OperationResult struct {
	Operation calculator.Operation `json:"operation"`
	Arguments map[string]any       `json:"arguments"`
	Result    Number               `json:"result"`
	Precision int                  `json:"precision"`
	Recorded  bool                 `json:"recorded"`
	Message   string               `json:"message"`
}

// ModeResult represents the result of the mode tool
type ModeResult struct {
	Numbers []Number `json:"numbers"`
	Modes   []Number `json:"modes"`
	Message string    `json:"message"`
}

// HistoryEntry represents one history record
type HistoryEntry struct {
	Operation calculator.Operation `json:"operation"`
	Symbol    string               `json:"symbol"`
	Operands  []Number             `json:"operands"`
	Result    Number               `json:"result"`
	Timestamp string               `json:"timestamp"`
}

// HistoryResult represents the result of the get_history tool
type HistoryResult struct {
	Count   int            `json:"count"`
	Entries []HistoryEntry `json:"entries"`
	Message string         `json:"message"`
}

// ClearHistoryResult represents the result of the clear_history tool
type ClearHistoryResult struct {
	Removed int    `json:"removed"`
	Message string `json:"message"`
}

// PrecisionResult represents the result of the set_precision tool
type PrecisionResult struct {
	Precision int    `json:"precision"`
	Warning   string `json:"warning,omitempty"`
	Message   string `json:"message"`
}

// NewHistoryEntry converts a calculator record into its JSON shape
func NewHistoryEntry(record calculator.OperationRecord) HistoryEntry {
	return HistoryEntry{
		Operation: record.Operation,
		Symbol:    record.Operation.Symbol(),
		Operands:  NewNumbers(record.Operands),
		Result:    Number(record.Result),
		Timestamp: record.Timestamp.UTC().Format(time.RFC3339Nano),
	}
}

// NewHistoryResult converts a calculator history into its JSON shape
func NewHistoryResult(history []calculator.OperationRecord) HistoryResult {
	result := HistoryResult{
		Count:   len(history),
		Entries: make([]HistoryEntry, 0, len(history)),
	}
	for _, record := range history {
		result.Entries = append(result.Entries, NewHistoryEntry(record))
	}
	if result.Count == 0 {
		result.Message = "History is empty."
	} else {
		result.Message = fmt.Sprintf("Found %d operation(s) in history.", result.Count)
	}
	return result
}


// NewClearHistoryResult reports how many records a clear removed
func NewClearHistoryResult(removed int) ClearHistoryResult {
	return ClearHistoryResult{
		Removed: removed,
		Message: fmt.Sprintf("History cleared (%d operations removed).", removed),
	}
}
