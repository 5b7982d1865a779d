package calculator

// Level is the severity of a diagnostic event
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
)

// Event describes one diagnostic emitted by a Calculator
type Event struct {
	Level     Level
	Operation Operation
	Operands  []float64
	Result    float64
	// Recorded is true when the call appended a history entry.
	Recorded bool
	Message  string
}

// Observer receives diagnostic events after each operation
type Observer interface {
	Observe(event Event)
}

// ObserverFunc adapts a function to the Observer interface
type ObserverFunc func(event Event)

// Observe calls f(event)
func (f ObserverFunc) Observe(event Event) {
	f(event)
}

// NopObserver discards every event
type NopObserver struct{}

// Observe does nothing
func (NopObserver) Observe(Event) {}
