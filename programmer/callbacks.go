package programmer

import "time"

// Operation phases reported through Progress.
const (
	PhaseEnabling = "enabling"
	PhaseReading  = "reading"
	PhaseWriting  = "writing"
	PhaseErasing  = "erasing"
	PhaseComplete = "complete"
)

// Progress describes the state of a running operation. Passed to the
// ProgressCallback, if one is configured.
type Progress struct {
	// Phase is one of the Phase* constants
	Phase string

	// CurrentWord is the number of words transferred so far
	CurrentWord int

	// TotalWords is the number of words the operation covers
	TotalWords int

	// Percentage is the completion percentage (0.0 to 100.0)
	Percentage float64

	// BytesDone is the number of image bytes transferred so far
	BytesDone int

	// Elapsed is the time since the operation started
	Elapsed time.Duration
}

// ProgressCallback is called during operations to report progress.
// Implementations should return quickly; they run on the operation's
// goroutine between bus transactions.
type ProgressCallback func(Progress)

// Logger is an optional logging interface for programmer operations,
// allowing integration with any logging framework.
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
