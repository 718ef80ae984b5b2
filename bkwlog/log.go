// Package bkwlog defines the structured log event that the BKW solver
// core emits towards whatever driver embeds it (a UI, a CLI, a test).
// The core never writes to stdout or a file directly; it only ever
// calls a Sink, synchronously, in the order the events occur.
package bkwlog

import "log"

// Severity tags a log Event with the driver-visible importance of the
// message. It mirrors the eight severities used by the original mission
// driver's log callback.
type Severity int

const (
	Info Severity = iota
	Success
	Warning
	Error
	Phase
	Secret
	Value
	Time
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	case Phase:
		return "phase"
	case Secret:
		return "secret"
	case Value:
		return "value"
	case Time:
		return "time"
	default:
		return "unknown"
	}
}

// Event is a single (message, severity) pair emitted by the solver.
type Event struct {
	Message  string
	Severity Severity
}

// Sink receives Events synchronously. A Sink must not block for long:
// the solver is single-threaded and has no suspension points, so a slow
// sink stalls Solve for as long as it takes to return.
type Sink func(Event)

// Nop discards every event. Useful for callers that only want the
// returned secret and don't care about the narration.
func Nop(Event) {}

// Std adapts a stdlib *log.Logger into a Sink, prefixing each line with
// its severity, for a console driver that wants plain log lines.
func Std(l *log.Logger) Sink {
	return func(e Event) {
		l.Printf("[%s] %s", e.Severity, e.Message)
	}
}

// Collect returns a Sink that appends every Event it receives to dst.
// Used by tests that need to assert on the emitted sequence (e.g. that
// a warning was logged for an empty reduction pool).
func Collect(dst *[]Event) Sink {
	return func(e Event) {
		*dst = append(*dst, e)
	}
}
