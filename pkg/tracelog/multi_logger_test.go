package tracelog

import (
	"testing"
	"time"
)

// captureLogger records events for test inspection.
type captureLogger struct {
	events []Event
}

func (c *captureLogger) Log(event Event) {
	c.events = append(c.events, event)
}

func TestMultiLoggerFansOut(t *testing.T) {
	a := &captureLogger{}
	b := &captureLogger{}
	multi := NewMultiLogger(a, b)

	event := Event{Timestamp: time.Now(), SessionID: "s", Seq: 1, Op: OpWrite, Value: 1}
	multi.Log(event)

	if len(a.events) != 1 {
		t.Errorf("first logger got %d events, want 1", len(a.events))
	}
	if len(b.events) != 1 {
		t.Errorf("second logger got %d events, want 1", len(b.events))
	}
	if a.events[0].Seq != 1 || b.events[0].Seq != 1 {
		t.Error("loggers received different events")
	}
}

func TestMultiLoggerWithNoLoggers(t *testing.T) {
	multi := NewMultiLogger()
	// Must not panic.
	multi.Log(Event{Timestamp: time.Now(), SessionID: "s", Seq: 1, Op: OpRead})
}
