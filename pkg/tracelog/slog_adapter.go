package tracelog

import (
	"context"
	"fmt"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger.
// Useful for development when you want register operations in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.Uint64("seq", event.Seq),
		slog.String("op", event.Op.String()),
		slog.String("register", event.Register),
		slog.String("field", event.Field),
	}

	// Add optional identifiers
	if event.Unit != "" {
		attrs = append(attrs, slog.String("unit", event.Unit))
	}

	// Add op-specific attributes
	switch event.Op {
	case OpWrite:
		attrs = append(attrs,
			slog.Uint64("prev", uint64(event.Prev)),
			slog.Uint64("value", uint64(event.Value)),
		)
	case OpReject:
		attrs = append(attrs,
			slog.Uint64("value", uint64(event.Value)),
			slog.String("error", event.Error),
		)
	default:
		attrs = append(attrs, slog.Uint64("value", uint64(event.Value)))
	}
	attrs = append(attrs, slog.String("word", fmt.Sprintf("0x%04X", event.Word)))

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "register", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
