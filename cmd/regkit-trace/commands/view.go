// Package commands implements the regkit-trace CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/regkit-io/regkit-go/pkg/tracelog"
)

// RunView executes the view command.
func RunView(path string, filter tracelog.Filter, output io.Writer) error {
	reader, err := tracelog.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		formatEvent(output, event)
	}

	return nil
}

// formatEvent writes a human-readable representation of the event to w.
//
// One line per event:
//
//	2026-08-29T10:12:01.224191Z [8e2dc1f4] #3  WRITE  gpio23.lamp_pwr 0 -> 7  word=0x001C  (floodlamp #42)
func formatEvent(w io.Writer, event tracelog.Event) {
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")

	fmt.Fprintf(w, "%s [%s] #%-3d %-6s %s.%s",
		ts, shortenSessionID(event.SessionID), event.Seq, event.Op.String(),
		event.Register, event.Field)

	switch event.Op {
	case tracelog.OpInit:
		fmt.Fprintf(w, " := %d", event.Value)
		if event.Layout != "" {
			fmt.Fprintf(w, "  layout=%s", event.Layout)
		}
	case tracelog.OpRead:
		fmt.Fprintf(w, " = %d", event.Value)
	case tracelog.OpWrite:
		fmt.Fprintf(w, " %d -> %d", event.Prev, event.Value)
	case tracelog.OpReject:
		fmt.Fprintf(w, " <- %d REJECTED", event.Value)
	}

	fmt.Fprintf(w, "  word=0x%04X", event.Word)
	if event.Unit != "" {
		fmt.Fprintf(w, "  (%s)", event.Unit)
	}
	fmt.Fprintln(w)

	if event.Error != "" {
		fmt.Fprintf(w, "  Error: %s\n", event.Error)
	}
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// ParseOpFlag parses an operation string from a command-line flag
// (case-insensitive).
func ParseOpFlag(s string) (tracelog.Op, error) {
	switch strings.ToLower(s) {
	case "init":
		return tracelog.OpInit, nil
	case "read":
		return tracelog.OpRead, nil
	case "write":
		return tracelog.OpWrite, nil
	case "reject":
		return tracelog.OpReject, nil
	default:
		return 0, fmt.Errorf("invalid op: %s (must be init, read, write, or reject)", s)
	}
}
