package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/regkit-io/regkit-go/pkg/tracelog"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents   int
	EventsByOp    map[tracelog.Op]int
	EventsByField map[string]int
	Sessions      map[string]*SessionStats
	Rejects       int
	TimeRange     struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for a single board session.
type SessionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Writes    int
	Rejects   int
	LastWord  uint16
	Layout    string
}

// RunStats analyzes the trace file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := tracelog.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByOp:    make(map[tracelog.Op]int),
		EventsByField: make(map[string]int),
		Sessions:      make(map[string]*SessionStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByOp[event.Op]++
		if event.Field != "" {
			stats.EventsByField[event.Field]++
		}

		// Track time range
		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		// Track session stats
		sess, ok := stats.Sessions[event.SessionID]
		if !ok {
			sess = &SessionStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
			}
			stats.Sessions[event.SessionID] = sess
		}
		sess.Events++
		if event.Timestamp.After(sess.LastSeen) {
			sess.LastSeen = event.Timestamp
			sess.LastWord = event.Word
		}
		if event.Layout != "" && sess.Layout == "" {
			sess.Layout = event.Layout
		}
		switch event.Op {
		case tracelog.OpWrite:
			sess.Writes++
		case tracelog.OpReject:
			sess.Rejects++
			stats.Rejects++
		}
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Register Trace Statistics ===")
	fmt.Fprintln(w)

	// Time range
	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	// Total events
	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	// Events by operation
	fmt.Fprintln(w, "Events by Operation:")
	for _, op := range []tracelog.Op{tracelog.OpInit, tracelog.OpRead, tracelog.OpWrite, tracelog.OpReject} {
		if count := stats.EventsByOp[op]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", op.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	// Events by field
	if len(stats.EventsByField) > 0 {
		fmt.Fprintln(w, "Events by Field:")
		fields := make([]string, 0, len(stats.EventsByField))
		for field := range stats.EventsByField {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Fprintf(w, "  %-12s %d\n", field+":", stats.EventsByField[field])
		}
		fmt.Fprintln(w)
	}

	// Sessions
	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) > 0 {
		// Sort by first seen time
		type sessInfo struct {
			id    string
			stats *SessionStats
		}
		sessions := make([]sessInfo, 0, len(stats.Sessions))
		for id, ss := range stats.Sessions {
			sessions = append(sessions, sessInfo{id, ss})
		}
		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].stats.FirstSeen.Before(sessions[j].stats.FirstSeen)
		})

		fmt.Fprintln(w, "")
		for _, s := range sessions {
			duration := s.stats.LastSeen.Sub(s.stats.FirstSeen).Round(time.Millisecond)
			shortID := s.id
			if len(shortID) > 8 {
				shortID = shortID[:8]
			}
			fmt.Fprintf(w, "  [%s] %d events, duration %s\n", shortID, s.stats.Events, duration)
			if s.stats.Layout != "" {
				fmt.Fprintf(w, "           Layout: %s\n", s.stats.Layout)
			}
			fmt.Fprintf(w, "           Writes: %d\n", s.stats.Writes)
			if s.stats.Rejects > 0 {
				fmt.Fprintf(w, "           Rejects: %d\n", s.stats.Rejects)
			}
			fmt.Fprintf(w, "           Final word: 0x%04X\n", s.stats.LastWord)
		}
	}

	// Rejected writes
	if stats.Rejects > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Rejected Writes: %d\n", stats.Rejects)
	}
}
