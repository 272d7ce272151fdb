package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/regkit-io/regkit-go/pkg/tracelog"
)

// RunExport exports the trace file to the specified format.
func RunExport(path, format, output string) error {
	reader, err := tracelog.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	// Determine output writer
	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

// jsonEvent is the JSON shape of an exported trace event. The CBOR
// integer keys are replaced by named fields for downstream tooling.
type jsonEvent struct {
	Timestamp string `json:"timestamp"`
	SessionID string `json:"session_id"`
	Seq       uint64 `json:"seq"`
	Op        string `json:"op"`
	Register  string `json:"register,omitempty"`
	Field     string `json:"field,omitempty"`
	Unit      string `json:"unit,omitempty"`
	Prev      uint16 `json:"prev"`
	Value     uint16 `json:"value"`
	Word      string `json:"word"`
	Error     string `json:"error,omitempty"`
	Layout    string `json:"layout,omitempty"`
}

func toJSONEvent(event tracelog.Event) jsonEvent {
	return jsonEvent{
		Timestamp: event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
		SessionID: event.SessionID,
		Seq:       event.Seq,
		Op:        event.Op.String(),
		Register:  event.Register,
		Field:     event.Field,
		Unit:      event.Unit,
		Prev:      event.Prev,
		Value:     event.Value,
		Word:      fmt.Sprintf("0x%04X", event.Word),
		Error:     event.Error,
		Layout:    event.Layout,
	}
}

func exportJSONL(reader *tracelog.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(toJSONEvent(event)); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *tracelog.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	// Write header
	header := []string{"timestamp", "session_id", "seq", "op", "register", "field", "unit", "prev", "value", "word", "error"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		row := []string{
			event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
			event.SessionID,
			strconv.FormatUint(event.Seq, 10),
			event.Op.String(),
			event.Register,
			event.Field,
			event.Unit,
			strconv.FormatUint(uint64(event.Prev), 10),
			strconv.FormatUint(uint64(event.Value), 10),
			fmt.Sprintf("0x%04X", event.Word),
			event.Error,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}
