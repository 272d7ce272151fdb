package commands

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/regkit-io/regkit-go/pkg/tracelog"
)

func createTestTraceFile(t *testing.T, events []tracelog.Event) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.rlog")

	logger, err := tracelog.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func TestFormatInitEvent(t *testing.T) {
	ts := time.Date(2026, 8, 29, 10, 15, 32, 123456000, time.UTC)
	event := tracelog.Event{
		Timestamp: ts,
		SessionID: "abc12345-6789-0123-4567-890abcdef012",
		Seq:       1,
		Op:        tracelog.OpInit,
		Register:  "gpio23",
		Field:     "lamp_pwr",
		Unit:      "floodlamp #42",
		Value:     0,
		Word:      0x0000,
		Layout:    "1.0",
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "2026-08-29T10:15:32.123456Z") {
		t.Errorf("expected microsecond timestamp, got: %s", output)
	}
	if !strings.Contains(output, "[abc12345]") {
		t.Errorf("expected shortened session ID, got: %s", output)
	}
	if !strings.Contains(output, "INIT") {
		t.Errorf("expected INIT op, got: %s", output)
	}
	if !strings.Contains(output, "gpio23.lamp_pwr") {
		t.Errorf("expected register.field, got: %s", output)
	}
	if !strings.Contains(output, ":= 0") {
		t.Errorf("expected init value, got: %s", output)
	}
	if !strings.Contains(output, "layout=1.0") {
		t.Errorf("expected layout revision, got: %s", output)
	}
	if !strings.Contains(output, "(floodlamp #42)") {
		t.Errorf("expected unit, got: %s", output)
	}
}

func TestFormatWriteEvent(t *testing.T) {
	ts := time.Date(2026, 8, 29, 10, 15, 33, 0, time.UTC)
	event := tracelog.Event{
		Timestamp: ts,
		SessionID: "abc12345-6789-0123-4567-890abcdef012",
		Seq:       2,
		Op:        tracelog.OpWrite,
		Register:  "gpio23",
		Field:     "lamp_pwr",
		Prev:      0,
		Value:     7,
		Word:      0x001C,
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "WRITE") {
		t.Errorf("expected WRITE op, got: %s", output)
	}
	if !strings.Contains(output, "0 -> 7") {
		t.Errorf("expected prev -> value, got: %s", output)
	}
	if !strings.Contains(output, "word=0x001C") {
		t.Errorf("expected register word, got: %s", output)
	}
}

func TestFormatRejectEvent(t *testing.T) {
	ts := time.Date(2026, 8, 29, 10, 15, 34, 0, time.UTC)
	event := tracelog.Event{
		Timestamp: ts,
		SessionID: "abc12345-6789-0123-4567-890abcdef012",
		Seq:       3,
		Op:        tracelog.OpReject,
		Register:  "gpio23",
		Field:     "lamp_pwr",
		Value:     9,
		Word:      0x001C,
		Error:     "cannot set floodlamp #42 power level to 9: valid range is 0:7",
	}

	var buf bytes.Buffer
	formatEvent(&buf, event)
	output := buf.String()

	if !strings.Contains(output, "<- 9 REJECTED") {
		t.Errorf("expected rejected value, got: %s", output)
	}
	if !strings.Contains(output, "Error: cannot set floodlamp #42 power level to 9: valid range is 0:7") {
		t.Errorf("expected error line, got: %s", output)
	}
}

func TestViewFiltersByOp(t *testing.T) {
	ts := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	events := []tracelog.Event{
		{Timestamp: ts, SessionID: "sess-1", Seq: 1, Op: tracelog.OpRead, Register: "gpio23", Field: "sol2"},
		{Timestamp: ts, SessionID: "sess-1", Seq: 2, Op: tracelog.OpWrite, Register: "gpio23", Field: "sol2", Value: 1},
		{Timestamp: ts, SessionID: "sess-1", Seq: 3, Op: tracelog.OpRead, Register: "gpio23", Field: "sol3"},
	}

	path := createTestTraceFile(t, events)

	op := tracelog.OpWrite
	var buf bytes.Buffer
	if err := RunView(path, tracelog.Filter{Op: &op}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}

	output := buf.String()
	if strings.Contains(output, "READ") {
		t.Errorf("expected no READ events, got:\n%s", output)
	}
	if !strings.Contains(output, "WRITE") {
		t.Errorf("expected WRITE event, got:\n%s", output)
	}
}

func TestViewEmptyFile(t *testing.T) {
	path := createTestTraceFile(t, nil)

	var buf bytes.Buffer
	if err := RunView(path, tracelog.Filter{}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output for empty file, got: %s", buf.String())
	}
}

func TestExportToJSONL(t *testing.T) {
	ts := time.Date(2026, 8, 29, 10, 15, 32, 123456000, time.UTC)
	events := []tracelog.Event{
		{
			Timestamp: ts,
			SessionID: "abc12345",
			Seq:       1,
			Op:        tracelog.OpWrite,
			Register:  "gpio23",
			Field:     "lamp_pwr",
			Unit:      "floodlamp #42",
			Prev:      0,
			Value:     4,
			Word:      0x0010,
		},
		{
			Timestamp: ts.Add(time.Second),
			SessionID: "abc12345",
			Seq:       2,
			Op:        tracelog.OpRead,
			Register:  "gpio23",
			Field:     "lamp_pwr",
			Value:     4,
			Word:      0x0010,
		},
	}

	path := createTestTraceFile(t, events)

	outPath := filepath.Join(t.TempDir(), "out.jsonl")
	if err := RunExport(path, "jsonl", outPath); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}

	var event1 map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &event1); err != nil {
		t.Fatalf("failed to parse line 1: %v", err)
	}
	if event1["session_id"] != "abc12345" {
		t.Errorf("expected session_id abc12345, got %v", event1["session_id"])
	}
	if event1["op"] != "WRITE" {
		t.Errorf("expected op WRITE, got %v", event1["op"])
	}
	if event1["word"] != "0x0010" {
		t.Errorf("expected word 0x0010, got %v", event1["word"])
	}
}

func TestExportToCSV(t *testing.T) {
	ts := time.Date(2026, 8, 29, 10, 15, 32, 0, time.UTC)
	events := []tracelog.Event{
		{
			Timestamp: ts,
			SessionID: "abc12345",
			Seq:       1,
			Op:        tracelog.OpReject,
			Register:  "gpio23",
			Field:     "lamp_pwr",
			Value:     8,
			Word:      0x0000,
			Error:     "cannot set floodlamp #42 power level to 8: valid range is 0:7",
		},
	}

	path := createTestTraceFile(t, events)

	var buf bytes.Buffer
	outPath := filepath.Join(t.TempDir(), "out.csv")
	if err := RunExport(path, "csv", outPath); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	buf.Write(data)

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse CSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d records", len(records))
	}
	if records[0][0] != "timestamp" {
		t.Errorf("expected timestamp header, got %v", records[0])
	}
	row := records[1]
	if row[3] != "REJECT" {
		t.Errorf("expected REJECT op, got %v", row[3])
	}
	if row[10] != "cannot set floodlamp #42 power level to 8: valid range is 0:7" {
		t.Errorf("unexpected error column: %v", row[10])
	}
}

func TestExportUnknownFormat(t *testing.T) {
	path := createTestTraceFile(t, nil)

	err := RunExport(path, "xml", "")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStatsCountsByOp(t *testing.T) {
	ts := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	events := []tracelog.Event{
		{Timestamp: ts, SessionID: "sess-1", Op: tracelog.OpInit, Field: "sol2"},
		{Timestamp: ts, SessionID: "sess-1", Op: tracelog.OpWrite, Field: "sol2"},
		{Timestamp: ts, SessionID: "sess-1", Op: tracelog.OpWrite, Field: "lamp_pwr"},
		{Timestamp: ts, SessionID: "sess-1", Op: tracelog.OpRead, Field: "lamp_pwr"},
	}

	path := createTestTraceFile(t, events)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Total Events: 4") {
		t.Errorf("expected 4 total events, got:\n%s", output)
	}
	if !strings.Contains(output, "WRITE:") {
		t.Error("expected WRITE op in output")
	}
	if !strings.Contains(output, "lamp_pwr:") {
		t.Error("expected lamp_pwr field in output")
	}
}

func TestStatsCountsSessions(t *testing.T) {
	ts := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	events := []tracelog.Event{
		{Timestamp: ts, SessionID: "sess-aaaa-bbbb", Op: tracelog.OpInit, Layout: "1.0"},
		{Timestamp: ts.Add(time.Second), SessionID: "sess-aaaa-bbbb", Op: tracelog.OpWrite, Word: 0x0004},
		{Timestamp: ts, SessionID: "sess-cccc-dddd", Op: tracelog.OpInit},
	}

	path := createTestTraceFile(t, events)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Sessions: 2") {
		t.Errorf("expected 2 sessions, got:\n%s", output)
	}
	if !strings.Contains(output, "[sess-aaa") {
		t.Error("expected sess-aaaa details")
	}
	if !strings.Contains(output, "Layout: 1.0") {
		t.Error("expected layout revision in session details")
	}
	if !strings.Contains(output, "Final word: 0x0004") {
		t.Errorf("expected final word in output, got:\n%s", output)
	}
}

func TestStatsCountsRejects(t *testing.T) {
	ts := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	events := []tracelog.Event{
		{Timestamp: ts, SessionID: "sess-1", Op: tracelog.OpWrite},
		{Timestamp: ts, SessionID: "sess-1", Op: tracelog.OpReject, Error: "out of range"},
		{Timestamp: ts, SessionID: "sess-1", Op: tracelog.OpReject, Error: "out of range"},
	}

	path := createTestTraceFile(t, events)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	if !strings.Contains(buf.String(), "Rejected Writes: 2") {
		t.Errorf("expected 2 rejected writes, got:\n%s", buf.String())
	}
}

func TestStatsTimeRange(t *testing.T) {
	start := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 29, 11, 0, 0, 0, time.UTC)
	events := []tracelog.Event{
		{Timestamp: start, SessionID: "sess-1", Op: tracelog.OpInit},
		{Timestamp: end, SessionID: "sess-1", Op: tracelog.OpRead},
	}

	path := createTestTraceFile(t, events)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}

	if !strings.Contains(buf.String(), "1h0m0s") {
		t.Errorf("expected 1h0m0s duration, got:\n%s", buf.String())
	}
}

func TestParseOpFlag(t *testing.T) {
	cases := []struct {
		input string
		want  tracelog.Op
		ok    bool
	}{
		{"init", tracelog.OpInit, true},
		{"READ", tracelog.OpRead, true},
		{"Write", tracelog.OpWrite, true},
		{"reject", tracelog.OpReject, true},
		{"bogus", 0, false},
	}

	for _, tc := range cases {
		op, err := ParseOpFlag(tc.input)
		if tc.ok {
			if err != nil {
				t.Errorf("ParseOpFlag(%q) returned error: %v", tc.input, err)
			}
			if op != tc.want {
				t.Errorf("ParseOpFlag(%q) = %v, want %v", tc.input, op, tc.want)
			}
		} else if err == nil {
			t.Errorf("ParseOpFlag(%q) expected error", tc.input)
		}
	}
}
