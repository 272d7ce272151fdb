// Package tracelog provides structured tracing of register operations.
//
// This package defines the Logger interface and Event type for
// capturing every accessor-level register operation (construction
// defaults, reads, writes, rejected writes). It is separate from
// operational logging (slog): a trace is a complete machine-readable
// record of what happened to a register, suitable for replay and
// offline analysis.
//
// # Basic Usage
//
// Applications configure tracing by providing a Logger implementation:
//
//	// For development: log to console via slog
//	brd.SetTraceLogger(tracelog.NewSlogAdapter(slog.Default()))
//
//	// For capture: write to binary file
//	tl, _ := tracelog.NewFileLogger("run.rlog")
//	brd.SetTraceLogger(tl)
//
//	// Both: use MultiLogger
//	brd.SetTraceLogger(tracelog.NewMultiLogger(
//	    tracelog.NewSlogAdapter(slog.Default()),
//	    tl,
//	))
//
// # Event Kinds
//
// Each event records one operation:
//   - Init: an accessor forcing its field to the construction default
//   - Read: a field read
//   - Write: a completed field write (with the previous value)
//   - Reject: a write refused by range validation (register untouched)
//
// # File Format
//
// Trace files use CBOR encoding with .rlog extension. The regkit-trace
// CLI tool provides viewing, filtering, export, and statistics.
package tracelog
