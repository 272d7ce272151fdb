// Command regkit-trace is a tool for viewing and analyzing register
// trace files.
//
// Trace files (.rlog) are created by running regkit-demo,
// regkit-selftest, or regkit-console with the -trace flag.
//
// Usage:
//
//	regkit-trace <command> [flags] <file.rlog>
//
// Commands:
//
//	view     View trace file in human-readable format
//	export   Export trace file to JSON or CSV format
//	stats    Show statistics about the trace file
//
// Examples:
//
//	# View all events
//	regkit-trace view run.rlog
//
//	# View only rejected writes
//	regkit-trace view -op reject run.rlog
//
//	# View one field within a session
//	regkit-trace view -session 8e2d... -field lamp_pwr run.rlog
//
//	# Export to JSONL
//	regkit-trace export -format jsonl run.rlog
//
//	# Show statistics
//	regkit-trace stats run.rlog
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/regkit-io/regkit-go/cmd/regkit-trace/commands"
	"github.com/regkit-io/regkit-go/pkg/tracelog"
)

const usage = `regkit-trace - Register Trace Analyzer

Usage:
  regkit-trace <command> [flags] <file.rlog>

Commands:
  view     View trace file in human-readable format
  export   Export trace file to JSON or CSV format
  stats    Show statistics about the trace file

Use "regkit-trace <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "view":
		runView(args)
	case "export":
		runExport(args)
	case "stats":
		runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `regkit-trace view - View trace file in human-readable format

Usage:
  regkit-trace view [flags] <file.rlog>

Flags:
`)
		fs.PrintDefaults()
	}

	session := fs.String("session", "", "Filter by session ID")
	op := fs.String("op", "", "Filter by operation (init, read, write, reject)")
	register := fs.String("register", "", "Filter by register name")
	field := fs.String("field", "", "Filter by field name")
	since := fs.String("since", "", "Filter by start time (RFC3339)")
	until := fs.String("until", "", "Filter by end time (RFC3339)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	filter, err := buildFilter(*session, *op, *register, *field, *since, *until)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := commands.RunView(fs.Arg(0), filter, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `regkit-trace export - Export trace file to JSON or CSV format

Usage:
  regkit-trace export [flags] <file.rlog>

Flags:
`)
		fs.PrintDefaults()
	}

	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunExport(fs.Arg(0), *format, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `regkit-trace stats - Show statistics about the trace file

Usage:
  regkit-trace stats <file.rlog>

`)
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: trace file path required")
		fs.Usage()
		os.Exit(1)
	}

	if err := commands.RunStats(fs.Arg(0), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildFilter assembles a tracelog.Filter from flag values.
func buildFilter(session, op, register, field, since, until string) (tracelog.Filter, error) {
	filter := tracelog.Filter{
		SessionID: session,
		Register:  register,
		Field:     field,
	}

	if op != "" {
		o, err := commands.ParseOpFlag(op)
		if err != nil {
			return tracelog.Filter{}, err
		}
		filter.Op = &o
	}

	if since != "" {
		t, err := time.Parse(time.RFC3339, since)
		if err != nil {
			return tracelog.Filter{}, fmt.Errorf("invalid since format: %w", err)
		}
		filter.TimeStart = &t
	}

	if until != "" {
		t, err := time.Parse(time.RFC3339, until)
		if err != nil {
			return tracelog.Filter{}, fmt.Errorf("invalid until format: %w", err)
		}
		filter.TimeEnd = &t
	}

	return filter, nil
}
