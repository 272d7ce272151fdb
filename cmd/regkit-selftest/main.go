// Command regkit-selftest is the self-checking test program for the
// control board register accessors.
//
// It runs the built-in scenario set (construction defaults, solenoid
// previous-value reporting, a walking-ones sweep of the lamp field,
// out-of-range rejection, field isolation) plus any YAML scenarios
// loaded from a directory, and prints one line per scenario in a
// two-column layout: description on the left, a right-justified "ok"
// marker on success. Failures print a FAILED! block with expected and
// encountered values. The process exits 0 only if every scenario
// passed, so a build system can treat a non-zero exit as a build break.
//
// Usage:
//
//	regkit-selftest [flags]
//
// Flags:
//
//	-dir string        Directory with extra YAML scenarios
//	-report string     Report format: text, json (default "text")
//	-o string          Write the report to this file instead of stdout
//	-trace string      Write register trace events to this .rlog file
//	-v                 Verbose output (per-expectation detail)
//	-stop-on-failure   Stop after the first failing scenario
//	-list              List scenario IDs and descriptions, then exit
//
// Examples:
//
//	# Run the built-in set
//	regkit-selftest
//
//	# Add site-specific scenarios and capture a trace
//	regkit-selftest -dir ./scenarios -trace run.rlog
//
//	# Machine-readable report
//	regkit-selftest -report json -o report.json
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/regkit-io/regkit-go/internal/selftest/builtin"
	"github.com/regkit-io/regkit-go/internal/selftest/engine"
	"github.com/regkit-io/regkit-go/internal/selftest/loader"
	"github.com/regkit-io/regkit-go/internal/selftest/reporter"
	"github.com/regkit-io/regkit-go/pkg/tracelog"
	"github.com/regkit-io/regkit-go/pkg/version"
)

var (
	dir           = flag.String("dir", "", "Directory with extra YAML scenarios")
	reportFormat  = flag.String("report", "text", "Report format: text, json")
	output        = flag.String("o", "", "Write the report to this file instead of stdout")
	tracePath     = flag.String("trace", "", "Write register trace events to this .rlog file")
	verbose       = flag.Bool("v", false, "Verbose output (per-expectation detail)")
	stopOnFailure = flag.Bool("stop-on-failure", false, "Stop after the first failing scenario")
	list          = flag.Bool("list", false, "List scenario IDs and descriptions, then exit")
)

func main() {
	flag.Parse()

	if *reportFormat != "text" && *reportFormat != "json" {
		fmt.Fprintf(os.Stderr, "Error: report must be 'text' or 'json', got '%s'\n", *reportFormat)
		flag.Usage()
		os.Exit(1)
	}

	scenarios := builtin.Scenarios()
	if *dir != "" {
		extra, err := loader.LoadDirectory(*dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		scenarios = append(scenarios, extra...)
	}

	if *list {
		for _, sc := range scenarios {
			fmt.Printf("%-8s %s\n", sc.ID, sc.Description)
		}
		return
	}

	out := os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create report file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if *reportFormat == "text" {
		log.SetFlags(log.Ltime)
		if *verbose {
			log.SetFlags(log.Ltime | log.Lmicroseconds)
		}
		printBanner()
		log.Printf("Layout revision: %s", version.Current)
		log.Printf("Scenarios: %d", len(scenarios))
		if *dir != "" {
			log.Printf("Extra scenario dir: %s", *dir)
		}
		log.Println()
	}

	var traceLogger *tracelog.FileLogger
	if *tracePath != "" {
		var err error
		traceLogger, err = tracelog.NewFileLogger(*tracePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create trace logger: %v\n", err)
			os.Exit(1)
		}
		defer traceLogger.Close()
		if *reportFormat == "text" {
			log.Printf("Tracing to: %s", *tracePath)
		}
	}

	var rep reporter.Reporter
	if *reportFormat == "json" {
		rep = reporter.NewJSONReporter(out, true)
	} else {
		rep = reporter.NewTextReporter(out, *verbose)
	}

	config := engine.DefaultConfig()
	config.StopOnFirstFailure = *stopOnFailure
	// Only set logger when non-nil to avoid typed-nil interface issue.
	if traceLogger != nil {
		config.TraceLogger = traceLogger
	}

	e := engine.NewWithConfig(config)
	result := e.RunSuite(context.Background(), scenarios)

	rep.ReportSuite(result)

	if result.FailCount > 0 {
		os.Exit(1)
	}
}

func printBanner() {
	fmt.Print(`
                 _    _ _
 _ __ ___  __ _| | _(_) |_
| '__/ _ \/ _` + "`" + ` | |/ / | __|
| | |  __/ (_| |   <| | |_
|_|  \___|\__, |_|\_\_|\__|
          |___/

Control Board Register Self Test
`)
}
