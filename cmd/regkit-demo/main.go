// Command regkit-demo exercises the control board accessors against
// the in-memory GPIO register #23.
//
// The demo constructs the board (which forces every field to its safe
// default), energizes vacuum solenoid #2, reads the state back, and
// reports the outcome. Exit status 0 means the accessor round trip
// worked.
//
// Usage:
//
//	regkit-demo [flags]
//
// Flags:
//
//	-trace string   Write register trace events to this .rlog file
//	-dump           Dump the register bit layout after the run
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/regkit-io/regkit-go/pkg/board"
	"github.com/regkit-io/regkit-go/pkg/inspect"
	"github.com/regkit-io/regkit-go/pkg/tracelog"
)

var (
	tracePath = flag.String("trace", "", "Write register trace events to this .rlog file")
	dump      = flag.Bool("dump", false, "Dump the register bit layout after the run")
)

func main() {
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lmicroseconds)
	log.Println("regkit Control Board Demo")
	log.Println("=========================")

	var traceLogger tracelog.Logger
	if *tracePath != "" {
		fl, err := tracelog.NewFileLogger(*tracePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create trace logger: %v\n", err)
			os.Exit(1)
		}
		defer fl.Close()
		traceLogger = fl
		log.Printf("Tracing to: %s", *tracePath)
	}

	brd := board.NewControlBoard(board.Config{TraceLogger: traceLogger})
	log.Printf("Session: %s", brd.SessionID())
	log.Printf("Register after construction: %s", brd.Register())

	// Energize vacuum solenoid #2, applying vacuum to... something.
	prev := brd.Solenoid2().Set(board.VacuumOn)
	log.Printf("Energized %s (was %s)", brd.Solenoid2().Unit(), prev)

	if *dump {
		f := inspect.NewFormatter()
		fmt.Print(f.FormatRegister(brd.Register(), board.Fields()))
	}

	if brd.Solenoid2().Read() == board.VacuumOn {
		fmt.Println("Works!")
		return
	}

	fmt.Fprintln(os.Stderr, "Error: accessor failed to set the bit for energizing vacuum solenoid #2.")
	os.Exit(1)
}
