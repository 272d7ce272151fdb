// Command regkit-console is an interactive console for poking the
// control board register accessors.
//
// It constructs one control board and offers read/set commands per
// accessor, a bit-layout dump, and live tracing to the terminal or an
// .rlog file.
//
// Usage:
//
//	regkit-console [flags]
//
// Flags:
//
//	-trace string   Write register trace events to this .rlog file
//
// Commands:
//
//	read sol2|sol3|lamp|word    read an accessor (or the raw word)
//	set sol2|sol3 on|off        command a solenoid
//	set lamp <0..7>             set the floodlamp power level
//	dump                        show the register bit layout
//	trace on|off                toggle trace echo to the console
//	version                     show the register layout revision
//	help                        show the command list
//	quit                        exit
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/regkit-io/regkit-go/pkg/board"
	"github.com/regkit-io/regkit-go/pkg/inspect"
	"github.com/regkit-io/regkit-go/pkg/tracelog"
	"github.com/regkit-io/regkit-go/pkg/version"
)

var tracePath = flag.String("trace", "", "Write register trace events to this .rlog file")

func main() {
	flag.Parse()

	c, err := newConsole(*tracePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer c.close()

	c.run()
}

// console wires the board, the formatter, and the readline loop.
type console struct {
	board     *board.ControlBoard
	formatter *inspect.Formatter
	rl        *readline.Instance

	fileLogger *tracelog.FileLogger
	echo       bool
}

func newConsole(tracePath string) (*console, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "gpio23> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	c := &console{
		formatter: inspect.NewFormatter(),
		rl:        rl,
	}
	c.formatter.Names["energize_vac_solenoid2"] = vacuumName
	c.formatter.Names["energize_vac_solenoid3"] = vacuumName

	if tracePath != "" {
		c.fileLogger, err = tracelog.NewFileLogger(tracePath)
		if err != nil {
			rl.Close()
			return nil, fmt.Errorf("failed to create trace logger: %w", err)
		}
	}

	c.board = board.NewControlBoard(board.Config{TraceLogger: c.traceLogger()})
	return c, nil
}

func vacuumName(v uint16) string {
	if v == 0 {
		return "OFF"
	}
	return "ON"
}

// traceLogger composes the active sinks for the current echo setting.
func (c *console) traceLogger() tracelog.Logger {
	var sinks []tracelog.Logger
	if c.fileLogger != nil {
		sinks = append(sinks, c.fileLogger)
	}
	if c.echo {
		handler := slog.NewTextHandler(c.rl.Stdout(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		sinks = append(sinks, tracelog.NewSlogAdapter(slog.New(handler)))
	}

	switch len(sinks) {
	case 0:
		return nil
	case 1:
		return sinks[0]
	default:
		return tracelog.NewMultiLogger(sinks...)
	}
}

func (c *console) close() {
	c.rl.Close()
	if c.fileLogger != nil {
		c.fileLogger.Close()
	}
}

// run is the interactive command loop.
func (c *console) run() {
	c.printHelp()

	for {
		line, err := c.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			c.printHelp()

		case "read", "r":
			c.cmdRead(args)

		case "set", "w":
			c.cmdSet(args)

		case "dump", "d":
			fmt.Fprint(c.rl.Stdout(), c.formatter.FormatRegister(c.board.Register(), board.Fields()))

		case "trace", "t":
			c.cmdTrace(args)

		case "version", "v":
			fmt.Fprintf(c.rl.Stdout(), "register layout revision %s, session %s\n",
				version.Current, c.board.SessionID())

		case "quit", "exit", "q":
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			return

		default:
			fmt.Fprintf(c.rl.Stdout(), "Unknown command: %s (try 'help')\n", cmd)
		}
	}
}

func (c *console) printHelp() {
	fmt.Fprint(c.rl.Stdout(), `Commands:
  read sol2|sol3|lamp|word    read an accessor (or the raw word)
  set sol2|sol3 on|off        command a solenoid
  set lamp <0..7>             set the floodlamp power level
  dump                        show the register bit layout
  trace on|off                toggle trace echo to the console
  version                     show the register layout revision
  help                        show this list
  quit                        exit
`)
}

func (c *console) cmdRead(args []string) {
	out := c.rl.Stdout()
	if len(args) != 1 {
		fmt.Fprintln(out, "Usage: read sol2|sol3|lamp|word")
		return
	}

	switch strings.ToLower(args[0]) {
	case "sol2":
		fmt.Fprintf(out, "%s: %s\n", c.board.Solenoid2().Unit(), c.board.Solenoid2().Read())
	case "sol3":
		fmt.Fprintf(out, "%s: %s\n", c.board.Solenoid3().Unit(), c.board.Solenoid3().Read())
	case "lamp":
		fmt.Fprintf(out, "%s: power level %d\n", c.board.Lamp().Unit(), c.board.Lamp().Read())
	case "word":
		fmt.Fprintf(out, "%s\n", c.board.Register())
	default:
		fmt.Fprintf(out, "Unknown target: %s\n", args[0])
	}
}

func (c *console) cmdSet(args []string) {
	out := c.rl.Stdout()
	if len(args) != 2 {
		fmt.Fprintln(out, "Usage: set sol2|sol3 on|off  |  set lamp <0..7>")
		return
	}

	switch strings.ToLower(args[0]) {
	case "sol2", "sol3":
		sol := c.board.Solenoid2()
		if args[0] == "sol3" {
			sol = c.board.Solenoid3()
		}
		state, err := parseVacuum(args[1])
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}
		prev := sol.Set(state)
		fmt.Fprintf(out, "%s: %s (was %s)\n", sol.Unit(), state, prev)

	case "lamp":
		level, err := strconv.ParseUint(args[1], 10, 8)
		if err != nil {
			fmt.Fprintf(out, "Error: lamp level must be a number, got %q\n", args[1])
			return
		}
		prev, err := c.board.Lamp().Set(uint8(level))
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			return
		}
		fmt.Fprintf(out, "%s: power level %d (was %d)\n", c.board.Lamp().Unit(), level, prev)

	default:
		fmt.Fprintf(out, "Unknown target: %s\n", args[0])
	}
}

func (c *console) cmdTrace(args []string) {
	out := c.rl.Stdout()
	if len(args) != 1 {
		fmt.Fprintf(out, "Trace echo is %s. Usage: trace on|off\n", onOff(c.echo))
		return
	}

	switch strings.ToLower(args[0]) {
	case "on":
		c.echo = true
	case "off":
		c.echo = false
	default:
		fmt.Fprintln(out, "Usage: trace on|off")
		return
	}
	c.board.SetTraceLogger(c.traceLogger())
	fmt.Fprintf(out, "Trace echo %s\n", onOff(c.echo))
}

func parseVacuum(s string) (board.Vacuum, error) {
	switch strings.ToLower(s) {
	case "on":
		return board.VacuumOn, nil
	case "off":
		return board.VacuumOff, nil
	default:
		return board.VacuumOff, fmt.Errorf("state must be on or off, got %q", s)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
