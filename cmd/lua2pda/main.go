/*
Lua2pda recognizes Lua 5.3 source as either a complete, valid chunk or a
rejected one, without producing an AST or evaluating anything.

Usage:

	lua2pda [flags] [FILE]
	lua2pda [flags] repl

If FILE is given, its contents are read and recognized. If no FILE is
given and standard input is not a terminal, the chunk is read from
standard input. The "repl" subcommand instead starts an interactive
session that recognizes one line of input at a time.

The flags are:

	-v, --version
		Give the current version of lua2pda and then exit.

	-d, --direct
		Force reading directly from stdin instead of going through
		GNU readline in repl mode.

	--stats
		After recognizing the input, print statistics about the
		recognizer's transition table (state, stack symbol, and
		transition counts) to stderr.

	--debug LEVEL
		Set the trace verbosity emitted to stderr while recognizing:
		0 (silent, default), 1 (bytes), 2 (transitions), or 3 (stack).

	--cache PATH
		Cache the built transition table at PATH between runs instead
		of rebuilding it from scratch every time.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"github.com/stevenskevin/lua-2pda/internal/diagerr"
	"github.com/stevenskevin/lua-2pda/internal/input"
	"github.com/stevenskevin/lua-2pda/internal/location"
	"github.com/stevenskevin/lua-2pda/internal/luapda"
	"github.com/stevenskevin/lua-2pda/internal/twopda"
	"github.com/stevenskevin/lua-2pda/internal/version"
)

const (
	// ExitSuccess indicates the chunk was recognized successfully.
	ExitSuccess = iota

	// ExitRejected indicates the chunk was not a valid Lua 5.3 chunk.
	ExitRejected

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue reading input or initializing the recognizer.
	ExitInitError
)

var (
	returnCode  = ExitSuccess
	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of lua2pda and then exit.")
	flagDirect  = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline where possible")
	flagStats   = pflag.Bool("stats", false, "Print transition table statistics after recognizing the input")
	flagDebug   = pflag.Int("debug", 0, "Trace verbosity while recognizing: 0-3")
	flagCache   = pflag.String("cache", "", "Cache the built transition table at this path between runs")
)

type stderrTracer struct{}

func (stderrTracer) Tracef(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Println(version.Current)
		return
	}

	if *flagCache != "" {
		luapda.ConfigureCache(*flagCache, true)
	}

	args := pflag.Args()

	if len(args) == 1 && args[0] == "repl" {
		runREPL()
		return
	}

	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		returnCode = ExitInitError
		return
	}

	var src []byte
	var err error
	if len(args) == 1 {
		src, err = os.ReadFile(args[0])
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	runOnce(src)
}

func runOnce(src []byte) {
	var tracer twopda.Tracer
	if *flagDebug > 0 {
		tracer = stderrTracer{}
	}

	err := luapda.Parse(src, twopda.DebugLevel(*flagDebug), tracer)
	if *flagStats {
		stats := luapda.Definition().Stats()
		fmt.Fprintf(os.Stderr, "states=%d stack_symbols=%d transitions=%d\n", stats.States, stats.StackSymbs, stats.Transitions)
	}

	if err != nil {
		reportRejection(src, err)
		returnCode = ExitRejected
		return
	}

	fmt.Println("accepted")
}

func reportRejection(src []byte, err error) {
	var pdaErr *twopda.Error
	if pe, ok := err.(*twopda.Error); ok {
		pdaErr = pe
	}

	if pdaErr == nil {
		fmt.Fprintf(os.Stderr, "rejected: %s\n", diagerr.DisplayMessage(err))
		return
	}

	fmt.Fprintln(os.Stderr, location.Render(src, pdaErr.Index, "rejected", 80))
}

func runREPL() {
	var reader input.ChunkReader
	var err error

	if *flagDirect || !isatty.IsTerminal(os.Stdin.Fd()) {
		reader = input.NewDirectReader(os.Stdin)
	} else {
		reader, err = input.NewInteractiveReader()
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}
	}
	defer reader.Close()

	for {
		line, err := reader.ReadChunk()
		if err != nil {
			if err == io.EOF {
				return
			}
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}

		if perr := luapda.Parse([]byte(line), twopda.DebugSilent, nil); perr != nil {
			reportRejection([]byte(line), perr)
		} else {
			fmt.Println("accepted")
		}
	}
}

