// Lined is a line-editing REPL. It reads lines with an interactive editor
// and prints each line back until it reads "exit" or the end of input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"src.lined.dev/pkg/buildinfo"
	"src.lined.dev/pkg/cli"
	"src.lined.dev/pkg/lineedit"
	"src.lined.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[main] ")

func main() {
	os.Exit(run([3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args))
}

type flags struct {
	Prompt, Log   string
	HistoryLimit  int
	Help, Version bool
}

func newFlagSet(f *flags) *flag.FlagSet {
	fs := flag.NewFlagSet("lined", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.Prompt, "prompt", "> ", "the prompt shown before the line")
	fs.StringVar(&f.Log, "log", "", "a file to write debug log to")
	fs.IntVar(&f.HistoryLimit, "history-limit", lineedit.HistoryCapacity, "number of history entries to keep")
	fs.BoolVar(&f.Help, "help", false, "show usage help and quit")
	fs.BoolVar(&f.Version, "version", false, "show version and quit")
	return fs
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: lined [flags]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Parses flags and runs the REPL, returning the exit status.
func run(fds [3]*os.File, args []string) int {
	f := &flags{}
	fs := newFlagSet(f)
	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			// -h is requested but not defined; -help is.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}
	if f.Help {
		usage(fds[1], fs)
		return 0
	}
	if f.Version {
		fmt.Fprintln(fds[1], buildinfo.Version)
		return 0
	}
	if fs.NArg() > 0 {
		fmt.Fprintln(fds[2], "arguments are not supported")
		usage(fds[2], fs)
		return 2
	}

	cleanup, err := logutil.SetOutputFile(f.Log)
	if err != nil {
		fmt.Fprintln(fds[2], "Warning: cannot open log file:", err)
	} else {
		defer cleanup()
	}

	app := cli.NewApp(cli.AppSpec{
		TTY:    cli.NewTTY(fds[0], fds[2]),
		Prompt: f.Prompt,
		Engine: lineedit.NewWithOptions(lineedit.Options{HistoryLimit: f.HistoryLimit}),
	})
	if err := repl(app, fds[1]); err != nil {
		fmt.Fprintln(fds[2], err)
		return 2
	}
	return 0
}

func repl(app cli.App, out io.Writer) error {
	for {
		line, err := app.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		logger.Printf("read line %q", line)
		if line == "exit" {
			return nil
		}
		fmt.Fprintf(out, "Buffer: %s\n", line)
	}
}
