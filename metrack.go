// `metrack` -- tend a tree of per-metric time-series files
//
// The store is a directory tree `<data-dir>/<platform>/<account...>/<metric>.csv` where every
// file is two-column CSV (epoch seconds, value) with strictly increasing timestamps.  Run
// `metrack help` for brief help.

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"metrack/add"
	"metrack/check"
	. "metrack/command"
	"metrack/export"
	"metrack/view"
)

const MetrackVersion = "0.1.0"

func main() {
	// An operator abort mid-run is a normal outcome: completed files are already on disk and
	// unstarted files are simply skipped.
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	go func() {
		<-sigc
		os.Exit(0)
	}()

	cmd := commandLine()
	err := cmd.Perform(os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		if errors.Is(err, syscall.EPIPE) {
			// Downstream consumer went away, nothing to report to it.
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func commandLine() Command {
	out := flag.CommandLine.Output()

	if len(os.Args) < 2 {
		fmt.Fprintf(out, "Required operation missing, try `metrack help`\n")
		os.Exit(2)
	}

	var cmd Command
	verb := os.Args[1]
	switch verb {
	case "help", "-h":
		fmt.Fprintf(out, "Usage: %s command [options] [-- seriesfile ...]\n", os.Args[0])
		fmt.Fprintf(out, "Commands:\n")
		fmt.Fprintf(out, "  add     - interactively append observations to series files\n")
		fmt.Fprintf(out, "  check   - validate series files, reporting every defective row\n")
		fmt.Fprintf(out, "  export  - merge the series tree into one sorted table\n")
		fmt.Fprintf(out, "  view    - pretty-print a single series file\n")
		fmt.Fprintf(out, "  version - print information about the program\n")
		fmt.Fprintf(out, "  help    - print this message\n")
		fmt.Fprintf(out, "Each command accepts -h to further explain options.\n")
		os.Exit(0)
	case "add":
		cmd = new(add.AddCommand)
	case "check":
		cmd = new(check.CheckCommand)
	case "export":
		cmd = new(export.ExportCommand)
	case "view":
		cmd = new(view.ViewCommand)
	case "version":
		fmt.Printf("metrack version(%s)\n", MetrackVersion)
		os.Exit(0)
	default:
		fmt.Fprintf(out, "Unknown operation %s, try `metrack help`\n", verb)
		os.Exit(2)
	}

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	cmd.Add(fs)

	fs.Usage = func() {
		restargs := ""
		if _, ok := cmd.(SetRestArgumentsAPI); ok {
			restargs = " [-- seriesfile ...]"
		}
		fmt.Fprintf(out, "Usage: %s %s [options]%s\n\n", os.Args[0], verb, restargs)
		for _, s := range cmd.Summary() {
			fmt.Fprintln(out, "  ", s)
		}
		fmt.Fprintln(out, "\nOptions:")
		fs.PrintDefaults()
		if restargs != "" {
			fmt.Fprintf(out, "  seriesfile ...\n    \tSeries files to operate on\n")
		}
	}
	fs.Parse(os.Args[2:])

	rest := fs.Args()
	if len(rest) > 0 {
		if rcmd, ok := cmd.(SetRestArgumentsAPI); ok {
			rcmd.SetRestArguments(rest)
		} else {
			fmt.Fprintf(out, "Rest arguments not accepted by `%s`.\n", verb)
			os.Exit(2)
		}
	}

	if err := cmd.Validate(); err != nil {
		fmt.Fprintf(out, "Bad arguments, try -h\n%v\n", err.Error())
		os.Exit(2)
	}

	return cmd
}
