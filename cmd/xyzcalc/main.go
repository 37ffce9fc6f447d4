// Command xyzcalc is an interactive vector and matrix calculator.
//
// Usage:
//
//	xyzcalc [flags] [script]
//
// Commands are read from script, or from standard input if no script
// is given. Run the help command for a list of commands.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"deedles.dev/xyz/internal/calc"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

func setupTracing(level, dest string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)

	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"tracelevel.root": level,
	}
	for _, name := range []string{"xyz", "xyz.geom", "xyz.calc"} {
		conf["tracelevel."+name] = level
	}
	if dest != "" {
		conf["tracing.destination"] = dest
	}

	err := trace2go.ConfigureRoot(conf, "tracelevel")
	if err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func main() {
	level := flag.String("trace", "Error", "trace level: Error, Info or Debug")
	dest := flag.String("tracelog", "", "trace destination: Stdout, Stderr or a file URI")
	prompt := flag.String("prompt", "> ", "prompt to show when reading from a terminal")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [flags] [script]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	err := setupTracing(*level, *dest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configure tracing: %v\n", err)
		os.Exit(1)
	}

	var r io.Reader = os.Stdin
	switch flag.NArg() {
	case 0:
		if fi, err := os.Stdin.Stat(); err != nil || fi.Mode()&os.ModeCharDevice == 0 {
			*prompt = ""
		}
	case 1:
		file, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "open script: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		r = file
		*prompt = ""
	default:
		flag.Usage()
		os.Exit(2)
	}

	in := calc.New(os.Stdout)
	err = in.Run(r, *prompt)
	if err != nil {
		tracing.Errorf("read input: %v", err)
		os.Exit(1)
	}
}
