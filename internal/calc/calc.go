// Package calc implements the interpreter behind the xyzcalc command.
//
// Each line of input is a command name followed by arguments. Lines are
// split into words like a shell does, so a value containing spaces
// must be quoted. Arguments are values: numbers, vectors such as
// [1,2,3], matrices such as [1,2;3,4] with rows separated by
// semicolons, or references to variables such as $v. The result of the
// last command that produced a value is stored in $ans.
package calc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/google/shlex"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace { return tracing.Select("xyz.calc") }

var (
	// ErrQuit is returned by Exec when the quit command is run.
	ErrQuit = errors.New("quit")

	ErrUnknownCommand = errors.New("unknown command")
	ErrArgCount       = errors.New("wrong number of arguments")
	ErrType           = errors.New("wrong argument type")
	ErrSyntax         = errors.New("syntax error")
	ErrUndefined      = errors.New("undefined variable")
)

// Interpreter runs calculator commands. The zero value is not usable.
// Use New.
type Interpreter struct {
	out  io.Writer
	vars map[string]Value
}

// New returns an Interpreter that writes results to out.
func New(out io.Writer) *Interpreter {
	return &Interpreter{
		out:  out,
		vars: make(map[string]Value),
	}
}

// Var returns the value of the named variable.
func (in *Interpreter) Var(name string) (Value, bool) {
	v, ok := in.vars[name]
	return v, ok
}

// Exec runs a single line of input. Blank lines and lines starting
// with # do nothing.
func (in *Interpreter) Exec(line string) (err error) {
	words, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("split %q: %w", line, ErrSyntax)
	}
	if len(words) == 0 {
		return nil
	}

	name, args := words[0], words[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownCommand)
	}
	if cmd.args >= 0 && len(args) != cmd.args {
		return fmt.Errorf("%v takes %v arguments, got %v: %w", name, cmd.args, len(args), ErrArgCount)
	}
	tracer().Debugf("exec %v %q", name, args)

	// The xyz package panics on mismatched dimensions.
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("%v: %w", name, e)
		}
	}()

	return cmd.run(in, args)
}

// Run reads lines from r and executes them until r is exhausted or the
// quit command is run. Errors from individual lines are written to the
// output and do not stop the loop. If prompt is not empty, it is
// written before each line is read.
func (in *Interpreter) Run(r io.Reader, prompt string) error {
	s := bufio.NewScanner(r)
	for {
		if prompt != "" {
			fmt.Fprint(in.out, prompt)
		}
		if !s.Scan() {
			return s.Err()
		}

		err := in.Exec(s.Text())
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(in.out, "error: %v\n", err)
		}
	}
}

func (in *Interpreter) args(args []string) ([]Value, error) {
	vs := make([]Value, len(args))
	for i, arg := range args {
		v, err := parseValue(arg, in.vars)
		if err != nil {
			return nil, err
		}
		vs[i] = v
	}
	return vs, nil
}

func (in *Interpreter) result(v Value) {
	in.vars["ans"] = v
	fmt.Fprintln(in.out, Format(v))
}

func (in *Interpreter) varNames() []string {
	return slices.Sorted(maps.Keys(in.vars))
}

func usage() string {
	var buf strings.Builder
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		fmt.Fprintf(&buf, "%-10v %v\n", name, commands[name].help)
	}
	return buf.String()
}
