package calc

import (
	"fmt"

	"deedles.dev/xyz"
)

type command struct {
	// args is the number of arguments the command takes, or -1 if the
	// command checks them itself.
	args int
	help string
	run  func(in *Interpreter, args []string) error
}

var commands map[string]command

func init() {
	// Assigned in init because help refers to commands.
	commands = map[string]command{
		"help": {0, "list commands", func(in *Interpreter, args []string) error {
			fmt.Fprint(in.out, usage())
			return nil
		}},
		"quit": {0, "exit the calculator", func(in *Interpreter, args []string) error {
			return ErrQuit
		}},
		"set": {2, "set NAME VALUE: store VALUE in $NAME", cmdSet},
		"vars": {0, "list variables", func(in *Interpreter, args []string) error {
			for _, name := range in.varNames() {
				fmt.Fprintf(in.out, "$%v = %v\n", name, Format(in.vars[name]))
			}
			return nil
		}},
		"print":     {1, "print A", unary(func(a Value) (Value, error) { return a, nil })},
		"add":       {2, "add A B: A+B", binary(add)},
		"sub":       {2, "sub A B: A-B", binary(sub)},
		"mul":       {2, "mul A B: product of numbers, vectors and matrices", binary(mul)},
		"dot":       {2, "dot V W: dot product", vectors(func(v, w vector) Value { return xyz.Dot(v, w) })},
		"cross":     {2, "cross V W: cross product of 3D vectors", vectors(func(v, w vector) Value { return xyz.Cross(v, w) })},
		"angle":     {2, "angle V W: angle between vectors in degrees", vectors(func(v, w vector) Value { return xyz.ToDegrees(xyz.Angle(v, w)) })},
		"len":       {1, "len V: length of a vector", unary(vectorFunc(func(v vector) Value { return xyz.Length(v) }))},
		"unit":      {1, "unit V: V scaled to length 1", unary(vectorFunc(func(v vector) Value { return xyz.Unit(v) }))},
		"det":       {1, "det M: determinant", unary(matrixFunc(func(m matrix) (Value, error) { return xyz.Determinant(m), nil }))},
		"cofactors": {1, "cofactors M: cofactor matrix", unary(matrixFunc(func(m matrix) (Value, error) { return xyz.Cofactors(m), nil }))},
		"transpose": {1, "transpose M: transpose", unary(matrixFunc(func(m matrix) (Value, error) { return m.Transpose(), nil }))},
		"inv": {1, "inv M: inverse", unary(matrixFunc(func(m matrix) (Value, error) {
			return xyz.Invert(m)
		}))},
		"solve": {2, "solve M B: x such that M·x = B", binary(solve)},
	}
}

func cmdSet(in *Interpreter, args []string) error {
	name := args[0]
	for i := 0; i < len(name); i++ {
		if !isNameByte(name[i]) {
			return fmt.Errorf("invalid variable name %q: %w", name, ErrSyntax)
		}
	}

	v, err := parseValue(args[1], in.vars)
	if err != nil {
		return err
	}
	in.vars[name] = v
	return nil
}

func unary(f func(a Value) (Value, error)) func(*Interpreter, []string) error {
	return func(in *Interpreter, args []string) error {
		vs, err := in.args(args)
		if err != nil {
			return err
		}
		r, err := f(vs[0])
		if err != nil {
			return err
		}
		in.result(r)
		return nil
	}
}

func binary(f func(a, b Value) (Value, error)) func(*Interpreter, []string) error {
	return func(in *Interpreter, args []string) error {
		vs, err := in.args(args)
		if err != nil {
			return err
		}
		r, err := f(vs[0], vs[1])
		if err != nil {
			return err
		}
		in.result(r)
		return nil
	}
}

func vectors(f func(v, w vector) Value) func(*Interpreter, []string) error {
	return binary(func(a, b Value) (Value, error) {
		v, ok1 := a.(vector)
		w, ok2 := b.(vector)
		if !ok1 || !ok2 {
			return nil, typeError("vectors", a, b)
		}
		return f(v, w), nil
	})
}

func vectorFunc(f func(v vector) Value) func(Value) (Value, error) {
	return func(a Value) (Value, error) {
		v, ok := a.(vector)
		if !ok {
			return nil, typeError("a vector", a)
		}
		return f(v), nil
	}
}

func matrixFunc(f func(m matrix) (Value, error)) func(Value) (Value, error) {
	return func(a Value) (Value, error) {
		m, ok := a.(matrix)
		if !ok {
			return nil, typeError("a matrix", a)
		}
		return f(m)
	}
}

func typeError(want string, got ...Value) error {
	kinds := make([]string, len(got))
	for i, v := range got {
		kinds[i] = kind(v)
	}
	return fmt.Errorf("expected %v, got %v: %w", want, kinds, ErrType)
}

func add(a, b Value) (Value, error) {
	switch a := a.(type) {
	case float64:
		if b, ok := b.(float64); ok {
			return a + b, nil
		}
	case vector:
		if b, ok := b.(vector); ok {
			return a.Add(b), nil
		}
	case matrix:
		if b, ok := b.(matrix); ok {
			return a.Add(b), nil
		}
	}
	return nil, typeError("two values of the same kind", a, b)
}

func sub(a, b Value) (Value, error) {
	switch a := a.(type) {
	case float64:
		if b, ok := b.(float64); ok {
			return a - b, nil
		}
	case vector:
		if b, ok := b.(vector); ok {
			return a.Sub(b), nil
		}
	case matrix:
		if b, ok := b.(matrix); ok {
			return a.Sub(b), nil
		}
	}
	return nil, typeError("two values of the same kind", a, b)
}

func mul(a, b Value) (Value, error) {
	switch a := a.(type) {
	case float64:
		switch b := b.(type) {
		case float64:
			return a * b, nil
		case vector:
			return b.Mul(a), nil
		case matrix:
			return b.Scale(a), nil
		}
	case vector:
		switch b := b.(type) {
		case float64:
			return a.Mul(b), nil
		case matrix:
			return xyz.VecMul(a, b), nil
		}
	case matrix:
		switch b := b.(type) {
		case float64:
			return a.Scale(b), nil
		case vector:
			return a.MulVec(b), nil
		case matrix:
			return a.Mul(b), nil
		}
	}
	return nil, typeError("a product", a, b)
}

func solve(a, b Value) (Value, error) {
	m, ok := a.(matrix)
	if !ok {
		return nil, typeError("a matrix", a)
	}

	lu, err := xyz.NewLUDecomposition(m)
	if err != nil {
		return nil, err
	}
	switch b := b.(type) {
	case vector:
		return lu.Solve(b), nil
	case matrix:
		return lu.SolveMatrix(b), nil
	}
	return nil, typeError("a vector or matrix", b)
}
