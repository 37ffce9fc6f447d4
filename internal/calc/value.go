package calc

import (
	"fmt"
	"strconv"
	"strings"

	"deedles.dev/xyz"
)

// A Value is a float64, an xyz.Vector[float64] or an
// xyz.Matrix[float64].
type Value any

type (
	vector = xyz.Vector[float64]
	matrix = xyz.Matrix[float64]
)

func kind(v Value) string {
	switch v := v.(type) {
	case float64:
		return "number"
	case vector:
		return fmt.Sprintf("%vD vector", len(v))
	case matrix:
		return fmt.Sprintf("%vx%v matrix", v.Rows(), v.Cols())
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Format returns the textual form of v, which parses back to v.
func Format(v Value) string {
	switch v := v.(type) {
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case vector:
		var buf strings.Builder
		buf.WriteByte('[')
		for i, c := range v {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		}
		buf.WriteByte(']')
		return buf.String()
	case matrix:
		var buf strings.Builder
		buf.WriteByte('[')
		for r := 0; r < v.Rows(); r++ {
			if r > 0 {
				buf.WriteByte(';')
			}
			for c := 0; c < v.Cols(); c++ {
				if c > 0 {
					buf.WriteByte(',')
				}
				buf.WriteString(strconv.FormatFloat(v.At(r, c), 'g', -1, 64))
			}
		}
		buf.WriteByte(']')
		return buf.String()
	default:
		return fmt.Sprint(v)
	}
}

// parser parses a single value token, such as "2.5", "[1,2,3]",
// "[1,2;3,4]" or "$name".
type parser struct {
	src  string
	pos  int
	vars map[string]Value
}

type parseError struct {
	err error
}

func (p *parser) throw(err error) {
	if err != nil {
		panic(parseError{err: err})
	}
}

func (p *parser) catch(err *error) {
	switch r := recover().(type) {
	case parseError:
		*err = fmt.Errorf("parse %q: %w", p.src, r.err)
	case nil:
	default:
		panic(r)
	}
}

func parseValue(src string, vars map[string]Value) (v Value, err error) {
	p := parser{src: src, vars: vars}
	defer p.catch(&err)

	v = p.value()
	if p.pos < len(p.src) {
		p.throw(fmt.Errorf("unexpected %q at %v: %w", p.src[p.pos:], p.pos, ErrSyntax))
	}
	return v, nil
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) expect(c byte) {
	if p.peek() != c {
		p.throw(fmt.Errorf("expected %q at %v: %w", c, p.pos, ErrSyntax))
	}
	p.pos++
}

func (p *parser) value() Value {
	switch p.peek() {
	case '$':
		return p.variable()
	case '[':
		return p.array()
	default:
		return p.number()
	}
}

func (p *parser) variable() Value {
	p.expect('$')
	start := p.pos
	for p.pos < len(p.src) && isNameByte(p.src[p.pos]) {
		p.pos++
	}
	name := p.src[start:p.pos]
	if name == "" {
		p.throw(fmt.Errorf("empty variable name: %w", ErrSyntax))
	}

	v, ok := p.vars[name]
	if !ok {
		p.throw(fmt.Errorf("%q: %w", name, ErrUndefined))
	}
	return v
}

func (p *parser) number() float64 {
	start := p.pos
	for p.pos < len(p.src) && strings.IndexByte(",;]", p.src[p.pos]) < 0 {
		p.pos++
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(p.src[start:p.pos]), 64)
	if err != nil {
		p.throw(fmt.Errorf("invalid number %q: %w", p.src[start:p.pos], ErrSyntax))
	}
	return f
}

// array parses a vector or, if it has more than one row, a matrix.
func (p *parser) array() Value {
	p.expect('[')

	var rows [][]float64
	row := []float64{}
	for {
		row = append(row, p.number())
		switch p.peek() {
		case ',':
			p.pos++
		case ';':
			p.pos++
			rows = append(rows, row)
			row = []float64{}
		case ']':
			p.pos++
			rows = append(rows, row)
			if len(rows) == 1 {
				return xyz.Vec(rows[0]...)
			}
			return p.matrix(rows)
		default:
			p.throw(fmt.Errorf("unterminated array: %w", ErrSyntax))
		}
	}
}

func (p *parser) matrix(rows [][]float64) matrix {
	vs := make([]vector, len(rows))
	for i, row := range rows {
		vs[i] = row
	}
	m, err := xyz.MatrixFromRows(vs...)
	p.throw(err)
	return m
}

func isNameByte(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}
