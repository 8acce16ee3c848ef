// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hdl implements the grammar of the netlist language.
//
//	# a half adder
//	MOD START AND
//	  VAR i0 BITIN
//	  ...
//	MOD END
//	VAR a BITIN
//	VAR sum BITOUT
//	WIRE a _ TO sum _
package hdl

import (
	"strconv"
	"strings"

	"github.com/db47h/netlist/internal/pc"
)

type grammar struct {
	statements pc.Parser[[]Statement]
	modHeader  pc.Parser[[]any]
	program    pc.Parser[[]Statement]
}

var g = newGrammar()

func discard[T any](T) any { return nil }

func runes(rs []rune) string { return string(rs) }

// whitespaces matches spaces and tabs. At least one is required if allowEmpty
// is false.
func whitespaces(allowEmpty bool) pc.Parser[any] {
	min := 1
	if allowEmpty {
		min = 0
	}
	return pc.Map(pc.Rep(pc.OneOf(" \t"), min, pc.Unbounded), discard[[]rune])
}

func newGrammar() *grammar {
	var (
		digit     = pc.OneOf("0123456789")
		lower     = pc.OneOf("abcdefghijklmnopqrstuvwxyz")
		upper     = pc.OneOf("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
		ident     = pc.Rep(pc.Or(digit, lower, upper, pc.Char('_')), 1, pc.Unbounded)
		symbol    = pc.Any(pc.Sub(pc.Map(ident, runes), digit))
		linebreak = pc.Map(pc.Or(pc.Str("\r\n"), pc.Str("\n")), discard[string])
		ws        = whitespaces(true)
		ws1       = whitespaces(false)
		offset    = pc.Any(pc.Offset)
		kw        = func(s string) pc.Parser[any] { return pc.Any(pc.Str(s)) }
		module    pc.Ref[Statement]
	)

	comment := pc.Map(
		pc.Seq(ws, kw("#"), pc.Any(pc.Rep(pc.Sub(pc.AnyChar, linebreak), 0, pc.Unbounded)), linebreak),
		func([]any) Statement { return nil })

	variable := pc.Map(
		pc.Seq(ws, offset, kw("VAR"), ws1, symbol, ws1, symbol, ws, linebreak),
		func(v []any) Statement {
			return &VarStatement{Offset: v[1].(int), Variable: v[4].(string), Module: v[6].(string)}
		})

	wire := pc.Map(
		pc.Seq(ws, offset, kw("WIRE"), ws1, symbol, ws1, symbol, ws1, kw("TO"), ws1, symbol, ws1, symbol, ws, linebreak),
		func(v []any) Statement {
			return &WireStatement{
				Offset:       v[1].(int),
				SrcVariable:  v[4].(string),
				SrcPort:      v[6].(string),
				DestVariable: v[10].(string),
				DestPort:     v[12].(string),
			}
		})

	emptyLine := pc.Map(pc.Seq(ws, linebreak), func([]any) Statement { return nil })

	statement := pc.Or(comment, variable, wire, module.Parser(), emptyLine)

	// drop comments and empty lines
	statements := pc.Map(pc.Rep(statement, 0, pc.Unbounded), func(ss []Statement) []Statement {
		out := make([]Statement, 0, len(ss))
		for _, s := range ss {
			if s != nil {
				out = append(out, s)
			}
		}
		return out
	})

	header := pc.Seq(ws, offset, kw("MOD"), ws1, kw("START"), ws1, symbol, ws, linebreak)
	footer := pc.Seq(ws, kw("MOD"), ws1, kw("END"), ws, linebreak)

	module.Init(pc.Map(
		pc.Seq(pc.Any(header), pc.Any(statements), pc.Any(footer)),
		func(v []any) Statement {
			h := v[0].([]any)
			return &ModuleStatement{Offset: h[1].(int), Name: h[6].(string), Body: v[1].([]Statement)}
		}))

	program := pc.Map(
		pc.Seq(pc.Any(statements), ws, pc.Any(pc.EOF)),
		func(v []any) []Statement { return v[0].([]Statement) })

	return &grammar{
		statements: statements,
		modHeader:  header,
		program:    program,
	}
}

// SyntaxError reports the position of the first statement that could not be
// parsed.
type SyntaxError struct {
	Offset int // offset in runes
	Line   int
	Col    int
	Rest   string // unparsed input
}

func (e *SyntaxError) Error() string {
	near := e.Rest
	if i := strings.IndexAny(near, "\r\n"); i >= 0 {
		near = near[:i]
	}
	pos := "line " + strconv.Itoa(e.Line) + ":" + strconv.Itoa(e.Col) + ": "
	if strings.TrimSpace(e.Rest) == "" {
		return pos + "syntax error: unexpected end of input"
	}
	return pos + "syntax error near " + strconv.Quote(near)
}

// Parse parses src into a Program.
//
// A line break is appended to src so that the last statement does not need
// to be terminated.
func Parse(src string) (*Program, error) {
	in := pc.NewInput(src + "\n")
	r := g.program(in)
	s := NewSource(src)
	if !r.OK {
		return nil, s.syntaxError(g.failure(in).Offset())
	}
	return &Program{Statements: r.Value, Source: s}, nil
}

// failure returns the position of the deepest statement that could not be
// parsed, descending into module definitions.
func (g *grammar) failure(in pc.Input) pc.Input {
	rest := g.statements(in).Rest
	if h := g.modHeader(rest); h.OK {
		return g.failure(h.Rest)
	}
	// the failing statement starts after leading blanks.
	return whitespaces(true)(rest).Rest
}
