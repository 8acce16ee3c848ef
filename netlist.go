// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

import (
	"log"
	"sort"

	"github.com/db47h/netlist/internal/hdl"
	"github.com/pkg/errors"
)

// Program is a compiled netlist program.
//
// The top-level statements of the source form an implicit module which is
// instantiated once. Its BITIN and BITOUT variables are the inputs and outputs
// of the program.
//
// A Program is not safe for concurrent use.
type Program struct {
	c      *Circuit
	top    *variable
	strict bool
	log    *log.Logger
}

// An Option configures a Program.
type Option func(p *Program)

// Strict makes Run reject input names that are not inputs of the program.
// By default, they are ignored.
func Strict() Option {
	return func(p *Program) { p.strict = true }
}

// Trace logs module instantiation and wiring to l during compilation.
func Trace(l *log.Logger) Option {
	return func(p *Program) { p.log = l }
}

// Compile parses and elaborates src.
//
// Syntax errors are returned as *hdl.SyntaxError (see the SyntaxError alias),
// elaboration errors as *Error.
func Compile(src string, opts ...Option) (*Program, error) {
	ast, err := hdl.Parse(src)
	if err != nil {
		return nil, err
	}
	p := &Program{c: newCircuit()}
	for _, o := range opts {
		o(p)
	}
	e := &elaborator{c: p.c, src: ast.Source, log: p.log}
	prog := &module{name: "PROGRAM", kind: kindComposite, body: ast.Statements, scope: builtins}
	p.top, err = e.elaborate(prog, "")
	if err != nil {
		return nil, err
	}
	return p, nil
}

// SyntaxError is the error type returned by Compile for malformed sources.
type SyntaxError = hdl.SyntaxError

// Inputs returns the input names of p in declaration order.
func (p *Program) Inputs() []string {
	return append([]string(nil), p.top.ins.names...)
}

// Outputs returns the output names of p in declaration order.
func (p *Program) Outputs() []string {
	return append([]string(nil), p.top.outs.names...)
}

// Circuit returns the signal graph of p.
func (p *Program) Circuit() *Circuit {
	return p.c
}

// Run sets the given inputs and returns the value of all outputs.
//
// Inputs that are not set keep their previous value (initially false). Stateful
// parts keep their state across calls. If an output cannot be evaluated, Run
// returns an error; state changes that happened before the failure are kept.
func (p *Program) Run(inputs map[string]bool) (map[string]bool, error) {
	if p.strict {
		if err := p.checkInputs(inputs); err != nil {
			return nil, err
		}
	}
	for name, v := range inputs {
		if x := p.top.ins.get(name); x != nil {
			x.set(v)
		}
	}
	out := make(map[string]bool, len(p.top.outs.names))
	for _, name := range p.top.outs.names {
		v, err := p.top.outs.get(name).get()
		if err != nil {
			return nil, errors.Wrap(err, "output "+name)
		}
		out[name] = v
	}
	return out, nil
}

func (p *Program) checkInputs(inputs map[string]bool) error {
	var unknown []string
	for name := range inputs {
		if p.top.ins.get(name) == nil {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return errors.Wrap(ErrUnknownInput, unknown[0])
}
