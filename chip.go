// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

import (
	"log"

	"github.com/db47h/netlist/internal/hdl"
	"github.com/pkg/errors"
)

// scope is an immutable list of the modules visible at some point of a
// module body. Inner definitions shadow outer ones.
type scope struct {
	m      *module
	parent *scope
}

func (s *scope) with(m *module) *scope {
	return &scope{m: m, parent: s}
}

func (s *scope) lookup(name string) *module {
	for ; s != nil; s = s.parent {
		if s.m.name == name {
			return s.m
		}
	}
	return nil
}

// elaborator turns module bodies into variables wired in a circuit.
type elaborator struct {
	c   *Circuit
	src *hdl.Source
	log *log.Logger
}

func (e *elaborator) tracef(format string, args ...interface{}) {
	if e.log != nil {
		e.log.Printf(format, args...)
	}
}

func subPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "/" + name
}

// elaborate instantiates composite module m.
//
// Statements are processed in order: a variable must be declared before it
// is wired and a module must be defined before it is used. The returned
// variable exposes BITIN variables of the body as its inputs and BITOUT
// variables as its outputs.
func (e *elaborator) elaborate(m *module, path string) (*variable, error) {
	var (
		vars  = make(map[string]*variable)
		decl  []*variable
		local = make(map[string]bool)
		sc    = m.scope
	)

	for _, s := range m.body {
		var err error
		switch s := s.(type) {
		case *hdl.ModuleStatement:
			if local[s.Name] {
				err = ErrDuplicateModule
				break
			}
			local[s.Name] = true
			// the new module does not see itself.
			sc = sc.with(&module{name: s.Name, kind: kindComposite, body: s.Body, scope: sc})
		case *hdl.VarStatement:
			var v *variable
			v, err = e.declare(sc, vars, path, s)
			if err == nil {
				vars[s.Variable] = v
				decl = append(decl, v)
			}
		case *hdl.WireStatement:
			err = e.wire(vars, s)
		}
		if err != nil {
			return nil, e.errorAt(s, err)
		}
	}

	// boundary
	v := newVariable(path, m)
	for _, d := range decl {
		switch d.mod {
		case bitInModule:
			v.ins.add(subName(d.name), d.outs.get(pO0))
		case bitOutModule:
			v.outs.add(subName(d.name), d.ins.get(pI0))
		}
	}
	return v, nil
}

// subName returns the last element of an instance path.
func subName(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}

func (e *elaborator) declare(sc *scope, vars map[string]*variable, path string, s *hdl.VarStatement) (*variable, error) {
	if _, ok := vars[s.Variable]; ok {
		return nil, ErrDuplicateVariable
	}
	m := sc.lookup(s.Module)
	if m == nil {
		return nil, ErrUnknownModule
	}
	p := subPath(path, s.Variable)
	e.tracef("%s: new %s", p, m.name)
	v, err := m.instantiate(e, p)
	if err != nil {
		if pe, ok := err.(*Error); ok {
			pe.Err = errors.Wrapf(pe.Err, "in module %s", m.name)
			return nil, pe
		}
		return nil, err
	}
	return v, nil
}

// errorAt wraps err with the position of statement s. Errors that already
// carry a position are returned unchanged.
func (e *elaborator) errorAt(s hdl.Statement, err error) error {
	if pe, ok := err.(*Error); ok {
		return pe
	}
	line, col := e.src.Position(s.Pos())
	ctx := s.String()
	if m, ok := s.(*hdl.ModuleStatement); ok {
		ctx = "MOD START " + m.Name
	}
	return &Error{Line: line, Col: col, Err: errors.Wrap(err, ctx)}
}
