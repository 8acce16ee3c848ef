// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

import (
	"github.com/db47h/netlist/internal/hdl"
	"github.com/pkg/errors"
)

// ports maps port names to cells, in declaration order.
type ports struct {
	names []string
	cells map[string]*cell
}

func (p *ports) add(name string, x *cell) {
	if p.cells == nil {
		p.cells = make(map[string]*cell)
	}
	p.names = append(p.names, name)
	p.cells[name] = x
}

func (p *ports) get(name string) *cell {
	return p.cells[name]
}

// A variable is an instance of a module.
type variable struct {
	name string // instance path
	mod  *module
	ins  ports
	outs ports
	ff   *latch // FLIPFLOP state
}

func newVariable(path string, m *module) *variable {
	return &variable{name: path, mod: m}
}

// cellName returns the name of port in v, used in error messages.
func (v *variable) cellName(port string) string {
	return v.name + "." + port
}

// in returns the input port with the given name. hdl.Wildcard selects the
// only input port of v.
func (v *variable) in(name string) (string, *cell, error) {
	return v.port(&v.ins, "input", name)
}

// out returns the output port with the given name. hdl.Wildcard selects the
// only output port of v.
func (v *variable) out(name string) (string, *cell, error) {
	return v.port(&v.outs, "output", name)
}

func (v *variable) port(p *ports, dir, name string) (string, *cell, error) {
	if name == hdl.Wildcard {
		if len(p.names) != 1 {
			return "", nil, errors.Wrapf(ErrAmbiguousPort, "%s (%s) has %d %s ports", v.name, v.mod.name, len(p.names), dir)
		}
		name = p.names[0]
	}
	x := p.get(name)
	if x == nil {
		return "", nil, errors.Wrapf(ErrUnknownPort, "%s (%s) has no %s port %q", v.name, v.mod.name, dir, name)
	}
	return name, x, nil
}
