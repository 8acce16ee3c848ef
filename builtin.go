// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

import (
	"github.com/db47h/netlist/internal/hdl"
	"github.com/pkg/errors"
)

// Built-in module names.
const (
	Nand     = "NAND"
	BitIn    = "BITIN"
	BitOut   = "BITOUT"
	FlipFlop = "FLIPFLOP"
)

// common port names
const (
	pI0 = "i0"
	pI1 = "i1"
	pO0 = "o0"
	pS  = "s"
	pR  = "r"
	pQ  = "q"
)

type kind int

const (
	kindNand kind = iota
	kindBitIn
	kindBitOut
	kindFlipFlop
	kindComposite
)

// A module is a blueprint for variables: one of the built-in primitives or a
// composite module defined by a MOD statement.
type module struct {
	name  string
	kind  kind
	body  []hdl.Statement // composite only
	scope *scope          // modules visible from the body
}

var (
	nandModule     = &module{name: Nand, kind: kindNand}
	bitInModule    = &module{name: BitIn, kind: kindBitIn}
	bitOutModule   = &module{name: BitOut, kind: kindBitOut}
	flipFlopModule = &module{name: FlipFlop, kind: kindFlipFlop}
)

// builtins is the root scope.
var builtins = (*scope)(nil).
	with(nandModule).
	with(bitInModule).
	with(bitOutModule).
	with(flipFlopModule)

// instantiate creates a new variable from m.
func (m *module) instantiate(e *elaborator, path string) (*variable, error) {
	v := newVariable(path, m)
	c := e.c
	switch m.kind {
	case kindNand:
		i0, i1 := c.newSource(v.cellName(pI0)), c.newSource(v.cellName(pI1))
		v.ins.add(pI0, i0)
		v.ins.add(pI1, i1)
		v.outs.add(pO0, c.newDerived(v.cellName(pO0), nand, i0, i1))
	case kindBitIn:
		v.outs.add(pO0, c.newSource(v.cellName(pO0)))
	case kindBitOut:
		v.ins.add(pI0, c.newSource(v.cellName(pI0)))
	case kindFlipFlop:
		s, r := c.newSource(v.cellName(pS)), c.newSource(v.cellName(pR))
		v.ff = new(latch)
		v.ins.add(pS, s)
		v.ins.add(pR, r)
		name := v.cellName(pQ)
		v.outs.add(pQ, c.newDerived(name, func(in []bool) (bool, error) {
			q, err := v.ff.next(in[0], in[1])
			if err != nil {
				return q, errors.Wrap(err, name)
			}
			return q, nil
		}, s, r))
	case kindComposite:
		return e.elaborate(m, path)
	default:
		panic("unknown module kind")
	}
	return v, nil
}

func nand(in []bool) (bool, error) { return !(in[0] && in[1]), nil }

// latch is the state of a set-reset flip-flop.
type latch struct {
	q bool
}

// next applies the set and reset signals and returns the new state.
func (l *latch) next(s, r bool) (bool, error) {
	switch {
	case s && r:
		return l.q, ErrContention
	case s:
		l.q = true
	case r:
		l.q = false
	}
	return l.q, nil
}
