// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

import (
	"github.com/pkg/errors"
)

// Circuit is the signal graph of a compiled program.
//
// Cells are either source cells, set from outside, or derived cells computed
// from other cells. Derived cells are evaluated on demand and cached: every
// write to a source cell bumps the circuit revision, and a derived cell
// recomputes only if one of its dependencies changed since it was last
// verified.
type Circuit struct {
	rev   uint64 // bumped on every source write
	cells int
	evals int
}

func newCircuit() *Circuit {
	// start at revision 1 so that cells verified at 0 are never up to date.
	return &Circuit{rev: 1}
}

// Size returns the cell count in the circuit.
func (c *Circuit) Size() int { return c.cells }

// Evals returns how many times derived cells have been recomputed.
func (c *Circuit) Evals() int { return c.evals }

// newSource allocates a source cell with the value false.
func (c *Circuit) newSource(name string) *cell {
	c.cells++
	return &cell{c: c, name: name}
}

// newDerived allocates a cell computed by fn from the values of deps.
func (c *Circuit) newDerived(name string, fn cellFn, deps ...*cell) *cell {
	x := c.newSource(name)
	x.fn, x.deps, x.in = fn, deps, make([]bool, len(deps))
	return x
}

// A cellFn computes the value of a derived cell from the values of its
// dependencies, in order.
type cellFn func(in []bool) (bool, error)

// alias forwards the value of a single dependency.
func alias(in []bool) (bool, error) { return in[0], nil }

type cell struct {
	c    *Circuit
	name string
	fn   cellFn
	deps []*cell
	in   []bool // dependency values buffer

	value    bool
	valid    bool   // value has been computed at least once without error
	busy     bool   // evaluation in progress
	changed  uint64 // revision at which value last changed
	verified uint64 // revision at which value was last checked
}

func (x *cell) isSource() bool { return x.fn == nil }

// bind turns x into a derived cell. A cell can only be bound once.
func (x *cell) bind(fn cellFn, deps ...*cell) error {
	if !x.isSource() {
		return errors.Wrap(ErrAlreadyWired, x.name)
	}
	x.fn, x.deps, x.in = fn, deps, make([]bool, len(deps))
	x.valid = false
	return nil
}

// set sets the value of source cell x. Effects on derived cells become visible
// on their next read.
func (x *cell) set(v bool) {
	if !x.isSource() {
		panic("set called on derived cell " + x.name)
	}
	x.c.rev++
	if v != x.value {
		x.value = v
		x.changed = x.c.rev
	}
}

// get returns the current value of x, recomputing it if any source it depends
// on changed since the last read.
func (x *cell) get() (bool, error) {
	if x.isSource() {
		return x.value, nil
	}
	rev := x.c.rev
	if x.valid && x.verified == rev {
		return x.value, nil
	}
	if x.busy {
		return false, errors.Wrap(ErrCombinationalLoop, x.name)
	}
	x.busy = true
	defer func() { x.busy = false }()

	stale := !x.valid
	for i, d := range x.deps {
		v, err := d.get()
		if err != nil {
			return false, err
		}
		x.in[i] = v
		if d.changed > x.verified {
			stale = true
		}
	}
	if stale {
		x.c.evals++
		v, err := x.fn(x.in)
		if err != nil {
			x.valid = false
			return false, err
		}
		if !x.valid || v != x.value {
			x.changed = rev
		}
		x.value = v
		x.valid = true
	}
	x.verified = rev
	return x.value, nil
}
