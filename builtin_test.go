// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist_test

import (
	"testing"

	"github.com/db47h/netlist"
	"github.com/db47h/netlist/hwtest"
	"github.com/pkg/errors"
)

func Test_nand(t *testing.T) {
	p := compile(t, `
VAR a BITIN
VAR b BITIN
VAR n NAND
WIRE a _ TO n i0
WIRE b _ TO n i1
VAR o BITOUT
WIRE n o0 TO o i0
`)
	hwtest.TruthTable(t, p, [][]bool{{true, true, true, false}})
}

func Test_bitin_fanout(t *testing.T) {
	p := compile(t, `
VAR a BITIN
VAR o0 BITOUT
VAR o1 BITOUT
WIRE a _ TO o0 _
WIRE a o0 TO o1 i0
`)
	hwtest.TruthTable(t, p, [][]bool{{false, true}, {false, true}})
}

const flipFlop = `
VAR s BITIN
VAR r BITIN
VAR ff FLIPFLOP
WIRE s _ TO ff s
WIRE r _ TO ff r
VAR q BITOUT
WIRE ff q TO q _
`

func Test_flipflop(t *testing.T) {
	p := compile(t, flipFlop)
	steps := []struct {
		s, r, q bool
	}{
		{false, false, false},
		{true, false, true},
		{false, false, true},
		{false, true, false},
		{false, false, false},
		{true, false, true},
		{true, false, true},
	}
	for i, d := range steps {
		out := run(t, p, map[string]bool{"s": d.s, "r": d.r})
		if out["q"] != d.q {
			t.Fatalf("step %d: s=%v, r=%v: q = %v, expected %v", i, d.s, d.r, out["q"], d.q)
		}
	}
}

func Test_flipflop_contention(t *testing.T) {
	p := compile(t, flipFlop)
	run(t, p, map[string]bool{"s": true})
	_, err := p.Run(map[string]bool{"s": true, "r": true})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, netlist.ErrContention) {
		t.Errorf("got error %v", err)
	}
	if err.Error() != "output q: ff.q: flip-flop set and reset at the same time" {
		t.Errorf("got error %q", err)
	}
	// the state survives contention
	if out := run(t, p, map[string]bool{"s": false, "r": false}); !out["q"] {
		t.Error("q = false after contention, expected true")
	}
}

func Test_flipflop_instances(t *testing.T) {
	p := compile(t, `
MOD START LATCH
  VAR s BITIN
  VAR r BITIN
  VAR ff FLIPFLOP
  WIRE s _ TO ff s
  WIRE r _ TO ff r
  VAR q BITOUT
  WIRE ff _ TO q _
MOD END
VAR s0 BITIN
VAR s1 BITIN
VAR r BITIN
VAR l0 LATCH
VAR l1 LATCH
WIRE s0 _ TO l0 s
WIRE s1 _ TO l1 s
WIRE r _ TO l0 r
WIRE r _ TO l1 r
VAR q0 BITOUT
VAR q1 BITOUT
WIRE l0 _ TO q0 _
WIRE l1 _ TO q1 _
`)
	steps := []struct {
		in     map[string]bool
		q0, q1 bool
	}{
		{map[string]bool{"s0": true}, true, false},
		{map[string]bool{"s0": false}, true, false},
		{map[string]bool{"s1": true}, true, true},
		{map[string]bool{"s1": false, "r": true}, false, false},
	}
	for i, d := range steps {
		out := run(t, p, d.in)
		if out["q0"] != d.q0 || out["q1"] != d.q1 {
			t.Fatalf("step %d: got %v, expected q0=%v, q1=%v", i, out, d.q0, d.q1)
		}
	}
}
