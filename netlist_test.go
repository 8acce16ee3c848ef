// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist_test

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"testing/quick"

	"github.com/db47h/netlist"
	"github.com/db47h/netlist/hwlib"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func trace(t *testing.T, err error) {
	t.Helper()
	for ; err != nil; err = errors.Unwrap(err) {
		if err, ok := err.(interface {
			StackTrace() errors.StackTrace
		}); ok {
			for _, f := range err.StackTrace() {
				t.Logf("%+v ", f)
			}
			return
		}
	}
}

func compile(t *testing.T, src string, opts ...netlist.Option) *netlist.Program {
	t.Helper()
	p, err := netlist.Compile(src, opts...)
	if err != nil {
		trace(t, err)
		t.Fatal(err)
	}
	return p
}

func run(t *testing.T, p *netlist.Program, in map[string]bool) map[string]bool {
	t.Helper()
	out, err := p.Run(in)
	if err != nil {
		trace(t, err)
		t.Fatal(err)
	}
	return out
}

const halfAdder = `
# half adder built from NAND gates
MOD START XOR
  VAR a BITIN
  VAR b BITIN
  VAR nab NAND
  WIRE a _ TO nab i0
  WIRE b _ TO nab i1
  VAR w0 NAND
  WIRE a _ TO w0 i0
  WIRE nab _ TO w0 i1
  VAR w1 NAND
  WIRE b _ TO w1 i0
  WIRE nab _ TO w1 i1
  VAR x NAND
  WIRE w0 _ TO x i0
  WIRE w1 _ TO x i1
  VAR o BITOUT
  WIRE x _ TO o _
MOD END

MOD START AND
  VAR a BITIN
  VAR b BITIN
  VAR n NAND
  WIRE a _ TO n i0
  WIRE b _ TO n i1
  VAR not NAND
  WIRE n _ TO not i0
  WIRE n _ TO not i1
  VAR o BITOUT
  WIRE not _ TO o _
MOD END

VAR a BITIN
VAR b BITIN
VAR xor XOR
VAR and AND
WIRE a _ TO xor a
WIRE b _ TO xor b
WIRE a _ TO and a
WIRE b _ TO and b
VAR sum BITOUT
VAR car BITOUT
WIRE xor _ TO sum _
WIRE and _ TO car _
`

func TestHalfAdder(t *testing.T) {
	p := compile(t, halfAdder)
	if diff := cmp.Diff([]string{"a", "b"}, p.Inputs()); diff != "" {
		t.Errorf("inputs (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"sum", "car"}, p.Outputs()); diff != "" {
		t.Errorf("outputs (-want +got):\n%s", diff)
	}
	td := []struct {
		in, out map[string]bool
	}{
		{map[string]bool{"a": true, "b": true}, map[string]bool{"sum": false, "car": true}},
		{map[string]bool{"a": true, "b": false}, map[string]bool{"sum": true, "car": false}},
		{map[string]bool{"a": false}, map[string]bool{"sum": false, "car": false}},
		{map[string]bool{"b": true}, map[string]bool{"sum": true, "car": false}},
	}
	for _, d := range td {
		if diff := cmp.Diff(d.out, run(t, p, d.in)); diff != "" {
			t.Errorf("%v (-want +got):\n%s", d.in, diff)
		}
	}

	f := func(a, b bool) bool {
		out, err := p.Run(map[string]bool{"a": a, "b": b})
		if err != nil {
			return false
		}
		n := 0
		for _, v := range []bool{a, b} {
			if v {
				n++
			}
		}
		return out["sum"] == (n&1 != 0) && out["car"] == (n&2 != 0)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestProgram_Run_deterministic(t *testing.T) {
	p := compile(t, hwlib.FullAdder.Harness())
	f := func(a, b, c bool) bool {
		in := map[string]bool{"a": a, "b": b, "c": c}
		o1, err := p.Run(in)
		if err != nil {
			return false
		}
		o2, err := p.Run(in)
		if err != nil {
			return false
		}
		return cmp.Equal(o1, o2)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestProgram_Run_unknownInputs(t *testing.T) {
	const src = "VAR a BITIN\nVAR o BITOUT\nWIRE a _ TO o _\n"
	in := map[string]bool{"a": true, "z": true, "x": true}

	p := compile(t, src)
	if diff := cmp.Diff(map[string]bool{"o": true}, run(t, p, in)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	p = compile(t, src, netlist.Strict())
	_, err := p.Run(in)
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Error() != "x: unknown input" {
		t.Errorf("got error %q", err)
	}
	if errors.Cause(err) != netlist.ErrUnknownInput {
		t.Errorf("got cause %v, expected %v", errors.Cause(err), netlist.ErrUnknownInput)
	}
	// nothing was set
	if out := run(t, p, nil); out["o"] {
		t.Error("input set by a rejected run")
	}
}

func TestProgram_Run_noOutputs(t *testing.T) {
	p := compile(t, "VAR a BITIN\n")
	out := run(t, p, map[string]bool{"a": true})
	if len(out) != 0 {
		t.Errorf("got %v, expected no outputs", out)
	}
	p = compile(t, "")
	if len(p.Inputs()) != 0 || len(p.Outputs()) != 0 {
		t.Errorf("empty program has inputs %v and outputs %v", p.Inputs(), p.Outputs())
	}
}

// a destination driven by an input that is never set reads false.
func TestProgram_Run_defaults(t *testing.T) {
	p := compile(t, `
VAR a BITIN
VAR n NAND
WIRE a _ TO n i0
VAR o BITOUT
WIRE n _ TO o _
`)
	// n.i1 is not wired
	if out := run(t, p, map[string]bool{"a": true}); !out["o"] {
		t.Errorf("o = %v, expected true", out["o"])
	}
}

func TestProgram_cache(t *testing.T) {
	p := compile(t, `
VAR a BITIN
VAR b BITIN
VAR n NAND
WIRE a _ TO n i0
WIRE b _ TO n i1
VAR o BITOUT
WIRE n _ TO o _
`)
	c := p.Circuit()
	if c.Size() != 6 {
		t.Errorf("circuit size %d, expected 6", c.Size())
	}
	td := []struct {
		in    map[string]bool
		o     bool
		evals int
	}{
		{map[string]bool{"a": true, "b": true}, false, 4},
		{map[string]bool{"a": true, "b": true}, false, 4},
		{nil, false, 4},
		{map[string]bool{"a": false}, true, 7},
		// n does not change: o is not recomputed
		{map[string]bool{"b": false}, true, 9},
	}
	for i, d := range td {
		out := run(t, p, d.in)
		if out["o"] != d.o {
			t.Errorf("run %d: o = %v, expected %v", i, out["o"], d.o)
		}
		if c.Evals() != d.evals {
			t.Errorf("run %d: %d evaluations, expected %d", i, c.Evals(), d.evals)
		}
	}
}

func TestProgram_combinationalLoop(t *testing.T) {
	p := compile(t, `
VAR a BITIN
VAR n NAND
WIRE a _ TO n i0
WIRE n _ TO n i1
VAR o BITOUT
WIRE n _ TO o _
`)
	_, err := p.Run(map[string]bool{"a": true})
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Cause(err) != netlist.ErrCombinationalLoop {
		t.Errorf("got error %v", err)
	}
	if err.Error() != "output o: n.o0: combinational loop" {
		t.Errorf("got error %q", err)
	}
}

func TestTrace(t *testing.T) {
	var buf bytes.Buffer
	compile(t, `
MOD START BUF
  VAR i BITIN
  VAR o BITOUT
  WIRE i _ TO o _
MOD END
VAR a BITIN
VAR b BUF
WIRE a _ TO b _
`, netlist.Trace(log.New(&buf, "", 0)))
	want := []string{
		"a: new BITIN",
		"b: new BUF",
		"b/i: new BITIN",
		"b/o: new BITOUT",
		"b/i.o0 -> b/o.i0",
		"a.o0 -> b.i",
	}
	got := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
