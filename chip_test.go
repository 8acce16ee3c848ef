// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist_test

import (
	"testing"

	"github.com/db47h/netlist"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func TestCompile_errors(t *testing.T) {
	data := []struct {
		name  string
		src   string
		err   string
		cause error
		line  int
		col   int
	}{
		{"double_wire", `
VAR a BITIN
VAR b BITIN
VAR o BITOUT
WIRE a _ TO o _
WIRE b _ TO o _`,
			"line 6:1: WIRE b _ TO o _: o.i0: destination port already wired", netlist.ErrAlreadyWired, 6, 1},
		{"unknown_module", "VAR x FOO",
			"line 1:1: VAR x FOO: unknown module", netlist.ErrUnknownModule, 1, 1},
		{"duplicate_var", "VAR a BITIN\n  VAR a BITOUT",
			"line 2:3: VAR a BITOUT: variable already declared", netlist.ErrDuplicateVariable, 2, 3},
		{"unknown_var", "VAR b BITOUT\nWIRE a _ TO b _",
			"line 2:1: WIRE a _ TO b _: a: variable not found", netlist.ErrUnknownVariable, 2, 1},
		{"unknown_dest", "VAR a BITIN\nWIRE a _ TO b _",
			"line 2:1: WIRE a _ TO b _: b: variable not found", netlist.ErrUnknownVariable, 2, 1},
		{"unknown_port", "VAR n NAND\nVAR o BITOUT\nWIRE n o1 TO o _",
			`line 3:1: WIRE n o1 TO o _: n (NAND) has no output port "o1": unknown port`, netlist.ErrUnknownPort, 3, 1},
		{"ambiguous_in", "VAR n NAND\nVAR a BITIN\nWIRE a _ TO n _",
			"line 3:1: WIRE a _ TO n _: n (NAND) has 2 input ports: ambiguous port", netlist.ErrAmbiguousPort, 3, 1},
		{"no_out", "VAR o BITOUT\nVAR n NAND\nWIRE o _ TO n i0",
			"line 3:1: WIRE o _ TO n i0: o (BITOUT) has 0 output ports: ambiguous port", netlist.ErrAmbiguousPort, 3, 1},
		{"in_as_out", "VAR a BITIN\nVAR o BITOUT\nWIRE o i0 TO a o0",
			`line 3:1: WIRE o i0 TO a o0: o (BITOUT) has no output port "i0": unknown port`, netlist.ErrUnknownPort, 3, 1},
		{"nested", `MOD START AND
  VAR i0 BITIN
  VAR x FOO
MOD END
VAR a AND`,
			"line 3:3: in module AND: VAR x FOO: unknown module", netlist.ErrUnknownModule, 3, 3},
		{"nested_twice", `MOD START A
  MOD START B
    VAR n NAND
    WIRE n _ TO n _
  MOD END
  VAR b B
MOD END
VAR a A`,
			"line 4:5: in module A: in module B: WIRE n _ TO n _: a/b/n (NAND) has 2 input ports: ambiguous port", netlist.ErrAmbiguousPort, 4, 5},
		{"duplicate_module", "MOD START A\nMOD END\nMOD START A\nMOD END",
			"line 3:1: MOD START A: module already defined", netlist.ErrDuplicateModule, 3, 1},
		{"self_reference", "MOD START A\n  VAR x A\nMOD END\nVAR a A",
			"line 2:3: in module A: VAR x A: unknown module", netlist.ErrUnknownModule, 2, 3},
		{"use_before_def", "VAR a A\nMOD START A\nMOD END",
			"line 1:1: VAR a A: unknown module", netlist.ErrUnknownModule, 1, 1},
		{"inner_not_visible", "MOD START A\n  MOD START B\n  MOD END\nMOD END\nVAR b B",
			"line 5:1: VAR b B: unknown module", netlist.ErrUnknownModule, 5, 1},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			_, err := netlist.Compile(d.src)
			if err == nil {
				t.Fatalf("expected error %q", d.err)
			}
			if err.Error() != d.err {
				t.Errorf("got error %q, expected %q", err, d.err)
			}
			if c := errors.Cause(err); c != d.cause {
				t.Errorf("got cause %v, expected %v", c, d.cause)
			}
			var pe *netlist.Error
			if !errors.As(err, &pe) {
				t.Fatalf("%T is not a *netlist.Error", err)
			}
			if pe.Line != d.line || pe.Col != d.col {
				t.Errorf("got position %d:%d, expected %d:%d", pe.Line, pe.Col, d.line, d.col)
			}
		})
	}
}

func TestCompile_syntaxError(t *testing.T) {
	_, err := netlist.Compile("VAR a BITIN\nMOD START A\n  VAR b\nMOD END\n")
	se, ok := err.(*netlist.SyntaxError)
	if !ok {
		t.Fatalf("got error %v (%T), expected a syntax error", err, err)
	}
	if se.Line != 3 || se.Col != 3 {
		t.Errorf("got position %d:%d, expected 3:3", se.Line, se.Col)
	}
}

// unused module bodies are only checked when instantiated.
func TestCompile_unusedModule(t *testing.T) {
	compile(t, "MOD START A\n  VAR x FOO\nMOD END\n")
}

func TestCompile_scoping(t *testing.T) {
	p := compile(t, `
MOD START G
  VAR i BITIN
  VAR o BITOUT
  WIRE i _ TO o _
MOD END

MOD START Y
  # shadows the outer G
  MOD START G
    VAR i BITIN
    VAR n NAND
    WIRE i _ TO n i0
    WIRE i _ TO n i1
    VAR o BITOUT
    WIRE n _ TO o _
  MOD END
  VAR i BITIN
  VAR g G
  WIRE i _ TO g i
  VAR o BITOUT
  WIRE g o TO o _
MOD END

MOD START Z
  # outer modules are visible
  VAR i BITIN
  VAR y Y
  WIRE i _ TO y _
  VAR o BITOUT
  WIRE y _ TO o _
MOD END

VAR a BITIN
VAR y Y
VAR g G
VAR z Z
WIRE a _ TO y i
WIRE a _ TO g i
WIRE a _ TO z i
VAR inv BITOUT
VAR buf BITOUT
VAR inv2 BITOUT
WIRE y o TO inv _
WIRE g o TO buf _
WIRE z o TO inv2 _
`)
	for _, a := range []bool{false, true} {
		want := map[string]bool{"inv": !a, "buf": a, "inv2": !a}
		if diff := cmp.Diff(want, run(t, p, map[string]bool{"a": a})); diff != "" {
			t.Errorf("a=%v (-want +got):\n%s", a, diff)
		}
	}
}

func TestCompile_sameNameInSiblings(t *testing.T) {
	compile(t, `
MOD START A
  MOD START X
  MOD END
MOD END
MOD START B
  MOD START X
  MOD END
  VAR x X
MOD END
VAR a A
VAR b B
`)
}

// chained instances of one module keep separate state.
func TestCompile_instances(t *testing.T) {
	p := compile(t, `
MOD START NOT
  VAR i BITIN
  VAR n NAND
  WIRE i _ TO n i0
  WIRE i _ TO n i1
  VAR o BITOUT
  WIRE n _ TO o _
MOD END
VAR a BITIN
VAR na NOT
VAR nb NOT
WIRE a _ TO na _
WIRE na _ TO nb _
VAR x BITOUT
VAR y BITOUT
WIRE na _ TO x _
WIRE nb _ TO y _
`)
	for _, a := range []bool{true, false, true} {
		want := map[string]bool{"x": !a, "y": a}
		if diff := cmp.Diff(want, run(t, p, map[string]bool{"a": a})); diff != "" {
			t.Errorf("a=%v (-want +got):\n%s", a, diff)
		}
	}
}
