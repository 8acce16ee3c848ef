// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing netlist programs.
package hwtest

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/db47h/netlist"
	"github.com/pkg/errors"
)

func randBool(r *rand.Rand) bool {
	return r.Int63()&(1<<62) != 0
}

func inputString(names []string, in map[string]bool) string {
	var b strings.Builder
	for _, n := range names {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n)
		b.WriteRune('=')
		if in[n] {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	}
	return b.String()
}

// TruthTable runs p with every combination of its inputs and compares the
// outputs with want. want[o][i] is the expected value of output o (in the
// order of p.Outputs()) for the input combination i, where the bits of i are
// assigned to p.Inputs() with the first input as the most significant bit.
func TruthTable(t *testing.T, p *netlist.Program, want [][]bool) {
	t.Helper()
	ins, outs := p.Inputs(), p.Outputs()
	if len(want) != len(outs) {
		t.Fatalf("program has %d outputs, expected %d", len(outs), len(want))
	}
	tot := 1 << uint(len(ins))
	in := make(map[string]bool, len(ins))
	for i := 0; i < tot; i++ {
		for bit := range ins {
			in[ins[len(ins)-bit-1]] = i&(1<<uint(bit)) != 0
		}
		got, err := p.Run(in)
		if err != nil {
			t.Fatalf("%s: %v", inputString(ins, in), err)
		}
		for o, name := range outs {
			if exp := want[o][i]; got[name] != exp {
				t.Errorf("%s => %s = %v, got %v", inputString(ins, in), name, exp, got[name])
			}
		}
	}
}

// ComparePrograms runs two programs with the same inputs and compares their
// outputs. Both programs must have the same input and output names.
func ComparePrograms(t *testing.T, p1, p2 *netlist.Program) {
	t.Helper()

	ins, outs := p1.Inputs(), p1.Outputs()
	if err := sameNames("inputs", ins, p2.Inputs()); err != nil {
		t.Fatal(err)
	}
	if err := sameNames("outputs", outs, p2.Outputs()); err != nil {
		t.Fatal(err)
	}

	in := make(map[string]bool, len(ins))
	check := func() {
		t.Helper()
		o1, err := p1.Run(in)
		if err != nil {
			t.Fatal(err)
		}
		o2, err := p2.Run(in)
		if err != nil {
			t.Fatal(err)
		}
		for _, n := range outs {
			if o1[n] != o2[n] {
				t.Fatalf("\nExpected %s => %s=%v\nGot %v", inputString(ins, in), n, o1[n], o2[n])
			}
		}
	}

	// try all 0
	check()

	// try all 1
	for _, n := range ins {
		in[n] = true
	}
	check()

	iter := len(ins)
	if iter > 12 {
		iter = 12
	}
	iter = 1 << uint(iter)

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	start := time.Now()
	for i := 0; i < iter; i++ {
		for _, n := range ins {
			in[n] = randBool(r)
		}
		check()
	}
	t.Logf("%d/%d cells, %d runs in %v", p1.Circuit().Size(), p2.Circuit().Size(), iter+2, time.Since(start))
}

func sameNames(what string, a, b []string) error {
	if len(a) != len(b) {
		return errors.Errorf("%s: %v != %v", what, a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			return errors.Errorf("%s: %q != %q", what, a[i], b[i])
		}
	}
	return nil
}
