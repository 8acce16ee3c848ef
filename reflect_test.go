// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist_test

import (
	"testing"

	"github.com/db47h/netlist"
	"github.com/db47h/netlist/hwlib"
)

func TestProgram_RunStruct(t *testing.T) {
	p := compile(t, hwlib.DMux.Harness())
	var v struct {
		In  bool    `hw:"in,i0"`
		Sel bool    `hw:"in"`
		O   [2]bool `hw:"out"`
		Foo int
	}
	for _, sel := range []bool{false, true} {
		v.In, v.Sel = true, sel
		if err := p.RunStruct(&v); err != nil {
			t.Fatal(err)
		}
		if v.O[0] == sel || v.O[1] != sel {
			t.Errorf("sel=%v: got %v", sel, v.O)
		}
	}
}

func TestProgram_RunStruct_errors(t *testing.T) {
	p := compile(t, hwlib.Not.Harness())
	td := []struct {
		name string
		v    interface{}
		err  string
	}{
		{"not_a_pointer", struct{}{}, "RunStruct: unsupported type struct {}"},
		{"nil", (*struct{})(nil), "RunStruct: unsupported type *struct {}"},
		{"bad_tag", &struct {
			A bool `hw:"inout"`
		}{}, `field A: unsupported tag "inout"`},
		{"bad_type", &struct {
			A int `hw:"in"`
		}{}, "field A: unsupported type int"},
		{"no_output", &struct {
			O bool `hw:"out"`
		}{}, `field O: no output named "o"`},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			err := p.RunStruct(d.v)
			if err == nil || err.Error() != d.err {
				t.Errorf("got error %v, expected %q", err, d.err)
			}
		})
	}

	ps := compile(t, hwlib.Not.Harness(), netlist.Strict())
	err := ps.RunStruct(&struct {
		X bool `hw:"in"`
	}{})
	if err == nil || err.Error() != "x: unknown input" {
		t.Errorf("got error %v", err)
	}
}
