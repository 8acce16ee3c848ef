// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of reusable modules for netlist programs.
//
// Modules are distributed as source fragments. A fragment nests the
// definitions of the modules it depends on, so the source of any fragment can
// be pasted as-is into a program or into another module body.
package hwlib

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// A Fragment is the source of a module definition.
type Fragment struct {
	Name    string
	Inputs  []string
	Outputs []string
	// Uses lists the modules that Body depends on. Their definitions are
	// nested in the fragment source.
	Uses []*Fragment
	Body string
}

// Source returns the module definition of f.
func (f *Fragment) Source() string {
	var b strings.Builder
	f.write(&b, "")
	return b.String()
}

func (f *Fragment) write(b *strings.Builder, indent string) {
	b.WriteString(indent + "MOD START " + f.Name + "\n")
	for _, u := range f.Uses {
		u.write(b, indent+"  ")
	}
	for _, l := range strings.Split(strings.TrimSpace(f.Body), "\n") {
		b.WriteString(indent + "  " + strings.TrimSpace(l) + "\n")
	}
	b.WriteString(indent + "MOD END\n")
}

// Harness returns a program that defines f, instantiates it as "dut" and
// wires it to program inputs and outputs named after its ports.
func (f *Fragment) Harness() string {
	var b strings.Builder
	f.write(&b, "")
	b.WriteString("VAR dut " + f.Name + "\n")
	for _, in := range f.Inputs {
		b.WriteString("VAR " + in + " BITIN\n")
		b.WriteString("WIRE " + in + " _ TO dut " + in + "\n")
	}
	for _, out := range f.Outputs {
		b.WriteString("VAR " + out + " BITOUT\n")
		b.WriteString("WIRE dut " + out + " TO " + out + " _\n")
	}
	return b.String()
}

var lib = make(map[string]*Fragment)

func register(fs ...*Fragment) {
	for _, f := range fs {
		lib[f.Name] = f
	}
}

// Lookup returns the fragment with the given module name, or nil.
func Lookup(name string) *Fragment {
	return lib[name]
}

// Names returns the names of all library modules, sorted.
func Names() []string {
	names := make([]string, 0, len(lib))
	for n := range lib {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Source returns the concatenated definitions of the named modules, ready to
// be prepended to a program. Duplicate names are included once.
func Source(names ...string) (string, error) {
	var b strings.Builder
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		f := lib[n]
		if f == nil {
			return "", errors.Errorf("unknown library module %q", n)
		}
		f.write(&b, "")
	}
	return b.String(), nil
}
