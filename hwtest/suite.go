// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest

import (
	"io"
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/db47h/netlist"
	"github.com/db47h/netlist/hwlib"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A Suite is a program together with a sequence of test vectors. Suites are
// usually loaded from YAML files:
//
//	name: half adder
//	use: [HALFADDER]
//	program: |
//	  VAR a BITIN
//	  VAR b BITIN
//	  VAR ha HALFADDER
//	  ...
//	cases:
//	  - in: {a: true, b: true}
//	    out: {sum: false, car: true}
//
// Cases run in order against a single compiled program, so stateful modules
// carry their state from one case to the next.
type Suite struct {
	Name string `yaml:"name"`
	// Use lists hwlib modules whose definitions are prepended to Program.
	Use     []string `yaml:"use"`
	Program string   `yaml:"program"`
	// Strict rejects inputs that are not program inputs.
	Strict bool   `yaml:"strict"`
	Cases  []Case `yaml:"cases"`
}

// A Case sets inputs and checks outputs. Outputs not listed in Out are not
// checked. If Err is not empty, the run must fail with an error containing
// Err.
type Case struct {
	In  map[string]bool `yaml:"in"`
	Out map[string]bool `yaml:"out"`
	Err string          `yaml:"err"`
}

// LoadSuite decodes a YAML test suite. Unknown fields are rejected.
func LoadSuite(r io.Reader) (*Suite, error) {
	var s Suite
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Wrap(err, "decode suite")
	}
	return &s, nil
}

// LoadSuiteFile loads a YAML test suite from a file.
func LoadSuiteFile(name string) (*Suite, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := LoadSuite(f)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	if s.Name == "" {
		s.Name = name
	}
	return s, nil
}

// Compile compiles the suite program.
func (s *Suite) Compile(opts ...netlist.Option) (*netlist.Program, error) {
	src, err := hwlib.Source(s.Use...)
	if err != nil {
		return nil, err
	}
	if s.Strict {
		opts = append(opts, netlist.Strict())
	}
	return netlist.Compile(src+s.Program, opts...)
}

// Verify compiles the suite program and runs all cases. It returns the first
// failure.
func (s *Suite) Verify() error {
	p, err := s.Compile()
	if err != nil {
		return err
	}
	for i := range s.Cases {
		if err := s.Cases[i].run(p); err != nil {
			return errors.Wrapf(err, "case %d", i+1)
		}
	}
	return nil
}

func (c *Case) run(p *netlist.Program) error {
	out, err := p.Run(c.In)
	if c.Err != "" {
		if err == nil {
			return errors.Errorf("expected error %q", c.Err)
		}
		if !strings.Contains(err.Error(), c.Err) {
			return errors.Errorf("got error %q, expected %q", err, c.Err)
		}
		return nil
	}
	if err != nil {
		return err
	}
	names := make([]string, 0, len(c.Out))
	for n := range c.Out {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		got, ok := out[n]
		if !ok {
			return errors.Errorf("no output named %q", n)
		}
		if got != c.Out[n] {
			return errors.Errorf("%s = %v, expected %v", n, got, c.Out[n])
		}
	}
	return nil
}

// Check runs Verify as a test.
func (s *Suite) Check(t *testing.T) {
	t.Helper()
	if err := s.Verify(); err != nil {
		t.Errorf("%s: %v", s.Name, err)
	}
}
