// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdl

import "strings"

// Wildcard is the port name that selects the only input or output port of a
// variable.
const Wildcard = "_"

// A Statement is one of *VarStatement, *WireStatement or *ModuleStatement.
type Statement interface {
	// Pos returns the offset of the statement keyword in the source.
	Pos() int
	String() string
	statement()
}

// VarStatement declares a variable: VAR <Variable> <Module>
type VarStatement struct {
	Offset   int
	Variable string
	Module   string
}

// WireStatement connects an output port to an input port:
// WIRE <SrcVariable> <SrcPort> TO <DestVariable> <DestPort>
type WireStatement struct {
	Offset       int
	SrcVariable  string
	SrcPort      string
	DestVariable string
	DestPort     string
}

// ModuleStatement defines a composite module. Its body may contain other
// module definitions.
type ModuleStatement struct {
	Offset int
	Name   string
	Body   []Statement
}

func (s *VarStatement) Pos() int    { return s.Offset }
func (s *WireStatement) Pos() int   { return s.Offset }
func (s *ModuleStatement) Pos() int { return s.Offset }

func (*VarStatement) statement()    {}
func (*WireStatement) statement()   {}
func (*ModuleStatement) statement() {}

func (s *VarStatement) String() string {
	return "VAR " + s.Variable + " " + s.Module
}

func (s *WireStatement) String() string {
	return "WIRE " + s.SrcVariable + " " + s.SrcPort + " TO " + s.DestVariable + " " + s.DestPort
}

func (s *ModuleStatement) String() string {
	var b strings.Builder
	b.WriteString("MOD START ")
	b.WriteString(s.Name)
	b.WriteRune('\n')
	for _, st := range s.Body {
		for _, l := range strings.Split(st.String(), "\n") {
			b.WriteString("  ")
			b.WriteString(l)
			b.WriteRune('\n')
		}
	}
	b.WriteString("MOD END")
	return b.String()
}

// Program is a parsed source file.
type Program struct {
	Statements []Statement
	Source     *Source
}
