// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package netlist compiles and runs programs written in a small netlist
language.

A program declares instances of logic modules (variables) and wires their
ports together:

	# a NOT gate built from a NAND
	MOD START NOT
	  VAR in BITIN
	  VAR nand NAND
	  WIRE in _ TO nand i0
	  WIRE in _ TO nand i1
	  VAR out BITOUT
	  WIRE nand _ TO out _
	MOD END

	VAR a BITIN
	VAR not NOT
	VAR b BITOUT
	WIRE a _ TO not in
	WIRE not _ TO b _

The built-in modules are:

	NAND      inputs i0, i1; output o0 = !(i0 && i1)
	BITIN     output o0, a program or module input
	BITOUT    input i0, a program or module output
	FLIPFLOP  inputs s, r; output q, a set-reset latch

A module defined with MOD START/MOD END exposes its BITIN variables as input
ports and its BITOUT variables as output ports, named after the variables. The
port name "_" selects the only input or output port of a variable.

Module definitions can be nested. A module is visible to the statements that
follow its definition in the same body, including nested bodies, and shadows
modules of the same name defined in enclosing bodies.

Compiled programs are evaluated lazily: Run sets the program inputs and reads
its outputs, recomputing only the parts of the circuit whose inputs changed.
*/
package netlist
