// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

// HalfAdder is a half adder.
//
//	Inputs: a, b
//	Outputs: sum, car
//	Function: sum = lsb of a + b, car = msb of a + b
var HalfAdder = &Fragment{
	Name: "HALFADDER", Inputs: []string{"a", "b"}, Outputs: []string{"sum", "car"},
	Uses: []*Fragment{Xor, And},
	Body: `
	VAR a BITIN
	VAR b BITIN
	VAR xor XOR
	VAR and AND

	# sum
	VAR sum BITOUT
	WIRE a _ TO xor i0
	WIRE b _ TO xor i1
	WIRE xor _ TO sum _

	# carry
	VAR car BITOUT
	WIRE a _ TO and i0
	WIRE b _ TO and i1
	WIRE and _ TO car _`,
}

// FullAdder is a full adder.
//
//	Inputs: a, b, c
//	Outputs: sum, car
//	Function: sum = lsb of a + b + c, car = msb of a + b + c
var FullAdder = &Fragment{
	Name: "FULLADDER", Inputs: []string{"a", "b", "c"}, Outputs: []string{"sum", "car"},
	Uses: []*Fragment{HalfAdder, Or},
	Body: `
	VAR a BITIN
	VAR b BITIN
	VAR c BITIN
	VAR h0 HALFADDER
	WIRE a _ TO h0 a
	WIRE b _ TO h0 b
	VAR h1 HALFADDER
	WIRE h0 sum TO h1 a
	WIRE c _ TO h1 b
	VAR or OR
	WIRE h0 car TO or i0
	WIRE h1 car TO or i1
	VAR sum BITOUT
	WIRE h1 sum TO sum _
	VAR car BITOUT
	WIRE or _ TO car _`,
}

func init() {
	register(HalfAdder, FullAdder)
}
