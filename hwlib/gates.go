// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

// common port names
var (
	in1  = []string{"i0"}
	in2  = []string{"i0", "i1"}
	out1 = []string{"o0"}
)

// Not is a NOT gate.
//
//	Inputs: i0
//	Outputs: o0
//	Function: o0 = !i0
var Not = &Fragment{
	Name: "NOT", Inputs: in1, Outputs: out1,
	Body: `
	VAR i0 BITIN
	VAR nand NAND
	WIRE i0 _ TO nand i0
	WIRE i0 _ TO nand i1
	VAR o0 BITOUT
	WIRE nand _ TO o0 _`,
}

// And is an AND gate.
//
//	Inputs: i0, i1
//	Outputs: o0
//	Function: o0 = i0 && i1
var And = &Fragment{
	Name: "AND", Inputs: in2, Outputs: out1,
	Uses: []*Fragment{Not},
	Body: `
	VAR i0 BITIN
	VAR i1 BITIN
	VAR nand NAND
	WIRE i0 _ TO nand i0
	WIRE i1 _ TO nand i1
	VAR not NOT
	WIRE nand _ TO not _
	VAR o0 BITOUT
	WIRE not _ TO o0 _`,
}

// And3 is a 3 input AND gate.
//
//	Inputs: i0, i1, i2
//	Outputs: o0
//	Function: o0 = i0 && i1 && i2
var And3 = &Fragment{
	Name: "AND3", Inputs: []string{"i0", "i1", "i2"}, Outputs: out1,
	Uses: []*Fragment{And},
	Body: `
	VAR i0 BITIN
	VAR i1 BITIN
	VAR i2 BITIN
	VAR a0 AND
	WIRE i0 _ TO a0 i0
	WIRE i1 _ TO a0 i1
	VAR a1 AND
	WIRE a0 _ TO a1 i0
	WIRE i2 _ TO a1 i1
	VAR o0 BITOUT
	WIRE a1 _ TO o0 _`,
}

// Or is an OR gate.
//
//	Inputs: i0, i1
//	Outputs: o0
//	Function: o0 = i0 || i1
var Or = &Fragment{
	Name: "OR", Inputs: in2, Outputs: out1,
	Uses: []*Fragment{Not},
	Body: `
	VAR i0 BITIN
	VAR n0 NOT
	WIRE i0 _ TO n0 _
	VAR i1 BITIN
	VAR n1 NOT
	WIRE i1 _ TO n1 _
	VAR nand NAND
	WIRE n0 _ TO nand i0
	WIRE n1 _ TO nand i1
	VAR o0 BITOUT
	WIRE nand _ TO o0 _`,
}

// Nor is a NOR gate.
//
//	Inputs: i0, i1
//	Outputs: o0
//	Function: o0 = !(i0 || i1)
var Nor = &Fragment{
	Name: "NOR", Inputs: in2, Outputs: out1,
	Uses: []*Fragment{Not, Or},
	Body: `
	VAR i0 BITIN
	VAR i1 BITIN
	VAR or OR
	WIRE i0 _ TO or i0
	WIRE i1 _ TO or i1
	VAR not NOT
	WIRE or _ TO not _
	VAR o0 BITOUT
	WIRE not _ TO o0 _`,
}

// Xor is a XOR gate.
//
//	Inputs: i0, i1
//	Outputs: o0
//	Function: o0 = i0 != i1
var Xor = &Fragment{
	Name: "XOR", Inputs: in2, Outputs: out1,
	Uses: []*Fragment{Or, And},
	Body: `
	VAR i0 BITIN
	VAR i1 BITIN
	VAR nand NAND
	WIRE i0 _ TO nand i0
	WIRE i1 _ TO nand i1
	VAR or OR
	WIRE i0 _ TO or i0
	WIRE i1 _ TO or i1
	VAR and AND
	WIRE nand _ TO and i0
	WIRE or _ TO and i1
	VAR o0 BITOUT
	WIRE and _ TO o0 _`,
}

// Xnor is a XNOR gate.
//
//	Inputs: i0, i1
//	Outputs: o0
//	Function: o0 = i0 == i1
var Xnor = &Fragment{
	Name: "XNOR", Inputs: in2, Outputs: out1,
	Uses: []*Fragment{Xor, Not},
	Body: `
	VAR i0 BITIN
	VAR i1 BITIN
	VAR xor XOR
	WIRE i0 _ TO xor i0
	WIRE i1 _ TO xor i1
	VAR not NOT
	WIRE xor _ TO not _
	VAR o0 BITOUT
	WIRE not _ TO o0 _`,
}

func init() {
	register(Not, And, And3, Or, Nor, Xor, Xnor)
}
