// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

// Mux is a multiplexer.
//
//	Inputs: i0, i1, sel
//	Outputs: o0
//	Function: if sel { o0 = i1 } else { o0 = i0 }
var Mux = &Fragment{
	Name: "MUX", Inputs: []string{"i0", "i1", "sel"}, Outputs: out1,
	Uses: []*Fragment{Not, And, Or},
	Body: `
	VAR i0 BITIN
	VAR i1 BITIN
	VAR sel BITIN
	VAR nsel NOT
	WIRE sel _ TO nsel _
	VAR a0 AND
	WIRE i0 _ TO a0 i0
	WIRE nsel _ TO a0 i1
	VAR a1 AND
	WIRE i1 _ TO a1 i0
	WIRE sel _ TO a1 i1
	VAR or OR
	WIRE a0 _ TO or i0
	WIRE a1 _ TO or i1
	VAR o0 BITOUT
	WIRE or _ TO o0 _`,
}

// DMux is a demultiplexer.
//
//	Inputs: i0, sel
//	Outputs: o0, o1
//	Function: if sel { o0, o1 = false, i0 } else { o0, o1 = i0, false }
var DMux = &Fragment{
	Name: "DMUX", Inputs: []string{"i0", "sel"}, Outputs: []string{"o0", "o1"},
	Uses: []*Fragment{Not, And},
	Body: `
	VAR i0 BITIN
	VAR sel BITIN
	VAR nsel NOT
	WIRE sel _ TO nsel _
	VAR a0 AND
	WIRE i0 _ TO a0 i0
	WIRE nsel _ TO a0 i1
	VAR a1 AND
	WIRE i0 _ TO a1 i0
	WIRE sel _ TO a1 i1
	VAR o0 BITOUT
	WIRE a0 _ TO o0 _
	VAR o1 BITOUT
	WIRE a1 _ TO o1 _`,
}

func init() {
	register(Mux, DMux)
}
