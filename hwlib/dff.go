// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

// DLatch is a gated D latch built on a FLIPFLOP.
//
//	Inputs: d, en
//	Outputs: q
//	Function: if en { q = d } else { q holds its previous value }
var DLatch = &Fragment{
	Name: "DLATCH", Inputs: []string{"d", "en"}, Outputs: []string{"q"},
	Uses: []*Fragment{Not, And},
	Body: `
	VAR d BITIN
	VAR en BITIN
	VAR nd NOT
	WIRE d _ TO nd _
	VAR set AND
	WIRE d _ TO set i0
	WIRE en _ TO set i1
	VAR reset AND
	WIRE nd _ TO reset i0
	WIRE en _ TO reset i1
	VAR ff FLIPFLOP
	WIRE set _ TO ff s
	WIRE reset _ TO ff r
	VAR q BITOUT
	WIRE ff _ TO q _`,
}

func init() {
	register(DLatch)
}
