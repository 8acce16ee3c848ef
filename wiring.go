// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

import (
	"github.com/db47h/netlist/internal/hdl"
	"github.com/pkg/errors"
)

// wire connects an output port of a variable to an input port of another.
// The destination then follows the value of the source. An input port can
// only be driven by a single output.
func (e *elaborator) wire(vars map[string]*variable, s *hdl.WireStatement) error {
	src, ok := vars[s.SrcVariable]
	if !ok {
		return errors.Wrap(ErrUnknownVariable, s.SrcVariable)
	}
	dst, ok := vars[s.DestVariable]
	if !ok {
		return errors.Wrap(ErrUnknownVariable, s.DestVariable)
	}
	sp, sc, err := src.out(s.SrcPort)
	if err != nil {
		return err
	}
	dp, dc, err := dst.in(s.DestPort)
	if err != nil {
		return err
	}
	if err = dc.bind(alias, sc); err != nil {
		return err
	}
	e.tracef("%s -> %s", src.cellName(sp), dst.cellName(dp))
	return nil
}
