// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

import (
	"strconv"

	"github.com/pkg/errors"
)

// Errors returned by Compile and Run. They are wrapped with context; use
// errors.Cause or errors.Is to test for them.
var (
	ErrUnknownModule     = errors.New("unknown module")
	ErrDuplicateModule   = errors.New("module already defined")
	ErrUnknownVariable   = errors.New("variable not found")
	ErrDuplicateVariable = errors.New("variable already declared")
	ErrUnknownPort       = errors.New("unknown port")
	ErrAmbiguousPort     = errors.New("ambiguous port")
	ErrAlreadyWired      = errors.New("destination port already wired")

	ErrContention        = errors.New("flip-flop set and reset at the same time")
	ErrCombinationalLoop = errors.New("combinational loop")
	ErrUnknownInput      = errors.New("unknown input")
)

// Error is an elaboration error located in the source.
type Error struct {
	Line int
	Col  int
	Err  error
}

func (e *Error) Error() string {
	return "line " + strconv.Itoa(e.Line) + ":" + strconv.Itoa(e.Col) + ": " + e.Err.Error()
}

// Cause returns the underlying error.
func (e *Error) Cause() error { return e.Err }

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error { return e.Err }
