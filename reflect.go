// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package netlist

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// structPort binds a struct field to program ports.
type structPort struct {
	field int
	name  string // field name, for error messages
	ports []string
	in    bool
}

// structPorts returns the ports bound to the fields of struct type typ.
//
// The field tag must be `hw:"in"` or `hw:"out"` to identify inputs and
// outputs. By default, the port name is the field name in lowercase. A
// specific port name can be forced by adding it in the tag:
// `hw:"in,port_name"`.
//
// Fields must be bool or arrays of bool. Element i of an array field is bound
// to the port named by appending i to the port name.
func structPorts(typ reflect.Type) ([]structPort, error) {
	var sps []structPort
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		tag, ok := f.Tag.Lookup("hw")
		if !ok {
			continue
		}
		sp := structPort{field: i, name: f.Name}
		port := strings.ToLower(f.Name)
		tv := strings.Split(tag, ",")
		if len(tv) > 2 {
			return nil, errors.Errorf("field %s: unsupported tag %q", f.Name, tag)
		}
		if len(tv) == 2 && tv[1] != "" {
			port = tv[1]
		}
		switch tv[0] {
		case "in":
			sp.in = true
		case "out":
		default:
			return nil, errors.Errorf("field %s: unsupported tag %q", f.Name, tag)
		}

		switch ft := f.Type; {
		case ft.Kind() == reflect.Bool:
			sp.ports = []string{port}
		case ft.Kind() == reflect.Array && ft.Elem().Kind() == reflect.Bool:
			for j := 0; j < ft.Len(); j++ {
				sp.ports = append(sp.ports, port+strconv.Itoa(j))
			}
		default:
			return nil, errors.Errorf("field %s: unsupported type %s", f.Name, ft)
		}
		sps = append(sps, sp)
	}
	return sps, nil
}

// RunStruct is like Run, with inputs and outputs bound to the tagged fields of
// the struct v points to. Input fields are read before the run and output
// fields are set after a successful run. See the Program.RunStruct example for
// the tag format.
//
// Unknown inputs are handled as in Run. RunStruct fails without running p if
// an output field is not bound to an output of p.
func (p *Program) RunStruct(v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return errors.Errorf("RunStruct: unsupported type %T", v)
	}
	e := rv.Elem()
	sps, err := structPorts(e.Type())
	if err != nil {
		return err
	}

	in := make(map[string]bool)
	for _, sp := range sps {
		fv := e.Field(sp.field)
		for i, port := range sp.ports {
			if sp.in {
				in[port] = elem(fv, i).Bool()
			} else if p.top.outs.get(port) == nil {
				return errors.Errorf("field %s: no output named %q", sp.name, port)
			}
		}
	}

	out, err := p.Run(in)
	if err != nil {
		return err
	}
	for _, sp := range sps {
		if sp.in {
			continue
		}
		fv := e.Field(sp.field)
		for i, port := range sp.ports {
			elem(fv, i).SetBool(out[port])
		}
	}
	return nil
}

// elem returns element i of array v, or v itself if it is not an array.
func elem(v reflect.Value, i int) reflect.Value {
	if v.Kind() == reflect.Array {
		return v.Index(i)
	}
	return v
}
