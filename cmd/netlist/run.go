// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/db47h/netlist"
	"github.com/db47h/netlist/hwlib"
	"github.com/db47h/netlist/internal/store"
	"github.com/pkg/errors"
)

// programFlags are the flags shared by run and repl.
type programFlags struct {
	strict bool
	trace  bool
	use    string
	lib    string
}

func (a *app) programFlags(fs *flag.FlagSet) *programFlags {
	f := new(programFlags)
	fs.BoolVar(&f.strict, "strict", a.cfg.Strict, "reject unknown input names")
	fs.BoolVar(&f.trace, "trace", a.cfg.Trace, "log elaboration to stderr")
	fs.StringVar(&f.use, "use", "", "comma separated list of library modules to prepend to the program")
	fs.StringVar(&f.lib, "lib", a.cfg.Library, "path of the fragment library")
	return f
}

// compile loads and compiles the program in file.
func (a *app) compile(f *programFlags, file string) (*netlist.Program, error) {
	src, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	prelude, err := fragments(f.lib, splitList(f.use))
	if err != nil {
		return nil, err
	}
	var opts []netlist.Option
	if f.strict {
		opts = append(opts, netlist.Strict())
	}
	if f.trace {
		opts = append(opts, netlist.Trace(log.New(a.stderr, "", 0)))
	}
	p, err := netlist.Compile(prelude+string(src), opts...)
	if err != nil {
		return nil, errors.Wrap(err, file)
	}
	return p, nil
}

func splitList(s string) []string {
	var l []string
	for _, n := range strings.Split(s, ",") {
		if n = strings.TrimSpace(n); n != "" {
			l = append(l, n)
		}
	}
	return l
}

// fragments returns the source of the named modules. Modules are looked up in
// the library at path first, then in hwlib. A library that does not exist is
// not created.
func fragments(path string, names []string) (string, error) {
	if len(names) == 0 {
		return "", nil
	}
	var st *store.Store
	if _, err := os.Stat(path); err == nil {
		if st, err = store.Open(path); err != nil {
			return "", err
		}
		defer st.Close()
	}
	var b strings.Builder
	for _, n := range names {
		if st != nil {
			src, err := st.Get(n)
			if err == nil {
				b.WriteString(src)
				if !strings.HasSuffix(src, "\n") {
					b.WriteByte('\n')
				}
				continue
			}
			if errors.Cause(err) != store.ErrNotFound {
				return "", err
			}
		}
		src, err := hwlib.Source(n)
		if err != nil {
			return "", err
		}
		b.WriteString(src)
	}
	return b.String(), nil
}

// parseInputs parses name=value assignments. Values are parsed with
// strconv.ParseBool.
func parseInputs(args []string) (map[string]bool, error) {
	in := make(map[string]bool, len(args))
	for _, arg := range args {
		i := strings.IndexByte(arg, '=')
		if i <= 0 {
			return nil, errors.Errorf("invalid input %q, expected name=value", arg)
		}
		v, err := strconv.ParseBool(arg[i+1:])
		if err != nil {
			return nil, errors.Errorf("invalid value for input %s: %q", arg[:i], arg[i+1:])
		}
		in[arg[:i]] = v
	}
	return in, nil
}

// formatOutputs formats outputs as name=0|1 in the order of names.
func formatOutputs(names []string, out map[string]bool) string {
	var b strings.Builder
	for i, n := range names {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(n)
		if out[n] {
			b.WriteString("=1")
		} else {
			b.WriteString("=0")
		}
	}
	return b.String()
}

func (a *app) cmdRun(args []string) error {
	fs := a.flagSet("run")
	f := a.programFlags(fs)
	if err := a.parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return errUsage("missing program file")
	}
	p, err := a.compile(f, fs.Arg(0))
	if err != nil {
		return err
	}
	in, err := parseInputs(fs.Args()[1:])
	if err != nil {
		return err
	}
	out, err := p.Run(in)
	if err != nil {
		return err
	}
	_, err = io.WriteString(a.stdout, formatOutputs(p.Outputs(), out)+"\n")
	return err
}
