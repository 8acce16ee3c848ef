// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/db47h/netlist"
	"github.com/db47h/netlist/internal/store"
	"github.com/pkg/errors"
)

// cmdLib manages the fragment library.
func (a *app) cmdLib(args []string) error {
	fs := a.flagSet("lib")
	lib := fs.String("lib", a.cfg.Library, "path of the fragment library")
	if err := a.parseFlags(fs, args); err != nil {
		return err
	}
	args = fs.Args()
	if len(args) == 0 {
		return errUsage("missing lib command")
	}
	var want int
	switch args[0] {
	case "put":
		want = 3
	case "get", "rm":
		want = 2
	case "ls":
		want = 1
	default:
		return errUsage("unknown lib command " + args[0])
	}
	if len(args) != want {
		return errUsage("wrong number of arguments for lib " + args[0])
	}

	st, err := store.Open(*lib)
	if err != nil {
		return err
	}
	defer st.Close()

	switch args[0] {
	case "put":
		src, err := os.ReadFile(args[2])
		if err != nil {
			return err
		}
		// syntax check. Module bodies are elaborated when instantiated.
		if _, err = netlist.Compile(string(src)); err != nil {
			return errors.Wrap(err, args[2])
		}
		return st.Put(args[1], string(src))
	case "get":
		src, err := st.Get(args[1])
		if err != nil {
			return err
		}
		_, err = io.WriteString(a.stdout, src)
		return err
	case "rm":
		return st.Delete(args[1])
	default:
		names, err := st.Names()
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Fprintln(a.stdout, n)
		}
		return nil
	}
}
