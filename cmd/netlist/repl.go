// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/db47h/netlist"
	"github.com/mattn/go-isatty"
)

func (a *app) cmdRepl(args []string) error {
	fs := a.flagSet("repl")
	f := a.programFlags(fs)
	if err := a.parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errUsage("expected a single program file")
	}
	p, err := a.compile(f, fs.Arg(0))
	if err != nil {
		return err
	}
	prompt := ""
	if isTerminal(a.stdin) {
		prompt = "> "
		fmt.Fprintf(a.stdout, "inputs: %s\noutputs: %s\n",
			strings.Join(p.Inputs(), " "), strings.Join(p.Outputs(), " "))
	}
	return repl(a.stdin, a.stdout, p, prompt)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// repl runs p once for every line read from r and writes the outputs to w.
// A line is a list of name=value assignments separated by spaces; inputs not
// assigned keep their value. Lines starting with # are ignored. Errors are
// written to w and do not end the loop. repl returns the first error from
// reading r or writing to w.
func repl(r io.Reader, w io.Writer, p *netlist.Program, prompt string) error {
	s := bufio.NewScanner(r)
	for {
		if _, err := io.WriteString(w, prompt); err != nil {
			return err
		}
		if !s.Scan() {
			break
		}
		line := strings.TrimSpace(s.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		var res string
		in, err := parseInputs(strings.Fields(line))
		if err == nil {
			var out map[string]bool
			if out, err = p.Run(in); err == nil {
				res = formatOutputs(p.Outputs(), out)
			}
		}
		if err != nil {
			res = "error: " + err.Error()
		}
		if _, err = fmt.Fprintln(w, res); err != nil {
			return err
		}
	}
	if err := s.Err(); err != nil {
		return err
	}
	if prompt != "" {
		_, err := fmt.Fprintln(w)
		return err
	}
	return nil
}
