// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command netlist compiles and runs netlist programs.
//
//	netlist run [-strict] [-trace] [-use NOT,AND] file [name=0|1 ...]
//	netlist repl [-strict] [-trace] [-use NOT,AND] file
//	netlist test suite.yaml ...
//	netlist lib put NAME file | get NAME | ls | rm NAME
//	netlist lsp
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/db47h/netlist/internal/config"
)

// app holds the configuration and standard streams of a command.
type app struct {
	cfg    *config.Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    *log.Logger
}

type command struct {
	run   func(a *app, args []string) error
	usage string
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"run":  {(*app).cmdRun, "run [-strict] [-trace] [-use a,b] [-lib path] file [name=0|1 ...]"},
		"repl": {(*app).cmdRepl, "repl [-strict] [-trace] [-use a,b] [-lib path] file"},
		"test": {(*app).cmdTest, "test suite.yaml ..."},
		"lib":  {(*app).cmdLib, "lib [-lib path] put NAME file | get NAME | ls | rm NAME"},
		"lsp":  {(*app).cmdLSP, "lsp"},
	}
}

func main() {
	os.Exit(Main(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// errUsage reports bad command line arguments. Its message is printed along
// with the command usage.
type errUsage string

func (e errUsage) Error() string { return string(e) }

// Main runs the command line args and returns the process exit code.
func Main(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{
		cfg:    config.Load(),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		log:    log.New(stderr, "netlist: ", 0),
	}
	if len(args) == 0 {
		a.usage()
		return 2
	}
	cmd, ok := commands[args[0]]
	if !ok {
		a.log.Printf("unknown command %q", args[0])
		a.usage()
		return 2
	}
	err := cmd.run(a, args[1:])
	switch err := err.(type) {
	case nil:
		return 0
	case errUsage:
		a.log.Print(err)
		fmt.Fprintln(stderr, "usage: netlist "+cmd.usage)
		return 2
	default:
		a.log.Print(err)
		return 1
	}
}

func (a *app) usage() {
	fmt.Fprintln(a.stderr, "usage:")
	for _, n := range []string{"run", "repl", "test", "lib", "lsp"} {
		fmt.Fprintln(a.stderr, "  netlist "+commands[n].usage)
	}
}

// flagSet returns a flag set that does not print anything nor exit on error.
func (a *app) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (a *app) parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errUsage(err.Error())
	}
	return nil
}
