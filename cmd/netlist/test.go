// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/db47h/netlist/hwtest"
	"github.com/pkg/errors"
)

// cmdTest verifies YAML test suites.
func (a *app) cmdTest(args []string) error {
	fs := a.flagSet("test")
	if err := a.parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errUsage("no test suite")
	}
	failed := 0
	for _, name := range fs.Args() {
		start := time.Now()
		s, err := hwtest.LoadSuiteFile(name)
		if err == nil {
			err = s.Verify()
		}
		if err != nil {
			failed++
			fmt.Fprintf(a.stdout, "FAIL\t%s\t%v\n", name, err)
			continue
		}
		fmt.Fprintf(a.stdout, "ok\t%s\t%d cases\t%v\n", s.Name, len(s.Cases), time.Since(start).Round(time.Microsecond))
	}
	if failed > 0 {
		return errors.Errorf("%d of %d suites failed", failed, fs.NArg())
	}
	return nil
}
