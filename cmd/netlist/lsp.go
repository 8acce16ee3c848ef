// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/db47h/netlist/internal/lsp"
)

func (a *app) cmdLSP(args []string) error {
	if len(args) != 0 {
		return errUsage("lsp takes no arguments")
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	err := lsp.Serve(ctx, lsp.Transport(a.stdin, a.stdout))
	if err == context.Canceled {
		return nil
	}
	return err
}
