// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package lsp implements a language server for netlist sources. It publishes
// syntax and elaboration errors as diagnostics.
package lsp

import (
	"context"
	"io"

	"github.com/sourcegraph/jsonrpc2"
)

// Serve runs the language server on rwc until the client disconnects, sends
// an exit notification or ctx is cancelled.
func Serve(ctx context.Context, rwc io.ReadWriteCloser) error {
	conn := jsonrpc2.NewConn(ctx,
		jsonrpc2.NewBufferedStream(rwc, jsonrpc2.VSCodeObjectCodec{}),
		handler(newServer()))
	select {
	case <-conn.DisconnectNotify():
		return nil
	case <-ctx.Done():
		conn.Close()
		return ctx.Err()
	}
}

// Transport returns a connection that reads from in and writes to out.
// Closing it closes in and out if they implement io.Closer.
func Transport(in io.Reader, out io.Writer) io.ReadWriteCloser {
	return transport{in, out}
}

type transport struct {
	in  io.Reader
	out io.Writer
}

func (c transport) Read(p []byte) (int, error)  { return c.in.Read(p) }
func (c transport) Write(p []byte) (int, error) { return c.out.Write(p) }

func (c transport) Close() error {
	var err error
	if cl, ok := c.in.(io.Closer); ok {
		err = cl.Close()
	}
	if cl, ok := c.out.(io.Closer); ok {
		if e := cl.Close(); err == nil {
			err = e
		}
	}
	return err
}
