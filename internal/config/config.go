// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config reads the netlist tool configuration from the environment.
//
//	NETLIST_LIBRARY  path of the fragment library (default $HOME/.netlist.db)
//	NETLIST_STRICT   reject unknown input names
//	NETLIST_TRACE    log elaboration to stderr
package config

import (
	"os"
	"path/filepath"

	"github.com/xyproto/env/v2"
)

// Environment variable names.
const (
	EnvLibrary = "NETLIST_LIBRARY"
	EnvStrict  = "NETLIST_STRICT"
	EnvTrace   = "NETLIST_TRACE"
)

// Config holds the tool settings. Command line flags override them.
type Config struct {
	Library string
	Strict  bool
	Trace   bool
}

// Load returns the configuration from the environment.
func Load() *Config {
	return &Config{
		Library: env.Str(EnvLibrary, defaultLibrary()),
		Strict:  env.Bool(EnvStrict),
		Trace:   env.Bool(EnvTrace),
	}
}

func defaultLibrary() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".netlist.db"
	}
	return filepath.Join(home, ".netlist.db")
}
