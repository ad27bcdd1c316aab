/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Separated from root.go to isolate the initialisation logic that loads
// config and wires up extensions.
//
// Design: Extensions register during init() but aren't initialised until
// first command execution. This two-phase pattern allows extensions to
// declare commands before configuration is loaded. The Context is created
// once and shared across all extensions.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/vetted/extension"
	"github.com/jpl-au/vetted/internal/config"
)

// standaloneCommands lists commands that bypass extension initialisation.
// Built from bootstrap commands plus extension-declared standalone commands.
var standaloneCommands map[string]bool

// buildStandaloneCommands creates the set of commands that skip loading
// configuration.
//
// Bootstrap commands (guide, config, version, help, completion) must work
// when the config file is missing or invalid: "vetted config" is how an
// invalid file gets fixed. Extensions add to the set by implementing
// extension.Standalone.
func buildStandaloneCommands() map[string]bool {
	cmds := map[string]bool{
		"guide":      true,
		"config":     true,
		"version":    true,
		"help":       true,
		"completion": true,
	}
	for name := range extension.StandaloneCommands() {
		cmds[name] = true
	}
	return cmds
}

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions loads configuration and injects the shared Context into
// every Initializable extension. Runs at most once per process.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		extContext = extension.NewContext(cfg, Now)

		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

// ExtContext returns the shared extension context, initialising it if
// needed. Used by the MCP server, which runs as a standalone command but
// serves every extension's tools.
func ExtContext() (extension.Context, error) {
	if err := initExtensions(); err != nil {
		return nil, err
	}
	return extContext, nil
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}

		// Build standaloneCommands after all extensions are registered
		standaloneCommands = buildStandaloneCommands()
	})
}
