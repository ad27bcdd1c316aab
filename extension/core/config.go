// config.go implements the "vetted config" command for configuration management.
//
// Separated from extension.go to isolate config-specific logic including
// the local vs global config precedence rules.
//
// Design: Config follows a cascade model similar to git: local config
// (.vetted/config.yaml) takes precedence over global (~/.vetted/config.yaml).
// The --local flag forces use of local config even if it doesn't exist yet,
// so a project can pin its own rules. Config is a standalone command: it
// must still run when the config file is invalid, since it is how the file
// gets fixed.

package core

import (
	"fmt"

	"github.com/jpl-au/vetted/cmd"
	"github.com/jpl-au/vetted/extension"
	"github.com/jpl-au/vetted/internal/config"
	"github.com/jpl-au/vetted/internal/format"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  vetted config                        # show effective config
  vetted config handle.max_length      # show one value
  vetted config handle.max_length 20   # set a value
  vetted config handle.reserved ""     # disable reserved words

Configuration locations:
  Global: ~/.vetted/config.yaml
  Local:  .vetted/config.yaml

Uses local config if it exists, otherwise global.
Writes go to the same place reads come from.
Use --local to use local config instead.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
	c.Flags().Bool(extension.FlagLocal, false, "Use local config (.vetted/config.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	forceLocal, _ := c.Flags().GetBool(extension.FlagLocal)

	var cfg *config.Config
	var err error
	if forceLocal {
		cfg, err = config.LoadScope(config.ScopeLocal)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("config load: %w", err))
	}

	switch len(args) {
	case 0:
		if cmd.JSON() {
			return cmd.PrintJSON(cfg.All())
		}
		return format.KeyValues(cmd.Out(), cfg.All())

	case 1:
		v, err := cfg.Get(args[0])
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("config get %q: %w", args[0], err))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{args[0]: v})
		}
		fmt.Fprintln(cmd.Out(), v)

	case 2:
		err := cfg.Set(args[0], args[1])
		if err == nil {
			err = cfg.Save()
		}
		scope := cfg.Scope().String()
		extension.Fire(extension.NewContext(cfg, cmd.Now), extension.ConfigSetEvent{
			Author: cmd.Author(),
			Key:    args[0],
			Scope:  scope,
			Err:    err,
		})
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("config set %q: %w", args[0], err))
		}

		if cmd.JSON() {
			return cmd.PrintJSON(map[string]string{"key": args[0], "value": args[1], "scope": scope})
		}
		fmt.Fprintf(cmd.Out(), "%s = %s (%s)\n", args[0], args[1], scope)
	}
	return nil
}
