/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// root.go defines the root command and CLI execution entry point.
//
// Separated from init_extensions.go to isolate cobra setup from extension
// initialisation logic.
//
// Design: PersistentPreRunE loads configuration lazily - only commands that
// validate input trigger extension init. Standalone commands (config, guide,
// version) work even when the config file is broken, so a user can always
// inspect and repair it.

package cmd

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/jpl-au/vetted/internal/log"
	"github.com/spf13/cobra"
)

// ErrInvalid is returned by check commands when the input failed
// validation. The result has already been printed, so Execute only sets the
// exit status.
var ErrInvalid = errors.New("validation failed")

var rootCmd = &cobra.Command{
	Use:   "vetted",
	Short: "Validate handles, display names, descriptions, tag dates and ID timestamps",
	Long: `Validate user-supplied profile fields and identifier timestamps.

Each check prints one line (or JSON with -o json) and exits non-zero when
the value is rejected. Bounds come from .vetted/config.yaml or
~/.vetted/config.yaml; see 'vetted guide config'.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if output != "" && !slices.Contains(validOutputFormats, output) {
			return fmt.Errorf("invalid output format: %s (valid: %v)", output, validOutputFormats)
		}

		if err := parseNow(); err != nil {
			return err
		}

		// Detect author if not explicitly set
		if author == "" {
			author = detectAuthor()
		}

		if standaloneCommands[topLevelCmdName(cmd)] {
			return nil
		}
		if err := initExtensions(); err != nil {
			if JSON() {
				_ = PrintJSON(map[string]string{"error": err.Error()})
			}
			return fmt.Errorf("initialise extensions: %w", err)
		}
		return nil
	},
}

// topLevelCmdName returns the name of the top-level command (direct child of root).
// For "vetted handle alice", returns "handle".
// For "vetted log prune", returns "log".
func topLevelCmdName(cmd *cobra.Command) string {
	for cmd.HasParent() && cmd.Parent().HasParent() {
		cmd = cmd.Parent()
	}
	return cmd.Name()
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging, registers extensions and executes the command.
// Exit code 1 indicates a rejected value or any other error.
func Execute() {
	// Initialise audit logger (warn if it fails, but continue)
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}
	if wd, err := os.Getwd(); err == nil {
		log.SetProject(wd)
	}

	registerExtensions()
	rootCmd.SilenceErrors = true
	err := rootCmd.Execute()
	log.Close()

	if err != nil {
		if !errors.Is(err, ErrInvalid) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing and extension access.
func RootCmd() *cobra.Command {
	return rootCmd
}
