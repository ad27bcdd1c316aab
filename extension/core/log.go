// log.go implements the "vetted log" command for reading the audit log.
//
// Separated from extension.go because the audit log has its own query and
// retention surface: listing, per-rule summaries and pruning.
//
// Design: log is a standalone command. It only touches the audit database,
// which root.go opens before any command runs, so an invalid config file
// does not stop a user from inspecting past checks.

package core

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/jpl-au/vetted/cmd"
	"github.com/jpl-au/vetted/extension"
	"github.com/jpl-au/vetted/internal/duration"
	"github.com/jpl-au/vetted/internal/format"
	"github.com/jpl-au/vetted/internal/log"
	"github.com/spf13/cobra"
)

func newLogCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "log",
		Short: "Show the audit log of checks",
		Long: `Show recent checks from the audit log (~/.vetted/log/vetted-log.db).

Entries record the field, input length and failure rule. Checked values
are never stored.

  vetted log                      # last 50 entries
  vetted log --failed --since 7d  # failures in the last week
  vetted log --source mcp:        # MCP tool calls only
  vetted log --summary            # counts per rule
  vetted log prune --older-than 90d`,
		Args: cobra.NoArgs,
		RunE: runLog,
	}
	c.Flags().IntP(extension.FlagLimit, "n", log.DefaultLimit, "Maximum entries to show")
	c.Flags().Bool(extension.FlagFailed, false, "Only failed checks")
	c.Flags().String(extension.FlagSince, "", "Only entries newer than this (e.g. 2h, 7d, 2w)")
	c.Flags().String(extension.FlagSource, "", "Only entries whose source starts with this prefix")
	c.Flags().Bool(extension.FlagProject, false, "Only entries from the current directory")
	c.Flags().Bool(extension.FlagSummary, false, "Count entries per rule instead of listing them")

	c.AddCommand(newLogPruneCmd())
	return c
}

func runLog(c *cobra.Command, _ []string) error {
	f, err := logFilter(c)
	if err != nil {
		return cmd.PrintJSONError(err)
	}

	summary, _ := c.Flags().GetBool(extension.FlagSummary)
	if summary {
		counts, err := log.Summary(f)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("log summary: %w", err))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(counts)
		}
		return format.Summary(cmd.Out(), counts)
	}

	entries, err := log.Query(f)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("log query: %w", err))
	}
	if cmd.JSON() {
		if entries == nil {
			entries = []log.Entry{}
		}
		return cmd.PrintJSON(entries)
	}
	return format.LogEntries(cmd.Out(), entries)
}

// logFilter builds a query filter from the log command's flags.
func logFilter(c *cobra.Command) (log.Filter, error) {
	var f log.Filter
	f.Limit, _ = c.Flags().GetInt(extension.FlagLimit)
	f.FailedOnly, _ = c.Flags().GetBool(extension.FlagFailed)
	f.ProjectOnly, _ = c.Flags().GetBool(extension.FlagProject)
	f.Source, _ = c.Flags().GetString(extension.FlagSource)

	if f.Limit < 0 {
		return f, fmt.Errorf("--%s must not be negative", extension.FlagLimit)
	}

	since, _ := c.Flags().GetString(extension.FlagSince)
	if since != "" {
		d, err := duration.Parse(since)
		if err != nil {
			return f, fmt.Errorf("--%s: %w", extension.FlagSince, err)
		}
		f.Since = time.Now().Add(-d)
	}
	return f, nil
}

func newLogPruneCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "prune",
		Short: "Delete old audit log entries",
		Long: `Permanently delete audit log entries older than a duration.

  vetted log prune --older-than 90d --dry-run   # count only
  vetted log prune --older-than 30d --force     # no confirmation`,
		Args: cobra.NoArgs,
		RunE: runLogPrune,
	}
	c.Flags().String(extension.FlagOlderThan, "", "Delete entries older than this (e.g. 30d, 12w)")
	c.Flags().Bool(extension.FlagDryRun, false, "Show how many entries would be deleted")
	c.Flags().BoolP(extension.FlagForce, "f", false, "Skip the confirmation prompt")
	_ = c.MarkFlagRequired(extension.FlagOlderThan)
	return c
}

func runLogPrune(c *cobra.Command, _ []string) error {
	olderThan, _ := c.Flags().GetString(extension.FlagOlderThan)
	dryRun, _ := c.Flags().GetBool(extension.FlagDryRun)
	force, _ := c.Flags().GetBool(extension.FlagForce)

	d, err := duration.Parse(olderThan)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("--%s: %w", extension.FlagOlderThan, err))
	}
	cutoff := time.Now().Add(-d)

	if dryRun {
		n, err := log.Prune(cutoff, true)
		if err != nil {
			return cmd.PrintJSONError(fmt.Errorf("log prune: %w", err))
		}
		if cmd.JSON() {
			return cmd.PrintJSON(map[string]any{"dry_run": true, "count": n, "older_than": duration.Format(d)})
		}
		fmt.Fprintf(cmd.Out(), "Would delete %d entr%s older than %s\n", n, plural(n), duration.Format(d))
		return nil
	}

	if !force && !cmd.JSON() {
		fmt.Fprintf(cmd.Out(), "Permanently delete audit log entries older than %s? [y/N] ", duration.Format(d))
		response, err := bufio.NewReader(cmd.In()).ReadString('\n')
		if err != nil && response == "" {
			return cmd.PrintJSONError(fmt.Errorf("reading confirmation: %w", err))
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(cmd.Out(), "Cancelled")
			return nil
		}
	}

	n, err := log.Prune(cutoff, false)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("log prune: %w", err))
	}
	// Recorded after the delete so the prune itself survives it.
	log.Event("core:log", "prune").
		Author(cmd.Author()).
		Detail("count", n).
		Detail("older_than", duration.Format(d)).
		Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]any{"dry_run": false, "count": n, "older_than": duration.Format(d)})
	}
	fmt.Fprintf(cmd.Out(), "Deleted %d entr%s\n", n, plural(n))
	return nil
}

func plural(n int64) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
