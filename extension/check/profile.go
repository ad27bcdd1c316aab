// profile.go implements the "vetted profile" command.
//
// A profile is one user record in YAML or JSON. Each present field is
// checked with the same validator as its single-value command, and every
// field is logged as its own check so the audit log stays per-field.

package check

import (
	"fmt"

	"github.com/jpl-au/vetted/cmd"
	"github.com/jpl-au/vetted/extension"
	"github.com/jpl-au/vetted/internal/profile"
	"github.com/spf13/cobra"
)

func (e *Extension) newProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile <file|->",
		Short: "Validate every field of a profile file",
		Long: `Validate a YAML or JSON profile. Recognised keys: handle, display_name,
description, tag_date, id. Unknown keys are an error.

  vetted profile alice.yaml
  cat alice.json | vetted profile -`,
		Args: cobra.ExactArgs(1),
		RunE: e.runProfile,
	}
}

func (e *Extension) runProfile(_ *cobra.Command, args []string) error {
	var (
		p   *profile.Profile
		err error
	)
	if args[0] == "-" {
		p, err = profile.Decode(cmd.In())
	} else {
		p, err = profile.Load(args[0])
	}
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("profile %q: %w", args[0], err))
	}

	report, err := profile.Check(writer(), e.ctx.Rules(), p, cmd.Now())
	for _, r := range report.Results {
		extension.Fire(e.ctx, extension.CheckEvent{
			Source: "check:profile",
			Author: cmd.Author(),
			Field:  r.Field,
			Length: r.Length,
			Err:    r.Err,
		})
	}

	if perr := cmd.PrintJSON(report); perr != nil {
		return perr
	}
	if err != nil {
		return cmd.ErrInvalid
	}
	return nil
}
