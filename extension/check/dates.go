// dates.go implements the "vetted tagdate", "vetted ts" and "vetted id"
// commands.
//
// Design: ts and id compare against cmd.Now(), which honours --now and
// VETTED_NOW, so scripted checks of stored identifiers are repeatable.

package check

import (
	"github.com/jpl-au/vetted/cmd"
	"github.com/jpl-au/vetted/internal/check"
	"github.com/spf13/cobra"
)

func (e *Extension) newTagDateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tagdate <YYYY[-MM[-DD]]>",
		Short: "Validate a tag date",
		Long: `Validate a tag date: a year, a month of a year, or a single day.

  vetted tagdate 2024
  vetted tagdate 2024-02
  vetted tagdate 2024-02-29`,
		Args: cobra.ExactArgs(1),
		RunE: e.runTagDate,
	}
}

func (e *Extension) runTagDate(_ *cobra.Command, args []string) error {
	r, err := check.TagDate(writer(), e.ctx.Rules(), args[0])
	return e.finish("check:tagdate", r, err)
}

func (e *Extension) newTimestampCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ts <segment>",
		Short: "Validate a ULID timestamp segment",
		Long: `Validate the 10-character timestamp segment of a ULID.

The segment must decode as Crockford base32 and fall between the configured
epoch and the reference time plus the allowed skew.

  vetted ts 01HQ3K5Z8X
  vetted ts 01HQ3K5Z8X --now 2024-03-01T00:00:00Z`,
		Args: cobra.ExactArgs(1),
		RunE: e.runTimestamp,
	}
}

func (e *Extension) runTimestamp(_ *cobra.Command, args []string) error {
	r, err := check.Timestamp(writer(), e.ctx.Rules(), args[0], cmd.Now())
	return e.finish("check:ts", r, err)
}

func (e *Extension) newIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "id <ulid|uuidv7>",
		Short: "Validate the timestamp of a ULID or UUIDv7",
		Long: `Validate the creation timestamp embedded in a ULID or UUIDv7.

  vetted id 01HQ3K5Z8XABCDEFGHJKMNPQRS
  vetted id 018e0c3a-7b2e-7c4d-9a1b-2c3d4e5f6a7b`,
		Args: cobra.ExactArgs(1),
		RunE: e.runID,
	}
}

func (e *Extension) runID(_ *cobra.Command, args []string) error {
	r, err := check.ID(writer(), e.ctx.Rules(), args[0], cmd.Now())
	return e.finish("check:id", r, err)
}
