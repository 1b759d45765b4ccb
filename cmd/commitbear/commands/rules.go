// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/commitbear/commitbear/internal/checker"
	"github.com/commitbear/commitbear/internal/rules"
)

// NewRulesCommand returns the `commitbear rules` command.
func NewRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List registered checks and their option defaults",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Checks:")
			for _, c := range checker.Registry() {
				fmt.Fprintf(out, "  %s\n", c.ID())
			}

			cfg := rules.DefaultConfig()
			fmt.Fprintln(out, "Defaults:")
			fmt.Fprintf(out, "  allow_empty_commit_message: %t\n", cfg.AllowEmptyCommitMessage)
			fmt.Fprintf(out, "  shortlog_length: %d\n", cfg.ShortlogLength)
			fmt.Fprintf(out, "  shortlog_trailing_period: %s\n", cfg.ShortlogTrailingPeriod)
			fmt.Fprintf(out, "  shortlog_wip_check: %s\n", cfg.ShortlogWIPCheck)
			fmt.Fprintf(out, "  shortlog_imperative_check: %t\n", cfg.ShortlogImperativeCheck)
			fmt.Fprintf(out, "  force_body: %t\n", cfg.ForceBody)
			fmt.Fprintf(out, "  body_line_length: %d\n", cfg.BodyLineLength)
		},
	}
}
