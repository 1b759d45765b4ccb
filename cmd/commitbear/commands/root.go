// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd constructs the commitbear root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("COMMITBEAR_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:   "commitbear",
		Short: "commitbear - git commit message style checks",
		Long: "commitbear validates git commit messages against configurable style rules: " +
			"shortlog length, trailing period, work-in-progress markers, imperative mood, " +
			"regex conformance, and body line length.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of commitbear",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "commitbear version %s\n", version)
		},
	})

	cmd.AddCommand(NewCheckCommand())
	cmd.AddCommand(NewRulesCommand())

	return cmd
}
