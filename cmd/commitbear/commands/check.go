// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/commitbear/commitbear/cmd/commitbear/internal/clierr"
	"github.com/commitbear/commitbear/internal/checker"
	"github.com/commitbear/commitbear/internal/config"
	"github.com/commitbear/commitbear/internal/gitrepo"
	"github.com/commitbear/commitbear/internal/rules"
)

// Exit codes: 0 clean, 1 violations found, 2 bad configuration or usage,
// 4 environment failure (git missing, HEAD unresolvable).
const (
	exitViolations  = 1
	exitUsage       = 2
	exitEnvironment = 4
)

// NewCheckCommand returns the `commitbear check` command.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a commit message against the style rules",
		Long: "Validates the HEAD commit message of a repository (or a message given via " +
			"--message/--file) and prints one line per violation",
		RunE: runCheck,
	}

	// Flags in alphabetical order for deterministic help output
	cmd.Flags().Bool("allow-empty", false, "Allow an empty commit message")
	cmd.Flags().Int("body-line-length", rules.DefaultBodyLineLength, "Maximum body line length in characters")
	cmd.Flags().String("config", "", "Path to a config file (default: .commitbear.yaml in --dir when present)")
	cmd.Flags().String("dir", ".", "Repository directory to read the HEAD commit from")
	cmd.Flags().String("file", "", "Read the commit message from a file instead of HEAD ('-' for stdin)")
	cmd.Flags().Bool("force-body", false, "Require a commit message body")
	cmd.Flags().String("format", "text", "Output format: text (default) or json")
	cmd.Flags().StringArray("ignore-length-regex", nil, "Exempt body lines matching the pattern from the length check (repeatable)")
	cmd.Flags().Bool("imperative-check", false, "Check that the shortlog starts in imperative mood")
	cmd.Flags().String("message", "", "Validate the given message instead of HEAD")
	cmd.Flags().Int("shortlog-length", rules.DefaultShortlogLength, "Maximum shortlog length in characters")
	cmd.Flags().String("shortlog-regex", "", "Pattern the shortlog must fully match")
	cmd.Flags().String("trailing-period", "ignore", "Trailing period in the shortlog: enable (require), disable (forbid), or ignore")
	cmd.Flags().String("wip-check", "ignore", "Flag work-in-progress markers: enable, disable, or ignore")

	return cmd
}

// checkReport is the JSON output structure of `commitbear check`.
type checkReport struct {
	Violations []checker.Result `json:"violations"`
	Count      int              `json:"count"`
}

// runCheck executes the check command.
func runCheck(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")

	formatFlag, _ := cmd.Flags().GetString("format")
	if formatFlag != "text" && formatFlag != "json" {
		return clierr.Newf(exitUsage, "invalid format: %s (must be 'text' or 'json')", formatFlag)
	}

	cfg, err := loadConfig(cmd, dir)
	if err != nil {
		return clierr.Wrap(exitUsage, "loading config", err)
	}
	if err := applyRuleFlags(cmd, &cfg); err != nil {
		return clierr.Wrap(exitUsage, "parsing flags", err)
	}

	deps := &checker.Deps{
		RepoDir: dir,
		Config:  cfg,
		Diags:   &checker.Diagnostics{},
	}

	message, haveMessage, err := readMessage(cmd)
	if err != nil {
		return clierr.Wrap(exitUsage, "reading message", err)
	}
	if haveMessage {
		deps.Message = &message
	} else if err := gitrepo.EnsureInstalled(); err != nil {
		return clierr.Wrap(exitEnvironment, "checking prerequisites", err)
	}

	results, err := checker.RunAll(cmd.Context(), checker.Registry(), deps)
	if err != nil {
		return clierr.Wrap(exitUsage, "running checks", err)
	}

	// Environment errors skip validation entirely for the run and are
	// reported on the side channel, never mixed into the results.
	if diags := deps.Diags.Drain(); len(diags) > 0 {
		for _, diag := range diags {
			fmt.Fprintln(cmd.ErrOrStderr(), diag)
		}
		return clierr.New(exitEnvironment, "unable to read the HEAD commit")
	}

	switch formatFlag {
	case "json":
		if results == nil {
			results = []checker.Result{}
		}
		report := checkReport{Violations: results, Count: len(results)}
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		data = append(data, '\n')
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return fmt.Errorf("writing JSON output: %w", err)
		}
	default:
		for _, r := range results {
			fmt.Fprintln(cmd.OutOrStdout(), r.Message)
		}
	}

	if len(results) > 0 {
		return clierr.Newf(exitViolations, "%d violation(s) found", len(results))
	}
	return nil
}

// loadConfig resolves the rule options: an explicit --config path wins,
// otherwise .commitbear.yaml in the repository directory when present,
// otherwise the defaults.
func loadConfig(cmd *cobra.Command, dir string) (rules.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.Load(path)
	}

	path := filepath.Join(dir, config.DefaultFileName)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return config.Load(path)
	}
	return rules.DefaultConfig(), nil
}

// applyRuleFlags overlays explicitly set flags onto the loaded config.
func applyRuleFlags(cmd *cobra.Command, cfg *rules.Config) error {
	flags := cmd.Flags()

	if flags.Changed("allow-empty") {
		cfg.AllowEmptyCommitMessage, _ = flags.GetBool("allow-empty")
	}
	if flags.Changed("shortlog-length") {
		cfg.ShortlogLength, _ = flags.GetInt("shortlog-length")
	}
	if flags.Changed("trailing-period") {
		value, _ := flags.GetString("trailing-period")
		state, err := rules.ParseTriState(value)
		if err != nil {
			return err
		}
		cfg.ShortlogTrailingPeriod = state
	}
	if flags.Changed("wip-check") {
		value, _ := flags.GetString("wip-check")
		state, err := rules.ParseTriState(value)
		if err != nil {
			return err
		}
		cfg.ShortlogWIPCheck = state
	}
	if flags.Changed("imperative-check") {
		cfg.ShortlogImperativeCheck, _ = flags.GetBool("imperative-check")
	}
	if flags.Changed("shortlog-regex") {
		cfg.ShortlogRegex, _ = flags.GetString("shortlog-regex")
	}
	if flags.Changed("force-body") {
		cfg.ForceBody, _ = flags.GetBool("force-body")
	}
	if flags.Changed("body-line-length") {
		cfg.BodyLineLength, _ = flags.GetInt("body-line-length")
	}
	if flags.Changed("ignore-length-regex") {
		cfg.IgnoreLengthRegex, _ = flags.GetStringArray("ignore-length-regex")
	}

	return nil
}

// readMessage resolves the commit text source. The second return value
// reports whether a message was supplied at all; an empty supplied message
// is still a message and gets validated as such.
func readMessage(cmd *cobra.Command) (string, bool, error) {
	flags := cmd.Flags()

	if flags.Changed("message") {
		message, _ := flags.GetString("message")
		return message, true, nil
	}

	path, _ := flags.GetString("file")
	if path == "" {
		return "", false, nil
	}
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", false, fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), true, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}
