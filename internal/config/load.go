// Package config loads rule options from a commitbear configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/commitbear/commitbear/internal/rules"
)

// DefaultFileName is looked up in the repository directory when no config
// path is given.
const DefaultFileName = ".commitbear.yaml"

// file mirrors the on-disk YAML layout. Numeric options are pointers so an
// absent key falls back to its default instead of zero.
type file struct {
	Rules struct {
		AllowEmptyCommitMessage bool           `yaml:"allow_empty_commit_message"`
		ShortlogLength          *int           `yaml:"shortlog_length"`
		ShortlogTrailingPeriod  rules.TriState `yaml:"shortlog_trailing_period"`
		ShortlogWIPCheck        rules.TriState `yaml:"shortlog_wip_check"`
		ShortlogImperativeCheck bool           `yaml:"shortlog_imperative_check"`
		ShortlogRegex           string         `yaml:"shortlog_regex"`
		ForceBody               bool           `yaml:"force_body"`
		BodyLineLength          *int           `yaml:"body_line_length"`
		IgnoreLengthRegex       []string       `yaml:"ignore_length_regex"`
	} `yaml:"rules"`
}

// Load reads the file at path and returns the configured rule options
// applied on top of the defaults.
func Load(path string) (rules.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return rules.Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return rules.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML config data into rule options on top of the defaults.
func Parse(data []byte) (rules.Config, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return rules.Config{}, fmt.Errorf("parsing config: %w", err)
	}

	cfg := rules.DefaultConfig()
	cfg.AllowEmptyCommitMessage = f.Rules.AllowEmptyCommitMessage
	if f.Rules.ShortlogLength != nil {
		cfg.ShortlogLength = *f.Rules.ShortlogLength
	}
	if f.Rules.ShortlogTrailingPeriod != "" {
		cfg.ShortlogTrailingPeriod = f.Rules.ShortlogTrailingPeriod
	}
	if f.Rules.ShortlogWIPCheck != "" {
		cfg.ShortlogWIPCheck = f.Rules.ShortlogWIPCheck
	}
	cfg.ShortlogImperativeCheck = f.Rules.ShortlogImperativeCheck
	cfg.ShortlogRegex = f.Rules.ShortlogRegex
	cfg.ForceBody = f.Rules.ForceBody
	if f.Rules.BodyLineLength != nil {
		cfg.BodyLineLength = *f.Rules.BodyLineLength
	}
	cfg.IgnoreLengthRegex = f.Rules.IgnoreLengthRegex

	return cfg, nil
}
