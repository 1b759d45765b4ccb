// Package rules implements the commit message validation engine.
package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/commitbear/commitbear/internal/commitmsg"
)

var wipMarker = regexp.MustCompile(`(?i)\bwip\b`)

// Validate runs every enabled rule against raw commit text and returns the
// violation messages in rule order: shortlog checks (length, trailing
// period, wip marker, imperative mood, regex) followed by body checks. It
// is a pure function; identical inputs yield identical output.
//
// The error return is non-nil only when a configured pattern does not
// compile. Malformed commit text is never an error: empty, single-line,
// and multi-line inputs all take dedicated branches.
func Validate(raw string, cfg Config) ([]string, error) {
	if strings.TrimSpace(raw) == "" {
		if cfg.AllowEmptyCommitMessage {
			return nil, nil
		}
		return []string{"HEAD commit has no message."}, nil
	}

	msg := commitmsg.Parse(raw)

	violations, err := checkShortlog(msg.Shortlog, cfg)
	if err != nil {
		return nil, err
	}

	bodyViolations, err := checkBody(msg, cfg)
	if err != nil {
		return nil, err
	}

	return append(violations, bodyViolations...), nil
}

func checkShortlog(shortlog string, cfg Config) ([]string, error) {
	var violations []string

	if n := len([]rune(shortlog)); n > cfg.ShortlogLength {
		violations = append(violations, fmt.Sprintf(
			"Shortlog of the HEAD commit contains %d character(s). "+
				"This is %d character(s) longer than the limit (%d > %d).",
			n, n-cfg.ShortlogLength, n, cfg.ShortlogLength))
	}

	switch cfg.ShortlogTrailingPeriod {
	case TriStateEnable:
		if !strings.HasSuffix(shortlog, ".") {
			violations = append(violations,
				"Shortlog of HEAD commit contains no period at end.")
		}
	case TriStateDisable:
		if strings.HasSuffix(shortlog, ".") {
			violations = append(violations,
				"Shortlog of HEAD commit contains a period at end.")
		}
	}

	if cfg.ShortlogWIPCheck == TriStateEnable && wipMarker.MatchString(shortlog) {
		violations = append(violations,
			"This commit seems to be marked as work in progress and "+
				"should not be used in production. Treat carefully.")
	}

	if cfg.ShortlogImperativeCheck {
		if word := nonImperativeWord(shortlog); word != "" {
			violations = append(violations, fmt.Sprintf(
				"Shortlog of HEAD commit isn't in imperative mood! "+
					"Bad words are '%s'", word))
		}
	}

	if cfg.ShortlogRegex != "" {
		// Anchor both ends so the configured pattern must match the
		// whole shortlog, not a substring of it.
		re, err := regexp.Compile(`\A(?:` + cfg.ShortlogRegex + `)\z`)
		if err != nil {
			return nil, fmt.Errorf("compiling shortlog_regex: %w", err)
		}
		if !re.MatchString(shortlog) {
			violations = append(violations, fmt.Sprintf(
				"Shortlog of HEAD commit does not match given regex: %s",
				cfg.ShortlogRegex))
		}
	}

	return violations, nil
}

func checkBody(msg commitmsg.Message, cfg Config) ([]string, error) {
	if msg.HasBody && !msg.HasSeparator {
		// The remaining body checks need a well-formed body, so this
		// violation truncates them for the run.
		return []string{"No newline found between shortlog and body at " +
			"HEAD commit. Please add one."}, nil
	}

	var violations []string

	if cfg.ForceBody && msg.Body == "" {
		violations = append(violations, "No commit message body at HEAD.")
	}

	if msg.Body == "" {
		return violations, nil
	}

	ignore := make([]*regexp.Regexp, 0, len(cfg.IgnoreLengthRegex))
	for _, pattern := range cfg.IgnoreLengthRegex {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compiling ignore_length_regex %q: %w", pattern, err)
		}
		ignore = append(ignore, re)
	}

scan:
	for _, line := range msg.BodyLines() {
		for _, re := range ignore {
			if re.MatchString(line) {
				continue scan
			}
		}
		if len([]rune(line)) > cfg.BodyLineLength {
			// One aggregate violation no matter how many lines overflow.
			violations = append(violations, fmt.Sprintf(
				"Body of HEAD commit contains too long lines. Commit "+
					"body lines should not exceed %d characters.",
				cfg.BodyLineLength))
			break
		}
	}

	return violations, nil
}
