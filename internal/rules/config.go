package rules

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// TriState is a three-valued option state. It distinguishes a check that
// was explicitly switched off from one that was never configured, which
// matters for options like the trailing-period check where both enabled
// and disabled carry meaning of their own.
type TriState string

const (
	// TriStateIgnore skips the check entirely. The TriState zero value
	// behaves the same, so an unconfigured option is inert.
	TriStateIgnore TriState = "ignore"

	// TriStateEnable turns the check on. For the trailing-period check
	// this means a period is required.
	TriStateEnable TriState = "enable"

	// TriStateDisable turns the check off explicitly. For the
	// trailing-period check this means a period is forbidden.
	TriStateDisable TriState = "disable"
)

// ParseTriState converts a user-supplied string into a TriState.
func ParseTriState(s string) (TriState, error) {
	switch TriState(s) {
	case TriStateIgnore, TriStateEnable, TriStateDisable:
		return TriState(s), nil
	case "":
		return TriStateIgnore, nil
	}
	return "", fmt.Errorf("unknown tri-state value: %s (must be 'enable', 'disable', or 'ignore')", s)
}

// UnmarshalYAML accepts booleans (true enables, false disables), null
// (ignore), and the literal state names.
func (t *TriState) UnmarshalYAML(value *yaml.Node) error {
	switch value.Tag {
	case "!!bool":
		var b bool
		if err := value.Decode(&b); err != nil {
			return err
		}
		if b {
			*t = TriStateEnable
		} else {
			*t = TriStateDisable
		}
		return nil
	case "!!null":
		*t = TriStateIgnore
		return nil
	case "!!str":
		parsed, err := ParseTriState(value.Value)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	}
	return fmt.Errorf("invalid tri-state value of kind %s", value.Tag)
}

// Default option values applied when an option is not configured.
const (
	DefaultShortlogLength = 50
	DefaultBodyLineLength = 73
)

// Config is an immutable snapshot of the rule options for one validation
// run. A fresh Config is built per run; the engine never mutates it.
type Config struct {
	// AllowEmptyCommitMessage suppresses the no-message violation for
	// empty commit messages.
	AllowEmptyCommitMessage bool

	// ShortlogLength is the maximum shortlog length in characters.
	ShortlogLength int

	// ShortlogTrailingPeriod requires (enable) or forbids (disable) a
	// period at the end of the shortlog.
	ShortlogTrailingPeriod TriState

	// ShortlogWIPCheck flags shortlogs carrying a work-in-progress
	// marker when enabled.
	ShortlogWIPCheck TriState

	// ShortlogImperativeCheck flags shortlogs whose first word is not in
	// imperative mood.
	ShortlogImperativeCheck bool

	// ShortlogRegex, when non-empty, must fully match the shortlog.
	ShortlogRegex string

	// ForceBody requires a non-empty commit message body.
	ForceBody bool

	// BodyLineLength is the maximum body line length in characters.
	BodyLineLength int

	// IgnoreLengthRegex exempts body lines matching any of the patterns
	// from the line-length check. Patterns use partial-match semantics.
	IgnoreLengthRegex []string
}

// DefaultConfig returns a Config with every check at its default state:
// length limits at 50/73, tri-states ignored, boolean checks off.
func DefaultConfig() Config {
	return Config{
		ShortlogLength:         DefaultShortlogLength,
		ShortlogTrailingPeriod: TriStateIgnore,
		ShortlogWIPCheck:       TriStateIgnore,
		BodyLineLength:         DefaultBodyLineLength,
	}
}
