package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validate runs the engine and fails the test on configuration errors,
// which none of these cases should produce.
func validate(t *testing.T, raw string, cfg Config) []string {
	t.Helper()
	violations, err := Validate(raw, cfg)
	require.NoError(t, err)
	return violations
}

func TestValidateEmptyMessage(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t,
		[]string{"HEAD commit has no message."},
		validate(t, "", cfg),
		"an empty message yields exactly the no-message violation")

	assert.Equal(t,
		[]string{"HEAD commit has no message."},
		validate(t, "  \n\n ", cfg),
		"whitespace-only text counts as empty")

	cfg.AllowEmptyCommitMessage = true
	assert.Empty(t, validate(t, "", cfg))

	// No other checks run for an empty message, even when they would
	// otherwise fire.
	cfg.AllowEmptyCommitMessage = false
	cfg.ForceBody = true
	cfg.ShortlogTrailingPeriod = TriStateEnable
	assert.Equal(t, []string{"HEAD commit has no message."}, validate(t, "", cfg))
}

func TestValidatePureOneLiner(t *testing.T) {
	assert.Empty(t, validate(t, "one-liner-message\n", DefaultConfig()))
}

func TestValidateShortlogLength(t *testing.T) {
	cfg := DefaultConfig()

	// Exactly at the default limit of 50.
	assert.Empty(t, validate(t, "Commit messages that nearly exceed default limit..", cfg))

	cfg.ShortlogLength = 17
	assert.Equal(t,
		[]string{"Shortlog of the HEAD commit contains 50 character(s). " +
			"This is 33 character(s) longer than the limit (50 > 17)."},
		validate(t, "Commit messages that nearly exceed default limit..", cfg))

	cfg = DefaultConfig()
	assert.Equal(t,
		[]string{"Shortlog of the HEAD commit contains 51 character(s). " +
			"This is 1 character(s) longer than the limit (51 > 50)."},
		validate(t, "Add a very long shortlog for a bad project history.", cfg))
}

func TestValidateShortlogTrailingPeriod(t *testing.T) {
	withDot := "Shortlog with dot."
	withoutDot := "Shortlog without dot"

	cfg := DefaultConfig()

	cfg.ShortlogTrailingPeriod = TriStateEnable
	assert.Empty(t, validate(t, withDot, cfg))
	assert.Equal(t,
		[]string{"Shortlog of HEAD commit contains no period at end."},
		validate(t, withoutDot, cfg))

	cfg.ShortlogTrailingPeriod = TriStateDisable
	assert.Equal(t,
		[]string{"Shortlog of HEAD commit contains a period at end."},
		validate(t, withDot, cfg))
	assert.Empty(t, validate(t, withoutDot, cfg))

	cfg.ShortlogTrailingPeriod = TriStateIgnore
	assert.Empty(t, validate(t, withDot, cfg))
	assert.Empty(t, validate(t, withoutDot, cfg))
}

func TestValidateShortlogWIP(t *testing.T) {
	cfg := DefaultConfig()

	cfg.ShortlogWIPCheck = TriStateEnable
	assert.Equal(t,
		[]string{"This commit seems to be marked as work in progress and " +
			"should not be used in production. Treat carefully."},
		validate(t, "[wip] Shortlog", cfg))
	assert.Equal(t,
		[]string{"This commit seems to be marked as work in progress and " +
			"should not be used in production. Treat carefully."},
		validate(t, "WIP: do not merge", cfg))
	assert.Empty(t, validate(t, "Shortlog as usual", cfg))

	cfg.ShortlogWIPCheck = TriStateDisable
	assert.Empty(t, validate(t, "[wip] Shortlog", cfg))

	cfg.ShortlogWIPCheck = TriStateIgnore
	assert.Empty(t, validate(t, "[wip] Shortlog", cfg))
}

func TestValidateShortlogImperative(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShortlogImperativeCheck = true

	assert.Empty(t, validate(t, "tag: Add shortlog in imperative", cfg),
		"a leading tag: prefix is stripped before inspecting the first word")

	assert.Equal(t,
		[]string{"Shortlog of HEAD commit isn't in imperative mood! Bad words are 'Added'"},
		validate(t, "Added invalid shortlog", cfg),
		"the original casing of the word is preserved in the message")

	assert.Equal(t,
		[]string{"Shortlog of HEAD commit isn't in imperative mood! Bad words are 'Adding'"},
		validate(t, "Adding another invalid shortlog", cfg))

	cfg.ShortlogImperativeCheck = false
	assert.Empty(t, validate(t, "Added another invalid shortlog", cfg))
}

func TestValidateShortlogRegex(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShortlogRegex = ".*?: .*[^.]"

	assert.Empty(t, validate(t, "tag: message", cfg))

	assert.Equal(t,
		[]string{"Shortlog of HEAD commit does not match given regex: .*?: .*[^.]"},
		validate(t, "tag: message invalid.", cfg))

	assert.Equal(t,
		[]string{"Shortlog of HEAD commit does not match given regex: .*?: .*[^.]"},
		validate(t, "SuCkS cOmPleTely", cfg))

	// Full-match semantics: the pattern must cover the whole shortlog.
	cfg.ShortlogRegex = "abcdefg"
	assert.Empty(t, validate(t, "abcdefg", cfg))
	assert.Equal(t,
		[]string{"Shortlog of HEAD commit does not match given regex: abcdefg"},
		validate(t, "abcdefgNO MATCH", cfg))
}

func TestValidateShortlogRegexInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShortlogRegex = "["

	_, err := Validate("Shortlog", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shortlog_regex")
}

func TestValidateBody(t *testing.T) {
	cfg := DefaultConfig()

	assert.Empty(t, validate(t,
		"Commits message with a body\n\n"+
			"nearly exceeding the default length of a body, but not quite. haaaaaands",
		cfg))

	assert.Empty(t, validate(t, "Shortlog only", cfg))

	cfg.ForceBody = true
	assert.Equal(t,
		[]string{"No commit message body at HEAD."},
		validate(t, "Shortlog only ...", cfg))

	cfg = DefaultConfig()
	assert.Equal(t,
		[]string{"No newline found between shortlog and body at HEAD commit. Please add one."},
		validate(t, "Shortlog\nOops, body too early", cfg))

	// The missing separator truncates the force-body and line-length
	// checks for the run.
	cfg.ForceBody = true
	cfg.BodyLineLength = 5
	assert.Equal(t,
		[]string{"No newline found between shortlog and body at HEAD commit. Please add one."},
		validate(t, "Shortlog\nOops, body too early", cfg))
}

func TestValidateBodyLineLength(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BodyLineLength = 41

	// Two overflowing lines still produce a single aggregate violation.
	assert.Equal(t,
		[]string{"Body of HEAD commit contains too long lines. " +
			"Commit body lines should not exceed 41 characters."},
		validate(t,
			"Shortlog\n\n"+
				"This line is ok.\n"+
				"This line is by far too long (in this case).\n"+
				"This one too, blablablablablablablablabla.",
			cfg))

	cfg.IgnoreLengthRegex = []string{"^.*too long"}
	assert.Empty(t, validate(t,
		"Shortlog\n\n"+
			"This line is ok.\n"+
			"This line is by far too long (in this case).",
		cfg))
}

func TestValidateBodyIgnoreRegexInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IgnoreLengthRegex = []string{"["}

	_, err := Validate("Shortlog\n\nBody", cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ignore_length_regex")
}

func TestValidateOrdering(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShortlogLength = 10
	cfg.ShortlogTrailingPeriod = TriStateDisable
	cfg.ShortlogImperativeCheck = true
	cfg.BodyLineLength = 10

	violations := validate(t,
		"Added a shortlog over the limit.\n\nA body line over the limit",
		cfg)

	require.Len(t, violations, 4)
	assert.Equal(t, "Shortlog of the HEAD commit contains 32 character(s). "+
		"This is 22 character(s) longer than the limit (32 > 10).", violations[0])
	assert.Equal(t, "Shortlog of HEAD commit contains a period at end.", violations[1])
	assert.Equal(t, "Shortlog of HEAD commit isn't in imperative mood! "+
		"Bad words are 'Added'", violations[2])
	assert.Equal(t, "Body of HEAD commit contains too long lines. "+
		"Commit body lines should not exceed 10 characters.", violations[3])
}

func TestValidateIdempotent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ShortlogLength = 17
	cfg.ShortlogTrailingPeriod = TriStateDisable
	raw := "Commit messages that nearly exceed default limit..\n\nBody"

	first := validate(t, raw, cfg)
	second := validate(t, raw, cfg)
	assert.Equal(t, first, second)
}
