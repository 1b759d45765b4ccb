package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commitbear/commitbear/internal/rules"
)

func TestParseFullConfig(t *testing.T) {
	cfg, err := Parse([]byte(`
rules:
  allow_empty_commit_message: true
  shortlog_length: 60
  shortlog_trailing_period: false
  shortlog_wip_check: true
  shortlog_imperative_check: true
  shortlog_regex: '.*?: .*'
  force_body: true
  body_line_length: 80
  ignore_length_regex:
    - '^.*https?://'
    - 'Signed-off-by'
`))
	require.NoError(t, err)

	assert.True(t, cfg.AllowEmptyCommitMessage)
	assert.Equal(t, 60, cfg.ShortlogLength)
	assert.Equal(t, rules.TriStateDisable, cfg.ShortlogTrailingPeriod)
	assert.Equal(t, rules.TriStateEnable, cfg.ShortlogWIPCheck)
	assert.True(t, cfg.ShortlogImperativeCheck)
	assert.Equal(t, ".*?: .*", cfg.ShortlogRegex)
	assert.True(t, cfg.ForceBody)
	assert.Equal(t, 80, cfg.BodyLineLength)
	assert.Equal(t, []string{"^.*https?://", "Signed-off-by"}, cfg.IgnoreLengthRegex)
}

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("rules: {}\n"))
	require.NoError(t, err)
	assert.Equal(t, rules.DefaultConfig(), cfg)

	cfg, err = Parse([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, rules.DefaultConfig(), cfg)
}

func TestParseTriStateNull(t *testing.T) {
	cfg, err := Parse([]byte("rules:\n  shortlog_trailing_period: ~\n"))
	require.NoError(t, err)
	assert.Equal(t, rules.TriStateIgnore, cfg.ShortlogTrailingPeriod)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("rules: [not, a, mapping]"))
	assert.Error(t, err)

	_, err = Parse([]byte("rules:\n  shortlog_wip_check: maybe\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("rules:\n  shortlog_length: 10\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.ShortlogLength)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
