package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dropdown/internal/config"
	"dropdown/internal/domain"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "choices.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"id": "o1", "text": "Apple", "value": "apple", "selected": true},
		{"id": "o2", "text": "Banana", "disabled": true}
	]`), 0o644))

	out, err := execute(t, "validate", path)

	require.NoError(t, err)
	assert.Contains(t, out, "2 choices (1 disabled)")
	assert.Contains(t, out, "preselected: Apple")
}

func TestValidateCommandReportsSkipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "choices.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- id: a
  text: Alpha
- id: a
  text: Again
`), 0o644))

	out, err := execute(t, "validate", path)

	assert.ErrorContains(t, err, "1 invalid entries")
	assert.Contains(t, out, "skipped:")
	assert.Contains(t, out, "1 choices")
}

func TestValidateCommandMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "choices.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"choices": [`), 0o644))

	_, err := execute(t, "validate", path)

	assert.ErrorIs(t, err, domain.ErrMalformedInput)
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dropdown", "config.toml")

	out, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	cfg, err := config.NewConfigService(path).LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	_, err = execute(t, "config", "init", path)
	assert.ErrorContains(t, err, "already exists")

	_, err = execute(t, "config", "init", "--force", path)
	assert.NoError(t, err)
}

func TestApplyOverridesOnlyChangedFlags(t *testing.T) {
	cmd := NewRootCommand()
	opts := &RootOptions{}
	require.NoError(t, cmd.ParseFlags([]string{"--label", "Fruit", "--exit-on-select"}))

	cfg := config.DefaultConfig()
	cfg.Language = "fr"
	opts.Label, _ = cmd.Flags().GetString("label")
	opts.ExitOnSelect, _ = cmd.Flags().GetBool("exit-on-select")
	applyOverrides(cmd, opts, cfg)

	assert.Equal(t, "Fruit", cfg.Label)
	assert.True(t, cfg.ExitOnSelect)
	assert.Equal(t, "fr", cfg.Language, "unset flags keep config values")
	assert.Equal(t, "dropdown.log", cfg.Log.File)
}

func TestWatchablePath(t *testing.T) {
	dir := t.TempDir()

	assert.Empty(t, watchablePath(""))
	assert.Equal(t, filepath.Join(dir, "later.json"), watchablePath(filepath.Join(dir, "later.json")),
		"a file that does not exist yet is watched through its directory")
	assert.Empty(t, watchablePath(filepath.Join(dir, "missing", "choices.json")))
}

func TestSetupLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dropdown.log")

	logger, closeFn, err := setupLogger(path, log.DebugLevel)
	require.NoError(t, err)
	t.Cleanup(func() { log.SetDefault(log.New(io.Discard)) })
	logger.Debug("hello", "key", "value")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
