package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastiangx/wordpick/pkg/pick"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, int64(150000), cfg.Score.Baseline)
	assert.Equal(t, pick.Options{SkipDuplicates: true, WordLength: 5}, cfg.PickOptions())
}

func TestInitConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	again, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[pick]
skip_duplicate_letters = false
word_length = 6

[score]
baseline = 1000
usage_penalty = false

[dict]
words_path = "/srv/words_en_6.txt"
letters_only = true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.False(t, cfg.Pick.SkipDuplicateLetters)
	assert.Equal(t, 6, cfg.Pick.WordLength)
	assert.Equal(t, int64(1000), cfg.Score.Baseline)
	assert.True(t, cfg.Score.FrequencyBonus, "unset keys keep defaults")
	assert.False(t, cfg.Score.UsagePenalty)
	assert.Equal(t, "/srv/words_en_6.txt", cfg.Dict.WordsPath)
	assert.True(t, cfg.Dict.LettersOnly)
	assert.False(t, DefaultConfig().Dict.LettersOnly)
	assert.Equal(t, 20, cfg.CLI.DefaultLimit)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := writeConfig(t, `
[pick]
word_length = "five"
trace = true

[cli]
default_limit = 7.0
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Pick.WordLength, "bad value falls back to default")
	assert.True(t, cfg.Pick.Trace)
	assert.Equal(t, 7, cfg.CLI.DefaultLimit)
}

func TestLoadConfigBrokenSyntax(t *testing.T) {
	path := writeConfig(t, "[pick\nword_length = ")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigWithPriorityCustomPath(t *testing.T) {
	path := writeConfig(t, "[cli]\ndefault_limit = 3\n")

	cfg, used, err := LoadConfigWithPriority(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, 3, cfg.CLI.DefaultLimit)
}

func TestGetActiveConfigPath(t *testing.T) {
	abs := GetActiveConfigPath("config.toml")
	assert.True(t, filepath.IsAbs(abs))
}
