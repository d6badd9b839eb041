package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastiangx/wordpick/pkg/engine"
	"github.com/bastiangx/wordpick/pkg/pick"
	"github.com/bastiangx/wordpick/pkg/puzzle"
	"github.com/bastiangx/wordpick/pkg/score"
	"github.com/bastiangx/wordpick/pkg/usage"
)

type fixture struct {
	dir    string
	config string
	words  string
	usage  string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		dir:    dir,
		config: filepath.Join(dir, "config.toml"),
		words:  filepath.Join(dir, "words.txt"),
		usage:  filepath.Join(dir, "used.csv"),
	}
	write := func(path, body string) {
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	}
	write(f.config, "[score]\nbaseline = 10\n\n[cli]\ndefault_limit = 2\n")
	write(f.words, "house\ngrape\nbread\ncrane\ntrace\n")
	write(f.usage, "word,count\ncrane,2\ncrate,1\ngrape,1\n")
	return f
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPickCommand(t *testing.T) {
	f := newFixture(t)

	out, err := execute(t, "--config", f.config, "pick", "--words", f.words, "--shards", "2", "a:3")
	require.NoError(t, err)

	assert.Contains(t, out, "Showing 2 of 3 candidates")
	crane := strings.Index(out, "crane")
	trace := strings.Index(out, "trace")
	require.NotEqual(t, -1, crane)
	require.NotEqual(t, -1, trace)
	assert.Less(t, crane, trace, "ties are listed by word")
	assert.NotContains(t, out, "grape")
}

func TestPickCommandWithUsage(t *testing.T) {
	f := newFixture(t)

	out, err := execute(t, "--config", f.config, "pick", "--words", f.words, "--usage", f.usage, "--limit", "0", "a:3")
	require.NoError(t, err)

	// crane was used twice, the most of any word, so it falls to the bottom
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[3], "crane")
}

func TestPickCommandTrace(t *testing.T) {
	f := newFixture(t)

	out, err := execute(t, "--config", f.config, "pick", "--words", f.words, "--trace", "--exclude", "u", "a:3")
	require.NoError(t, err)

	assert.Contains(t, out, "letter_not_excluded")
	assert.Contains(t, out, "letter_in_fixed_place")
}

func TestPickCommandFrequency(t *testing.T) {
	f := newFixture(t)

	out, err := execute(t, "--config", f.config, "pick", "--words", f.words, "--freq", "--exclude", "zq")
	require.NoError(t, err)

	// every word passes, so all 25 letters are counted
	assert.Contains(t, out, "25 letters counted, 14 distinct:")
	lines := strings.Split(out, "\n")
	require.Greater(t, len(lines), 2)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(lines[1]), "e"), "e is in every word")
	assert.Contains(t, lines[1], strings.Repeat("#", freqBarWidth))
}

func TestRendererFrequencyEmpty(t *testing.T) {
	var out bytes.Buffer
	NewRenderer(&out).Frequency(pick.NewFrequency())
	assert.Equal(t, "No letters counted\n", out.String())
}

func TestPickCommandErrors(t *testing.T) {
	f := newFixture(t)

	_, err := execute(t, "--config", f.config, "pick", "--words", f.words, "--exclude", "a", "a:3")
	assert.ErrorIs(t, err, puzzle.ErrDuplicateRule)

	_, err = execute(t, "--config", f.config, "pick", "--words", filepath.Join(f.dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuildSetFromPuzzle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "round.yaml")
	require.NoError(t, os.WriteFile(path, []byte("length: 6\nletters:\n  e: {fixed: [6]}\n"), 0644))

	set, length, err := buildSet(path, "xz", []string{"r:~1"})
	require.NoError(t, err)
	assert.Equal(t, 6, length)
	assert.Equal(t, []rune{'e', 'r', 'x', 'z'}, set.Letters())
}

func TestUsageCommand(t *testing.T) {
	f := newFixture(t)

	out, err := execute(t, "--config", f.config, "usage", "--usage", f.usage, "cra")
	require.NoError(t, err)

	assert.Contains(t, out, "2 used words, highest count 2")
	assert.Contains(t, out, "crane")
	assert.Contains(t, out, "crate")
	assert.NotContains(t, out, "grape")
}

func TestVersionCommand(t *testing.T) {
	f := newFixture(t)

	out, err := execute(t, "--config", f.config, "version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}

func TestInputHandler(t *testing.T) {
	e := engine.New([]string{"grape", "crane", "trace"}, usage.NewTable(), nil)
	var out bytes.Buffer
	h := NewInputHandler(e, pick.Options{SkipDuplicates: true}, 0, nil, NewRenderer(&out))

	in := strings.NewReader("t:-\n\na:3 a:4\nquit\nc:1\n")
	require.NoError(t, h.Start(in))

	assert.Equal(t, 2, h.requestCount)
	assert.Contains(t, out.String(), "Showing 2 of 2 candidates")
	assert.NotContains(t, out.String(), "trace", "rounds after quit are not read")
}

func TestRendererEmpty(t *testing.T) {
	var out bytes.Buffer
	r := NewRenderer(&out)
	r.Ranked([]score.Ranked{}, 0)
	r.Usage(nil, 0)

	assert.Equal(t, "No candidates match these clues\nNo used words\n", out.String())
}
