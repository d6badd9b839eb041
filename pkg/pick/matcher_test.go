package pick

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastiangx/wordpick/pkg/constraint"
)

func compile(t *testing.T, set constraint.Set, length int) *constraint.Index {
	t.Helper()
	idx, err := set.Compile(length)
	require.NoError(t, err)
	return idx
}

func kinds(trace []Outcome) []CheckKind {
	out := make([]CheckKind, len(trace))
	for i, o := range trace {
		out[i] = o.Kind
	}
	return out
}

func TestMatchExcluded(t *testing.T) {
	m := NewMatcher(compile(t, constraint.Set{'x': constraint.Exclude()}, 5), Options{})

	ok, _ := m.Match("xenon", nil)
	assert.False(t, ok)
	ok, _ = m.Match("mango", nil)
	assert.True(t, ok)
}

func TestMatchFixed(t *testing.T) {
	m := NewMatcher(compile(t, constraint.Set{'a': constraint.FixedAt(3)}, 5), Options{})

	for word, want := range map[string]bool{"grape": true, "house": false, "bread": false} {
		ok, _ := m.Match(word, nil)
		assert.Equal(t, want, ok, word)
	}
}

func TestMatchForbiddenAndRequired(t *testing.T) {
	idx := compile(t, constraint.Set{'n': constraint.Elsewhere(3, 5)}, 5)
	m := NewMatcher(idx, Options{})

	tests := map[string]bool{
		"nasty": true,  // n at 1
		"unity": true,  // n at 2
		"manor": false, // n at 3
		"salon": false, // n at 5
		"grape": false, // no n at all
	}

	for word, want := range tests {
		ok, _ := m.Match(word, nil)
		assert.Equal(t, want, ok, word)
	}
}

func TestMatchDuplicates(t *testing.T) {
	idx := compile(t, constraint.Set{}, 5)

	strict := NewMatcher(idx, Options{SkipDuplicates: true})
	for _, word := range []string{"arrow", "apple"} {
		ok, _ := strict.Match(word, nil)
		assert.False(t, ok, word)
	}
	ok, _ := strict.Match("grape", nil)
	assert.True(t, ok)

	lenient := NewMatcher(idx, Options{})
	ok, trace := lenient.Match("arrow", nil)
	assert.True(t, ok)
	assert.Nil(t, trace, "no trace without tracing")
}

func TestMatchCountsFailingLetterOnly(t *testing.T) {
	m := NewMatcher(compile(t, constraint.Set{'a': constraint.FixedAt(3)}, 5), Options{})
	freq := NewFrequency()

	ok, _ := m.Match("house", freq)
	require.False(t, ok)

	// h, o and the failing u are counted; s and e are never scanned.
	assert.Equal(t, Frequency{'h': 1, 'o': 1, 'u': 1}, freq)
}

func TestMatchTrace(t *testing.T) {
	idx := compile(t, constraint.Set{'a': constraint.FixedAt(3)}, 5)
	m := NewMatcher(idx, Options{Trace: true, SkipDuplicates: true})

	ok, trace := m.Match("house", nil)
	require.False(t, ok)

	want := []CheckKind{
		CheckLength,
		CheckExcluded, CheckFixed, CheckForbidden,
		CheckExcluded, CheckFixed, CheckForbidden,
		CheckExcluded, CheckFixed,
	}
	if diff := cmp.Diff(want, kinds(trace)); diff != "" {
		t.Errorf("trace kinds mismatch (-want +got):\n%s", diff)
	}
	last := trace[len(trace)-1]
	assert.False(t, last.Passed)
	assert.Equal(t, `place 3 holds 'u' but must hold 'a'`, last.Cause)
	for _, o := range trace[:len(trace)-1] {
		assert.True(t, o.Passed, o.String())
	}

	ok, trace = m.Match("grape", nil)
	require.True(t, ok)
	assert.Len(t, trace, 18)
	assert.Equal(t, CheckLength, trace[0].Kind)
	assert.Equal(t, CheckRequired, trace[16].Kind)
	assert.Equal(t, CheckDuplicates, trace[17].Kind)
	assert.Equal(t, "no repeated letters", trace[17].Cause)
}

func TestMatchTraceDuplicateCheckOff(t *testing.T) {
	m := NewMatcher(compile(t, constraint.Set{}, 0), Options{Trace: true})

	ok, trace := m.Match("arrow", nil)
	require.True(t, ok)
	last := trace[len(trace)-1]
	assert.Equal(t, Outcome{Kind: CheckDuplicates, Passed: true, Cause: "duplicate letter check turned off"}, last)
}

func TestMatchMissingRequiredCause(t *testing.T) {
	idx := compile(t, constraint.Set{'n': constraint.Elsewhere(3), 'k': constraint.Elsewhere()}, 5)
	m := NewMatcher(idx, Options{Trace: true})

	ok, trace := m.Match("grape", nil)
	require.False(t, ok)
	last := trace[len(trace)-1]
	assert.Equal(t, CheckRequired, last.Kind)
	assert.Equal(t, "required letters k, n not found", last.Cause)
}

func TestMatchWordLength(t *testing.T) {
	m := NewMatcher(compile(t, constraint.Set{}, 5), Options{WordLength: 5, Trace: true})
	freq := NewFrequency()

	ok, trace := m.Match("grapes", freq)
	assert.False(t, ok)
	assert.Empty(t, freq, "a word of the wrong length is not scanned")
	require.Len(t, trace, 1)
	assert.Equal(t, CheckLength, trace[0].Kind)
	assert.Equal(t, "word has 6 letters, want 5", trace[0].Cause)

	ok, _ = m.Match("grape", freq)
	assert.True(t, ok)
	assert.Equal(t, 5, freq.Total())
}

func TestMatchShorterThanFixedPlace(t *testing.T) {
	m := NewMatcher(compile(t, constraint.Set{'a': constraint.FixedAt(6)}, 0), Options{Trace: true})
	freq := NewFrequency()

	ok, trace := m.Match("grape", freq)
	assert.False(t, ok)
	assert.Empty(t, freq, "a word too short for the fixed places is not scanned")
	require.Len(t, trace, 1)
	assert.Equal(t, Outcome{Kind: CheckLength, Passed: false, Cause: "word has 5 letters, fixed letters need at least 6"}, trace[0])

	ok, _ = m.Match("grapes", freq)
	assert.False(t, ok, "s sits at place 6")
	ok, _ = m.Match("banana", freq)
	assert.True(t, ok)
}

func TestRunRejectsWordsShorterThanFixedPlace(t *testing.T) {
	for _, opts := range []Options{{}, DefaultOptions()} {
		res, err := Run([]string{"grape", "grapes", "tundra"}, constraint.Set{'a': constraint.FixedAt(6)}, opts)
		require.NoError(t, err)
		assert.Equal(t, []string{"tundra"}, res.Candidates)
	}
}

func TestMatchRunes(t *testing.T) {
	idx := compile(t, constraint.Set{
		'к': constraint.Elsewhere(3, 2),
		'а': constraint.FixedAt(5),
		'о': constraint.Exclude(),
	}, 5)
	m := NewMatcher(idx, Options{WordLength: 5})

	ok, _ := m.Match("кирка", nil)
	assert.True(t, ok)
	ok, _ = m.Match("книга", nil)
	assert.True(t, ok)
	ok, _ = m.Match("точка", nil)
	assert.False(t, ok)
}

func TestNilIndexMatchesEverything(t *testing.T) {
	m := NewMatcher(nil, Options{})
	ok, _ := m.Match("zzzzz", nil)
	assert.True(t, ok)
}
