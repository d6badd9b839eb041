/*
Package pick filters a word list against a compiled constraint index.

Each word is scanned place by place. At every place the letter is first
counted into the caller's Frequency table, then three checks run in order:
the letter is not excluded, it matches the letter fixed at that place, and
it is not forbidden at that place. The first failing check ends the scan, so
letters after it are never counted. Words too short to hold every fixed
letter, or of the wrong length when one is set, are rejected before the scan
and add nothing to the table. A word that survives every place must
also contain all required letters and, when duplicates are skipped, must not
repeat a letter.

	idx, err := constraint.Set{'a': constraint.FixedAt(3)}.Compile(5)
	res := pick.Filter(words, idx, pick.DefaultOptions())
	// res.Candidates, res.Frequency, res.Trace

Rejection is the normal outcome of a check and is never reported as an error.
*/
package pick

import (
	"unicode/utf8"

	"github.com/bastiangx/wordpick/pkg/constraint"
)

// Options controls how words are evaluated.
type Options struct {
	// SkipDuplicates rejects words that repeat any letter.
	SkipDuplicates bool `msgpack:"skip_dup"`
	// Trace records every check outcome per word.
	Trace bool `msgpack:"trace"`
	// WordLength rejects words of any other length before scanning. 0 disables the check.
	WordLength int `msgpack:"length"`
}

// DefaultOptions skips words with repeated letters and does not trace.
func DefaultOptions() Options {
	return Options{SkipDuplicates: true}
}

// Matcher evaluates single words against an Index.
type Matcher struct {
	idx  *constraint.Index
	opts Options
}

// NewMatcher returns a matcher for idx. A nil index matches every word.
func NewMatcher(idx *constraint.Index, opts Options) *Matcher {
	if idx == nil {
		idx = constraint.Empty()
	}
	return &Matcher{idx: idx, opts: opts}
}

// Match reports whether word satisfies the index. Every scanned letter is
// counted into freq, including the one that fails a check; freq may be nil.
// The returned trace is nil unless tracing is enabled.
func (m *Matcher) Match(word string, freq Frequency) (bool, []Outcome) {
	var trace []Outcome
	record := func(o Outcome) bool {
		if m.opts.Trace {
			trace = append(trace, o)
		}
		return o.Passed
	}

	switch {
	case m.opts.WordLength > 0:
		if !record(m.checkLength(word)) {
			return false, trace
		}
	case m.idx.MinLength > 0:
		if !record(m.checkMinLength(word)) {
			return false, trace
		}
	}

	missing := make(map[rune]struct{}, len(m.idx.Required))
	for r := range m.idx.Required {
		missing[r] = struct{}{}
	}
	seen := make(map[rune]struct{}, len(word))
	passed := 0

	pos := 0
	for _, r := range word {
		pos++
		if freq != nil {
			freq.Add(r)
		}

		if !record(m.checkExcluded(pos, r)) {
			return false, trace
		}
		if !record(m.checkFixed(pos, r)) {
			return false, trace
		}
		if !record(m.checkForbidden(pos, r)) {
			return false, trace
		}

		passed++
		seen[r] = struct{}{}
		delete(missing, r)
	}

	if !record(m.checkRequired(missing)) {
		return false, trace
	}
	if !record(m.checkDuplicates(passed, len(seen))) {
		return false, trace
	}
	return true, trace
}

func (m *Matcher) checkLength(word string) Outcome {
	n := utf8.RuneCountInString(word)
	if n != m.opts.WordLength {
		return fail(CheckLength, "word has %d letters, want %d", n, m.opts.WordLength)
	}
	return pass(CheckLength, "word has %d letters", n)
}

func (m *Matcher) checkMinLength(word string) Outcome {
	n := utf8.RuneCountInString(word)
	if n < m.idx.MinLength {
		return fail(CheckLength, "word has %d letters, fixed letters need at least %d", n, m.idx.MinLength)
	}
	return pass(CheckLength, "word has %d letters, fixed letters need at least %d", n, m.idx.MinLength)
}

func (m *Matcher) checkExcluded(pos int, r rune) Outcome {
	if m.idx.IsExcluded(r) {
		return fail(CheckExcluded, "letter %q at place %d is excluded from the word", r, pos)
	}
	return pass(CheckExcluded, "letter %q is not excluded", r)
}

func (m *Matcher) checkFixed(pos int, r rune) Outcome {
	want, ok := m.idx.Fixed(pos)
	switch {
	case !ok:
		return pass(CheckFixed, "place %d with letter %q has no fixed letter", pos, r)
	case want != r:
		return fail(CheckFixed, "place %d holds %q but must hold %q", pos, r, want)
	}
	return pass(CheckFixed, "place %d holds fixed letter %q", pos, r)
}

func (m *Matcher) checkForbidden(pos int, r rune) Outcome {
	forbidden := m.idx.Forbidden(pos)
	if len(forbidden) == 0 {
		return pass(CheckForbidden, "place %d with letter %q has no forbidden letters", pos, r)
	}
	for _, f := range forbidden {
		if f == r {
			return fail(CheckForbidden, "place %d holds %q which must not be there (forbidden: %s)", pos, r, joinLetters(forbidden))
		}
	}
	return pass(CheckForbidden, "place %d holds none of %s", pos, joinLetters(forbidden))
}

func (m *Matcher) checkRequired(missing map[rune]struct{}) Outcome {
	if len(missing) == 0 {
		return pass(CheckRequired, "all required letters found")
	}
	letters := make([]rune, 0, len(missing))
	for _, r := range m.idx.RequiredLetters() {
		if _, ok := missing[r]; ok {
			letters = append(letters, r)
		}
	}
	return fail(CheckRequired, "required letters %s not found", joinLetters(letters))
}

func (m *Matcher) checkDuplicates(passed, distinct int) Outcome {
	if !m.opts.SkipDuplicates {
		return pass(CheckDuplicates, "duplicate letter check turned off")
	}
	if passed != distinct {
		return fail(CheckDuplicates, "word repeats a letter")
	}
	return pass(CheckDuplicates, "no repeated letters")
}
