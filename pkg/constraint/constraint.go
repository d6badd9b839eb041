/*
Package constraint describes what is known about each letter of a hidden word
and compiles that knowledge into lookup tables for the matcher.

A letter is either excluded from the word, fixed at one or more places,
required somewhere except at some places, or unconstrained:

	set := constraint.Set{
		'x': constraint.Exclude(),
		'a': constraint.FixedAt(2),
		'n': constraint.Elsewhere(3, 5),
	}
	idx, err := set.Compile(5)

Places are 1-based. Compile fails fast on configuration errors, so no word is
ever scanned against a contradictory set.
*/
package constraint

import (
	"fmt"
	"slices"
	"strconv"
	"unicode"
	"strings"
)

// Kind tags the variant of a Letter constraint.
type Kind int

const (
	Unconstrained Kind = iota
	Excluded
	Fixed
	RequiredElsewhere
)

func (k Kind) String() string {
	switch k {
	case Unconstrained:
		return "unconstrained"
	case Excluded:
		return "excluded"
	case Fixed:
		return "fixed"
	case RequiredElsewhere:
		return "elsewhere"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Letter is the rule for a single letter. Positions is only meaningful for
// Fixed (places the letter must occupy) and RequiredElsewhere (places it
// must not occupy).
type Letter struct {
	Kind      Kind
	Positions []int
}

// Exclude returns a rule forbidding the letter anywhere in the word.
func Exclude() Letter {
	return Letter{Kind: Excluded}
}

// FixedAt returns a rule placing the letter at every given place.
func FixedAt(positions ...int) Letter {
	return Letter{Kind: Fixed, Positions: positions}
}

// Elsewhere returns a rule requiring the letter in the word but never at the given places.
func Elsewhere(positions ...int) Letter {
	return Letter{Kind: RequiredElsewhere, Positions: positions}
}

// None returns the empty rule, equivalent to leaving the letter out of the set.
func None() Letter {
	return Letter{}
}

func (l Letter) String() string {
	if len(l.Positions) == 0 {
		return l.Kind.String()
	}
	parts := make([]string, len(l.Positions))
	for i, p := range l.Positions {
		parts[i] = strconv.Itoa(p)
	}
	return fmt.Sprintf("%s(%s)", l.Kind, strings.Join(parts, ","))
}

// Set maps each letter to its rule.
type Set map[rune]Letter

// Letters returns the letters of the set in ascending order.
func (s Set) Letters() []rune {
	letters := make([]rune, 0, len(s))
	for r := range s {
		letters = append(letters, r)
	}
	slices.Sort(letters)
	return letters
}

// Lower folds every letter to lower case, for word lists that are lower-cased
// on load. Two letters folding to the same one is an error.
func (s Set) Lower() (Set, error) {
	out := make(Set, len(s))
	for _, r := range s.Letters() {
		lower := unicode.ToLower(r)
		if _, dup := out[lower]; dup {
			return nil, &ConfigError{Letter: r, Other: lower, Err: ErrDuplicateLetter}
		}
		out[lower] = s[r]
	}
	return out, nil
}
