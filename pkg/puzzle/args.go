package puzzle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bastiangx/wordpick/internal/utils"
	"github.com/bastiangx/wordpick/pkg/constraint"
)

// ParseArgs reads the compact command line form, one rule per argument:
//
//	x:-      x is not in the word
//	a:2,4    a sits at places 2 and 4
//	n:~3,5   n is in the word but not at places 3 or 5
//	r:~      r is in the word somewhere
//	q:?      nothing is known about q
func ParseArgs(args []string) (constraint.Set, error) {
	set := make(constraint.Set, len(args))
	for _, arg := range args {
		letter, rule, err := parseArg(arg)
		if err != nil {
			return nil, err
		}
		if _, dup := set[letter]; dup {
			return nil, fmt.Errorf("%q: %w", string(letter), ErrDuplicateRule)
		}
		set[letter] = rule
	}
	return set, nil
}

// Merge adds the rules of extra to base. A letter present in both is an error.
func Merge(base, extra constraint.Set) (constraint.Set, error) {
	out := make(constraint.Set, len(base)+len(extra))
	for r, rule := range base {
		out[r] = rule
	}
	for _, r := range extra.Letters() {
		if _, dup := out[r]; dup {
			return nil, fmt.Errorf("%q: %w", string(r), ErrDuplicateRule)
		}
		out[r] = extra[r]
	}
	return out, nil
}

// ExcludeAll returns a set excluding every letter of letters.
func ExcludeAll(letters string) (constraint.Set, error) {
	set := make(constraint.Set, len(letters))
	for _, r := range letters {
		if _, ok := utils.SingleLetter(string(r)); !ok {
			return nil, fmt.Errorf("%q: %w", string(r), constraint.ErrBadLetter)
		}
		set[r] = constraint.Exclude()
	}
	return set, nil
}

func parseArg(arg string) (rune, constraint.Letter, error) {
	key, rule, found := strings.Cut(arg, ":")
	if !found {
		return 0, constraint.Letter{}, fmt.Errorf("%q: want <letter>:<rule>", arg)
	}
	letter, ok := utils.SingleLetter(key)
	if !ok {
		return 0, constraint.Letter{}, fmt.Errorf("%q: %w", arg, constraint.ErrBadLetter)
	}

	switch {
	case rule == "-":
		return letter, constraint.Exclude(), nil
	case rule == "?":
		return letter, constraint.None(), nil
	case strings.HasPrefix(rule, "~"):
		places, err := parsePlaces(strings.TrimPrefix(rule, "~"))
		if err != nil {
			return 0, constraint.Letter{}, fmt.Errorf("%q: %w", arg, err)
		}
		return letter, constraint.Elsewhere(places...), nil
	}

	places, err := parsePlaces(rule)
	if err != nil {
		return 0, constraint.Letter{}, fmt.Errorf("%q: %w", arg, err)
	}
	if len(places) == 0 {
		return 0, constraint.Letter{}, fmt.Errorf("%q: %w", arg, constraint.ErrNoPositions)
	}
	return letter, constraint.FixedAt(places...), nil
}

func parsePlaces(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	places := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadPlaceNumber, f)
		}
		places = append(places, n)
	}
	return places, nil
}
