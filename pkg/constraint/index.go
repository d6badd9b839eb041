package constraint

import (
	"slices"

	"github.com/charmbracelet/log"
)

// Index is the compiled form of a Set, keyed the way the matcher reads it.
type Index struct {
	// Excluded holds letters that must not appear anywhere.
	Excluded map[rune]struct{}
	// FixedAt maps a place to the only letter allowed there.
	FixedAt map[int]rune
	// ForbiddenAt maps a place to the letters that must not sit there, sorted.
	ForbiddenAt map[int][]rune
	// Required holds letters that must appear somewhere in an accepted word.
	Required map[rune]struct{}
	// MinLength is the highest fixed place. Shorter words cannot hold every
	// fixed letter.
	MinLength int
}

// Empty returns an index with no constraints.
func Empty() *Index {
	return &Index{
		Excluded:    make(map[rune]struct{}),
		FixedAt:     make(map[int]rune),
		ForbiddenAt: make(map[int][]rune),
		Required:    make(map[rune]struct{}),
	}
}

// Compile validates the set and builds its Index. When length is positive
// every place must lie in 1..length; otherwise places only need to be positive.
func (s Set) Compile(length int) (*Index, error) {
	idx := Empty()

	for _, letter := range s.Letters() {
		rule := s[letter]

		switch rule.Kind {
		case Unconstrained:
			continue
		case Excluded:
			idx.Excluded[letter] = struct{}{}
		case Fixed:
			if len(rule.Positions) == 0 {
				return nil, &ConfigError{Letter: letter, Err: ErrNoPositions}
			}
			for _, pos := range rule.Positions {
				if err := checkPosition(letter, pos, length); err != nil {
					return nil, err
				}
				if other, taken := idx.FixedAt[pos]; taken {
					return nil, &ConfigError{Letter: letter, Position: pos, Other: other, Err: ErrPositionTaken}
				}
				idx.FixedAt[pos] = letter
				idx.MinLength = max(idx.MinLength, pos)
			}
		case RequiredElsewhere:
			for _, pos := range rule.Positions {
				if err := checkPosition(letter, pos, length); err != nil {
					return nil, err
				}
				if !slices.Contains(idx.ForbiddenAt[pos], letter) {
					idx.ForbiddenAt[pos] = append(idx.ForbiddenAt[pos], letter)
				}
			}
			idx.Required[letter] = struct{}{}
		default:
			return nil, &ConfigError{Letter: letter, Err: ErrUnknownKind}
		}
	}

	log.Debug("Compiled constraints",
		"excluded", len(idx.Excluded),
		"fixed", len(idx.FixedAt),
		"forbidden", len(idx.ForbiddenAt),
		"required", len(idx.Required),
		"minLength", idx.MinLength)

	return idx, nil
}

func checkPosition(letter rune, pos, length int) error {
	if pos < 1 || (length > 0 && pos > length) {
		return &ConfigError{Letter: letter, Position: pos, Err: ErrBadPosition}
	}
	return nil
}

// IsExcluded reports whether r must not appear in the word.
func (idx *Index) IsExcluded(r rune) bool {
	_, ok := idx.Excluded[r]
	return ok
}

// Fixed returns the letter fixed at pos, if any.
func (idx *Index) Fixed(pos int) (rune, bool) {
	r, ok := idx.FixedAt[pos]
	return r, ok
}

// Forbidden returns the letters that must not sit at pos.
func (idx *Index) Forbidden(pos int) []rune {
	return idx.ForbiddenAt[pos]
}

// RequiredLetters returns the required letters in ascending order.
func (idx *Index) RequiredLetters() []rune {
	letters := make([]rune, 0, len(idx.Required))
	for r := range idx.Required {
		letters = append(letters, r)
	}
	slices.Sort(letters)
	return letters
}
