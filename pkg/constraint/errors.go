package constraint

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownKind     = errors.New("unknown constraint kind")
	ErrPositionTaken   = errors.New("place is already fixed to another letter")
	ErrBadPosition     = errors.New("place out of range")
	ErrNoPositions     = errors.New("fixed letter has no places")
	ErrBadLetter       = errors.New("letter must be a single character")
	ErrDuplicateLetter = errors.New("letter given more than once")
)

// ConfigError reports a constraint set that can never be evaluated.
// It is returned before any word is scanned.
type ConfigError struct {
	Letter   rune
	Position int
	// Other is the letter already holding Position for ErrPositionTaken,
	// or the folded letter for ErrDuplicateLetter.
	Other rune
	Err   error
}

func (e *ConfigError) Error() string {
	switch {
	case errors.Is(e.Err, ErrPositionTaken):
		return fmt.Sprintf("letter %q: place %d: %v (%q)", e.Letter, e.Position, e.Err, e.Other)
	case errors.Is(e.Err, ErrDuplicateLetter):
		return fmt.Sprintf("letter %q: %v (as %q)", e.Letter, e.Err, e.Other)
	case e.Position != 0:
		return fmt.Sprintf("letter %q: place %d: %v", e.Letter, e.Position, e.Err)
	}
	return fmt.Sprintf("letter %q: %v", e.Letter, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
