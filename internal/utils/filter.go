package utils

import (
	"unicode"
	"unicode/utf8"
)

// IsWord checks that s is non-empty and made only of letters
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// SingleLetter returns the only rune of s when s is exactly one letter
func SingleLetter(s string) (rune, bool) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsLetter(r) {
		return 0, false
	}
	return r, true
}
