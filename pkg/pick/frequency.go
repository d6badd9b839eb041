package pick

import (
	"slices"
)

// Frequency counts how often each letter was seen while scanning words.
// Counts only grow during a run.
type Frequency map[rune]int

// NewFrequency returns an empty table.
func NewFrequency() Frequency {
	return make(Frequency)
}

// Add counts one occurrence of r.
func (f Frequency) Add(r rune) {
	f[r]++
}

// Count returns the occurrences of r, zero if it was never seen.
func (f Frequency) Count(r rune) int {
	return f[r]
}

// Merge adds every count of other into f.
func (f Frequency) Merge(other Frequency) {
	for r, n := range other {
		f[r] += n
	}
}

// Max returns the highest count in the table.
func (f Frequency) Max() int {
	highest := 0
	for _, n := range f {
		if n > highest {
			highest = n
		}
	}
	return highest
}

// Total returns the sum of all counts.
func (f Frequency) Total() int {
	total := 0
	for _, n := range f {
		total += n
	}
	return total
}

// Letters returns the seen letters, most frequent first, ties in ascending letter order.
func (f Frequency) Letters() []rune {
	letters := make([]rune, 0, len(f))
	for r := range f {
		letters = append(letters, r)
	}
	slices.SortFunc(letters, func(a, b rune) int {
		if f[a] != f[b] {
			return f[b] - f[a]
		}
		return int(a - b)
	})
	return letters
}
