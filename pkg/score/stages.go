package score

// LetterCounter is the frequency source read by FrequencyBonus.
// pick.Frequency satisfies it.
type LetterCounter interface {
	Count(r rune) int
}

// FrequencyBonus rewards words built from letters that were common across
// the scanned dictionary.
type FrequencyBonus struct {
	Frequency LetterCounter
}

// Apply adds each word's letter bonus to its score.
func (fb FrequencyBonus) Apply(in Table) Table {
	out := make(Table, len(in))
	for w, s := range in {
		out[w] = s + fb.WordBonus(w)
	}
	return out
}

// WordBonus sums the counts of the distinct letters of word. Unseen letters add nothing.
func (fb FrequencyBonus) WordBonus(word string) int64 {
	if fb.Frequency == nil {
		return 0
	}
	seen := make(map[rune]struct{}, len(word))
	var bonus int64
	for _, r := range word {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		bonus += int64(fb.Frequency.Count(r))
	}
	return bonus
}

// UsageSource reports how often a word was used before.
// usage.Table satisfies it.
type UsageSource interface {
	Get(word string) (int, bool)
	Max() int
}

// UsagePenalty multiplies scores by a coefficient that shrinks as a word's
// prior usage grows. Unused words get the largest coefficient.
type UsagePenalty struct {
	Usage UsageSource
}

// Apply multiplies each score by the word's usage coefficient.
func (up UsagePenalty) Apply(in Table) Table {
	highest := 0
	if up.Usage != nil {
		highest = up.Usage.Max()
	}

	out := make(Table, len(in))
	for w, s := range in {
		used := 0
		if up.Usage != nil {
			used, _ = up.Usage.Get(w)
		}
		out[w] = s * Coefficient(used, highest)
	}
	return out
}

// Coefficient returns the multiplier for a word used `used` times when the
// most used word was used `highest` times: highest-used+1 for 1..highest,
// and highest+1 for unused words. With no usage data every word gets 1.
// Counts above highest are clamped to it.
func Coefficient(used, highest int) int64 {
	if highest <= 0 || used <= 0 {
		return int64(max(highest, 0)) + 1
	}
	if used > highest {
		used = highest
	}
	return int64(highest - used + 1)
}
