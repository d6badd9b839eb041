package score

import (
	"slices"
	"strings"

	"github.com/bastiangx/wordpick/internal/utils"
)

// Ranked is one scored word in presentation order.
type Ranked struct {
	Word  string `msgpack:"w"`
	Score int64  `msgpack:"sc"`
	Rank  uint16 `msgpack:"r"`
}

// Rank sorts the table by descending score, ties by word, and numbers the
// entries from 1.
func Rank(t Table) []Ranked {
	out := make([]Ranked, 0, len(t))
	for w, s := range t {
		out = append(out, Ranked{Word: w, Score: s})
	}
	slices.SortFunc(out, func(a, b Ranked) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return strings.Compare(a.Word, b.Word)
	})

	ranks := utils.CreateRankList(len(out))
	for i := range out {
		out[i].Rank = ranks[i]
	}
	return out
}

// Top returns at most limit entries. A non-positive limit keeps them all.
func Top(ranked []Ranked, limit int) []Ranked {
	if limit > 0 && len(ranked) > limit {
		return ranked[:limit]
	}
	return ranked
}
