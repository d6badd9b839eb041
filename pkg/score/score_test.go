package score

import (
	"bytes"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastiangx/wordpick/pkg/pick"
)

type usageMap map[string]int

func (u usageMap) Get(word string) (int, bool) {
	n, ok := u[word]
	return n, ok
}

func (u usageMap) Max() int {
	highest := 0
	for _, n := range u {
		highest = max(highest, n)
	}
	return highest
}

func TestBaselineSeed(t *testing.T) {
	table := Baseline{Score: DefaultBaseline}.Seed([]string{"grape", "mango", "grape"})
	assert.Equal(t, Table{"grape": 150000, "mango": 150000}, table)

	assert.Empty(t, Baseline{Score: 1}.Seed(nil))
}

func TestCoefficient(t *testing.T) {
	tests := []struct {
		name          string
		used, highest int
		want          int64
	}{
		{"most used word", 2, 2, 1},
		{"less used word", 1, 2, 2},
		{"unused word", 0, 2, 3},
		{"single use", 1, 1, 1},
		{"unused with single use max", 0, 1, 2},
		{"no usage data", 0, 0, 1},
		{"negative usage counts as unused", -4, 3, 4},
		{"stale maximum clamps", 9, 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Coefficient(tt.used, tt.highest))
		})
	}
}

func TestUsagePenalty(t *testing.T) {
	seeded := Baseline{Score: DefaultBaseline}.Seed([]string{"grape", "mango"})

	out := UsagePenalty{Usage: usageMap{"grape": 1}}.Apply(seeded)
	assert.Equal(t, Table{"grape": 150000, "mango": 300000}, out)
	assert.Equal(t, Table{"grape": 150000, "mango": 150000}, seeded, "input is not mutated")

	out = UsagePenalty{Usage: usageMap{"grape": 2}}.Apply(seeded)
	assert.Equal(t, Table{"grape": 150000, "mango": 450000}, out)

	out = UsagePenalty{Usage: usageMap{}}.Apply(seeded)
	assert.Equal(t, seeded, out)

	out = UsagePenalty{}.Apply(seeded)
	assert.Equal(t, seeded, out)
}

func TestFrequencyBonus(t *testing.T) {
	freq := pick.Frequency{'a': 3, 'p': 2, 'e': 1}
	fb := FrequencyBonus{Frequency: freq}

	// p counts once, l was never seen.
	assert.Equal(t, int64(6), fb.WordBonus("apple"))
	assert.Zero(t, fb.WordBonus("zzz"))
	assert.Zero(t, FrequencyBonus{}.WordBonus("apple"))

	out := fb.Apply(Table{"apple": 10, "pea": 0})
	assert.Equal(t, Table{"apple": 16, "pea": 6}, out)
}

func TestPipeline(t *testing.T) {
	freq := pick.Frequency{'g': 1, 'r': 2, 'a': 4, 'p': 1, 'e': 2, 'm': 1, 'n': 1, 'o': 1}
	p := New(100,
		FrequencyBonus{Frequency: freq},
		UsagePenalty{Usage: usageMap{"grape": 1}},
	)

	table := p.Score([]string{"grape", "mango"})

	// grape: (100 + 1+2+4+1+2) * 1, mango: (100 + 1+4+1+1+1) * 2
	assert.Equal(t, Table{"grape": 110, "mango": 216}, table)
}

func TestPipelineDefaults(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	p := New(0)
	assert.Equal(t, DefaultBaseline, p.Seed.Score)
	assert.Contains(t, buf.String(), "Baseline score 0 is not positive, using 150000")

	buf.Reset()
	New(-5)
	assert.Contains(t, buf.String(), "Baseline score -5 is not positive")
	buf.Reset()
	New(10)
	assert.Empty(t, buf.String())

	double := StageFunc(func(in Table) Table {
		out := in.Clone()
		for w := range out {
			out[w] *= 2
		}
		return out
	})
	table := p.Then(double).Score([]string{"crane"})
	assert.Equal(t, Table{"crane": 300000}, table)
}

func TestRank(t *testing.T) {
	ranked := Rank(Table{"mango": 5, "grape": 9, "crane": 5, "bread": 1})

	require.Len(t, ranked, 4)
	assert.Equal(t, []Ranked{
		{Word: "grape", Score: 9, Rank: 1},
		{Word: "crane", Score: 5, Rank: 2},
		{Word: "mango", Score: 5, Rank: 3},
		{Word: "bread", Score: 1, Rank: 4},
	}, ranked)

	assert.Len(t, Top(ranked, 2), 2)
	assert.Len(t, Top(ranked, 0), 4)
	assert.Len(t, Top(ranked, 10), 4)
	assert.Empty(t, Rank(Table{}))
}
