package pick

import (
	"strings"
	"sync"

	"github.com/bastiangx/wordpick/pkg/constraint"
	"github.com/charmbracelet/log"
)

// Result is the outcome of one pass over a word list.
type Result struct {
	// Candidates are the accepted words in input order.
	Candidates []string
	// Frequency holds the letters counted during the pass.
	Frequency Frequency
	// Trace maps each scanned word to its check outcomes. Nil unless tracing.
	Trace map[string][]Outcome
}

// Run compiles set and filters words with it. Configuration errors are
// returned before any word is scanned.
func Run(words []string, set constraint.Set, opts Options) (Result, error) {
	idx, err := set.Compile(opts.WordLength)
	if err != nil {
		return Result{}, err
	}
	return Filter(words, idx, opts), nil
}

// Filter trims every entry of words and keeps those accepted by idx.
// Order is preserved and duplicates are kept. Blank entries are skipped.
func Filter(words []string, idx *constraint.Index, opts Options) Result {
	res := newResult(opts)
	scan(NewMatcher(idx, opts), words, &res)

	log.Debugf("Scanned %d words, kept %d candidates", len(words), len(res.Candidates))
	return res
}

// FilterParallel behaves like Filter but scans contiguous shards of words
// concurrently. Shard results are merged in input order, so the candidates,
// frequency table and trace equal those of Filter.
func FilterParallel(words []string, idx *constraint.Index, opts Options, shards int) Result {
	if shards <= 1 || len(words) < shards {
		return Filter(words, idx, opts)
	}

	matcher := NewMatcher(idx, opts)
	size := (len(words) + shards - 1) / shards
	parts := make([]Result, shards)

	var wg sync.WaitGroup
	for i := 0; i < shards; i++ {
		lo := min(i*size, len(words))
		hi := min(lo+size, len(words))
		parts[i] = newResult(opts)

		wg.Add(1)
		go func(part *Result, chunk []string) {
			defer wg.Done()
			scan(matcher, chunk, part)
		}(&parts[i], words[lo:hi])
	}
	wg.Wait()

	res := newResult(opts)
	for _, part := range parts {
		res.Candidates = append(res.Candidates, part.Candidates...)
		res.Frequency.Merge(part.Frequency)
		for word, outcomes := range part.Trace {
			res.Trace[word] = append(res.Trace[word], outcomes...)
		}
	}

	log.Debugf("Scanned %d words in %d shards, kept %d candidates", len(words), shards, len(res.Candidates))
	return res
}

func newResult(opts Options) Result {
	res := Result{
		Candidates: []string{},
		Frequency:  NewFrequency(),
	}
	if opts.Trace {
		res.Trace = make(map[string][]Outcome)
	}
	return res
}

func scan(m *Matcher, words []string, res *Result) {
	for _, raw := range words {
		word := strings.TrimSpace(raw)
		if word == "" {
			continue
		}

		ok, trace := m.Match(word, res.Frequency)
		if res.Trace != nil {
			res.Trace[word] = append(res.Trace[word], trace...)
		}
		if ok {
			res.Candidates = append(res.Candidates, word)
		}
	}
}
