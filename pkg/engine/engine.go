// Package engine ties a loaded word list, a usage table and the config
// together: it filters the list with pick and ranks the survivors with score.
package engine

import (
	"github.com/bastiangx/wordpick/pkg/config"
	"github.com/bastiangx/wordpick/pkg/constraint"
	"github.com/bastiangx/wordpick/pkg/pick"
	"github.com/bastiangx/wordpick/pkg/score"
	"github.com/bastiangx/wordpick/pkg/usage"
	"github.com/charmbracelet/log"
)

// Request is one round of constraints to solve.
type Request struct {
	Set     constraint.Set
	Options pick.Options
	// Limit caps the ranked list, 0 keeps every candidate.
	Limit int
	// Baseline overrides the configured baseline score when positive.
	Baseline int64
}

// Response holds the ranked candidates and the raw filter result.
type Response struct {
	Ranked []score.Ranked
	Result pick.Result
}

// Engine solves requests against a fixed word list.
type Engine struct {
	words  []string
	usage  *usage.Table
	cfg    *config.Config
	shards int
}

// New returns an engine. A nil usage table means no usage data and a nil
// config means defaults.
func New(words []string, used *usage.Table, cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if used == nil {
		used = usage.NewTable()
	}
	return &Engine{words: words, usage: used, cfg: cfg, shards: 1}
}

// SetShards scans the word list in n concurrent shards. Results do not change.
func (e *Engine) SetShards(n int) {
	e.shards = max(n, 1)
}

// Options returns the configured matcher options.
func (e *Engine) Options() pick.Options {
	return e.cfg.PickOptions()
}

// Solve filters and ranks the word list. Configuration errors in the
// request's set are returned before any word is scanned. Rule letters are
// lower-cased when the word list is.
func (e *Engine) Solve(req Request) (*Response, error) {
	set := req.Set
	if e.cfg.Dict.Lowercase {
		var err error
		if set, err = set.Lower(); err != nil {
			return nil, err
		}
	}

	idx, err := set.Compile(req.Options.WordLength)
	if err != nil {
		return nil, err
	}

	res := pick.FilterParallel(e.words, idx, req.Options, e.shards)

	baseline := req.Baseline
	if baseline <= 0 {
		baseline = e.cfg.Score.Baseline
	}
	table := e.Pipeline(res.Frequency, baseline).Score(res.Candidates)
	ranked := score.Rank(table)

	log.Debug("Solved request",
		"words", len(e.words),
		"candidates", len(res.Candidates),
		"ranked", len(ranked),
		"limit", req.Limit)

	return &Response{Ranked: score.Top(ranked, req.Limit), Result: res}, nil
}

// Pipeline builds the scoring stages enabled in the config.
func (e *Engine) Pipeline(freq pick.Frequency, baseline int64) *score.Pipeline {
	p := score.New(baseline)
	if e.cfg.Score.FrequencyBonus {
		p.Then(score.FrequencyBonus{Frequency: freq})
	}
	if e.cfg.Score.UsagePenalty {
		p.Then(score.UsagePenalty{Usage: e.usage})
	}
	return p
}

// Usage returns the usage table the engine scores with.
func (e *Engine) Usage() *usage.Table {
	return e.usage
}

// Stats returns basic figures about the loaded data.
func (e *Engine) Stats() map[string]int {
	return map[string]int{
		"totalWords": len(e.words),
		"usedWords":  e.usage.Len(),
		"maxUsage":   e.usage.Max(),
		"shards":     e.shards,
	}
}
