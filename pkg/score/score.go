// Package score ranks candidate words with a chain of independent stages.
//
// A Pipeline seeds every candidate with a Baseline score, then hands the
// table to each Stage in turn. Stages never mutate their input.
package score

import "github.com/charmbracelet/log"

// DefaultBaseline is the score every candidate starts with.
const DefaultBaseline int64 = 150000

// Table maps a word to its current score.
type Table map[string]int64

// Clone returns an independent copy of the table.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for w, s := range t {
		out[w] = s
	}
	return out
}

// Stage transforms a score table into a new one.
type Stage interface {
	Apply(in Table) Table
}

// StageFunc adapts a plain function to Stage.
type StageFunc func(in Table) Table

func (f StageFunc) Apply(in Table) Table {
	return f(in)
}

// Baseline seeds the table. It must run before any Stage.
type Baseline struct {
	Score int64
}

// Seed gives every candidate the baseline score. Repeated candidates share one entry.
func (b Baseline) Seed(candidates []string) Table {
	out := make(Table, len(candidates))
	for _, w := range candidates {
		out[w] = b.Score
	}
	return out
}

// Pipeline is a baseline followed by stages applied in order.
type Pipeline struct {
	Seed   Baseline
	Stages []Stage
}

// New returns a pipeline seeded with baseline. A non-positive baseline falls
// back to DefaultBaseline with a warning.
func New(baseline int64, stages ...Stage) *Pipeline {
	if baseline <= 0 {
		log.Warnf("Baseline score %d is not positive, using %d", baseline, DefaultBaseline)
		baseline = DefaultBaseline
	}
	return &Pipeline{Seed: Baseline{Score: baseline}, Stages: stages}
}

// Then appends a stage and returns the pipeline.
func (p *Pipeline) Then(s Stage) *Pipeline {
	p.Stages = append(p.Stages, s)
	return p
}

// Score runs the pipeline over candidates.
func (p *Pipeline) Score(candidates []string) Table {
	table := p.Seed.Seed(candidates)
	for _, stage := range p.Stages {
		table = stage.Apply(table)
	}
	return table
}
