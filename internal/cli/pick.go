package cli

import (
	"github.com/bastiangx/wordpick/pkg/constraint"
	"github.com/bastiangx/wordpick/pkg/engine"
	"github.com/bastiangx/wordpick/pkg/puzzle"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type pickFlags struct {
	words    string
	usage    string
	puzzle   string
	exclude  string
	limit    int
	length   int
	shards   int
	baseline int64
	trace    bool
	freq     bool
	allowDup bool
}

func newPickCommand(a *app) *cobra.Command {
	f := &pickFlags{}

	cmd := &cobra.Command{
		Use:   "pick [rules...]",
		Short: "Lists ranked candidates for a set of letter clues",
		Long: `Lists ranked candidates for a set of letter clues.

Rules come from a puzzle file, --exclude and the arguments, one rule per
argument:

  x:-      x is not in the word
  a:2,4    a sits at places 2 and 4
  n:~3,5   n is in the word but not at places 3 or 5
  r:~      r is in the word somewhere
  q:?      nothing is known about q`,
		Example: `  wordpick pick --exclude xqz a:2 n:~3,5
  wordpick pick --puzzle round3.toml --limit 5 --trace
  wordpick pick --freq r:~`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPick(cmd, f, args)
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.words, "words", "", "Word list file (default from config)")
	fs.StringVar(&f.usage, "usage", "", "Usage table CSV of word,count rows (default from config)")
	fs.StringVar(&f.puzzle, "puzzle", "", "Puzzle file (.toml, .yaml)")
	fs.StringVar(&f.exclude, "exclude", "", "Letters known to be absent")
	fs.IntVar(&f.limit, "limit", 0, "Number of candidates to show, 0 shows all (default from config)")
	fs.IntVar(&f.length, "length", 0, "Word length, 0 accepts any length (default from config)")
	fs.IntVar(&f.shards, "shards", 1, "Number of concurrent scans over the word list")
	fs.Int64Var(&f.baseline, "baseline", 0, "Baseline score (default from config)")
	fs.BoolVar(&f.trace, "trace", false, "Show every check made against each word")
	fs.BoolVar(&f.freq, "freq", false, "Show how often each letter was counted during the scan")
	fs.BoolVar(&f.allowDup, "allow-dup", false, "Accept words that repeat a letter")

	return cmd
}

func (a *app) runPick(cmd *cobra.Command, f *pickFlags, args []string) error {
	set, puzzleLength, err := buildSet(f.puzzle, f.exclude, args)
	if err != nil {
		return err
	}

	e, err := a.loadEngine(f.words, f.usage)
	if err != nil {
		return err
	}
	e.SetShards(f.shards)

	opts := e.Options()
	fs := cmd.Flags()
	switch {
	case fs.Changed("length"):
		opts.WordLength = f.length
	case puzzleLength > 0:
		opts.WordLength = puzzleLength
	}
	if fs.Changed("trace") {
		opts.Trace = f.trace
	}
	if fs.Changed("allow-dup") {
		opts.SkipDuplicates = !f.allowDup
	}
	limit := a.cfg.CLI.DefaultLimit
	if fs.Changed("limit") {
		limit = f.limit
	}

	log.Debug("Pick",
		"letters", len(set),
		"length", opts.WordLength,
		"skipDup", opts.SkipDuplicates,
		"limit", limit)

	resp, err := e.Solve(engine.Request{Set: set, Options: opts, Limit: limit, Baseline: f.baseline})
	if err != nil {
		return err
	}

	r := NewRenderer(cmd.OutOrStdout())
	if opts.Trace {
		r.Trace(resp.Result.Trace)
	}
	if f.freq {
		r.Frequency(resp.Result.Frequency)
	}
	r.Ranked(resp.Ranked, len(resp.Result.Candidates))
	return nil
}

// buildSet merges the puzzle file, the excluded letters and the rule
// arguments. A letter may only be described once across all three.
func buildSet(puzzlePath, exclude string, args []string) (constraint.Set, int, error) {
	set := constraint.Set{}
	length := 0

	if puzzlePath != "" {
		p, err := puzzle.Load(puzzlePath)
		if err != nil {
			return nil, 0, err
		}
		if set, err = p.Set(); err != nil {
			return nil, 0, err
		}
		length = p.Length
	}

	if exclude != "" {
		excluded, err := puzzle.ExcludeAll(exclude)
		if err != nil {
			return nil, 0, err
		}
		if set, err = puzzle.Merge(set, excluded); err != nil {
			return nil, 0, err
		}
	}

	rules, err := puzzle.ParseArgs(args)
	if err != nil {
		return nil, 0, err
	}
	if set, err = puzzle.Merge(set, rules); err != nil {
		return nil, 0, err
	}
	return set, length, nil
}
