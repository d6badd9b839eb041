package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/wordpick/pkg/constraint"
	"github.com/bastiangx/wordpick/pkg/engine"
	"github.com/bastiangx/wordpick/pkg/pick"
	"github.com/bastiangx/wordpick/pkg/puzzle"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// InputHandler reads one line of rules per round from a reader and prints
// the ranked candidates. Rules use the same form as the pick arguments.
type InputHandler struct {
	engine       *engine.Engine
	opts         pick.Options
	limit        int
	base         constraint.Set
	renderer     *Renderer
	requestCount int
}

// NewInputHandler creates a handler. Every round's rules are merged with base.
func NewInputHandler(e *engine.Engine, opts pick.Options, limit int, base constraint.Set, r *Renderer) *InputHandler {
	if base == nil {
		base = constraint.Set{}
	}
	return &InputHandler{
		engine:   e,
		opts:     opts,
		limit:    limit,
		base:     base,
		renderer: r,
	}
}

// Start runs rounds until the input ends or a quit command is read.
func (h *InputHandler) Start(in io.Reader) error {
	log.Print("wordpick interactive mode")
	log.Print("type rules such as `x:- a:2 n:~3,5` and press Enter (quit or Ctrl+D to exit):")

	scanner := bufio.NewScanner(in)
	for {
		log.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		}
		h.handleInput(line)
	}
}

// handleInput solves one round. Bad rules are reported and the loop goes on.
func (h *InputHandler) handleInput(line string) {
	h.requestCount++

	rules, err := puzzle.ParseArgs(strings.Fields(line))
	if err != nil {
		log.Errorf("Invalid rules: %v", err)
		return
	}
	set, err := puzzle.Merge(h.base, rules)
	if err != nil {
		log.Errorf("Invalid rules: %v", err)
		return
	}

	start := time.Now()
	resp, err := h.engine.Solve(engine.Request{Set: set, Options: h.opts, Limit: h.limit})
	if err != nil {
		log.Errorf("Invalid rules: %v", err)
		return
	}
	log.Debugf("Round %d took [ %v ]", h.requestCount, time.Since(start))

	if h.opts.Trace {
		h.renderer.Trace(resp.Result.Trace)
	}
	h.renderer.Ranked(resp.Ranked, len(resp.Result.Candidates))
}

func newReplCommand(a *app) *cobra.Command {
	f := &pickFlags{}

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Reads rules interactively, one round per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, puzzleLength, err := buildSet(f.puzzle, f.exclude, nil)
			if err != nil {
				return err
			}
			e, err := a.loadEngine(f.words, f.usage)
			if err != nil {
				return err
			}

			opts := e.Options()
			if cmd.Flags().Changed("length") {
				opts.WordLength = f.length
			} else if puzzleLength > 0 {
				opts.WordLength = puzzleLength
			}
			if cmd.Flags().Changed("allow-dup") {
				opts.SkipDuplicates = !f.allowDup
			}
			opts.Trace = f.trace

			h := NewInputHandler(e, opts, a.cfg.CLI.DefaultLimit, base, NewRenderer(cmd.OutOrStdout()))
			if err := h.Start(cmd.InOrStdin()); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.words, "words", "", "Word list file (default from config)")
	fs.StringVar(&f.usage, "usage", "", "Usage table CSV (default from config)")
	fs.StringVar(&f.puzzle, "puzzle", "", "Puzzle file whose rules apply to every round")
	fs.StringVar(&f.exclude, "exclude", "", "Letters known to be absent in every round")
	fs.IntVar(&f.length, "length", 0, "Word length, 0 accepts any length (default from config)")
	fs.BoolVar(&f.trace, "trace", false, "Show every check made against each word")
	fs.BoolVar(&f.allowDup, "allow-dup", false, "Accept words that repeat a letter")

	return cmd
}
