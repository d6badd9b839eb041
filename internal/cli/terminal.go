package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/bastiangx/wordpick/internal/utils"
	"github.com/bastiangx/wordpick/pkg/pick"
	"github.com/bastiangx/wordpick/pkg/score"
	"github.com/bastiangx/wordpick/pkg/usage"
	"github.com/charmbracelet/lipgloss"
)

// Renderer prints results for humans. Colors are dropped when w is not a terminal.
type Renderer struct {
	w      io.Writer
	word   lipgloss.Style
	faint  lipgloss.Style
	passed lipgloss.Style
	failed lipgloss.Style
	header lipgloss.Style
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	lr := lipgloss.NewRenderer(w)
	return &Renderer{
		w:      w,
		word:   lr.NewStyle().Foreground(lipgloss.Color("75")),
		faint:  lr.NewStyle().Faint(true),
		passed: lr.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"}),
		failed: lr.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"}),
		header: lr.NewStyle().Bold(true),
	}
}

// Ranked prints the ranked list. total is the candidate count before any limit.
func (r *Renderer) Ranked(ranked []score.Ranked, total int) {
	if len(ranked) == 0 {
		fmt.Fprintln(r.w, r.faint.Render("No candidates match these clues"))
		return
	}

	fmt.Fprintln(r.w, r.header.Render(fmt.Sprintf("Showing %d of %d candidates:", len(ranked), total)))
	for _, s := range ranked {
		word := r.word.Render(fmt.Sprintf("%-16s", s.Word))
		fmt.Fprintf(r.w, "%3d. %s (score: %12s)\n", s.Rank, word, utils.FormatWithCommas(s.Score))
	}
}

// Trace prints every check made against every word, words sorted.
func (r *Renderer) Trace(trace map[string][]pick.Outcome) {
	words := make([]string, 0, len(trace))
	for w := range trace {
		words = append(words, w)
	}
	slices.Sort(words)

	for _, w := range words {
		fmt.Fprintln(r.w, r.header.Render(w))
		for _, o := range trace[w] {
			status := r.passed.Render("pass")
			if !o.Passed {
				status = r.failed.Render("fail")
			}
			fmt.Fprintf(r.w, "  %s %-30s %s\n", status, o.Kind, r.faint.Render(o.Cause))
		}
	}
	fmt.Fprintln(r.w)
}

// Usage prints usage table entries.
func (r *Renderer) Usage(entries []usage.Entry, highest int) {
	if len(entries) == 0 {
		fmt.Fprintln(r.w, r.faint.Render("No used words"))
		return
	}

	fmt.Fprintln(r.w, r.header.Render(fmt.Sprintf("%d used words, highest count %d:", len(entries), highest)))
	for _, e := range entries {
		word := r.word.Render(fmt.Sprintf("%-16s", e.Word))
		fmt.Fprintf(r.w, "  %s %8s\n", word, utils.FormatWithCommas(int64(e.Count)))
	}
}

// Frequency prints the letters counted while scanning, most frequent first,
// with a bar scaled to the most frequent letter.
func (r *Renderer) Frequency(freq pick.Frequency) {
	letters := freq.Letters()
	if len(letters) == 0 {
		fmt.Fprintln(r.w, r.faint.Render("No letters counted"))
		return
	}

	highest := freq.Max()
	fmt.Fprintln(r.w, r.header.Render(fmt.Sprintf("%d letters counted, %d distinct:", freq.Total(), len(letters))))
	for _, l := range letters {
		n := freq.Count(l)
		bar := strings.Repeat("#", max(n*freqBarWidth/highest, 1))
		fmt.Fprintf(r.w, "  %s %6d %s\n", r.word.Render(string(l)), n, r.faint.Render(bar))
	}
	fmt.Fprintln(r.w)
}

const freqBarWidth = 30
