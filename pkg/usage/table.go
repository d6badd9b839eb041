/*
Package usage keeps how many times each word was already used as an answer.

The table is stored in a patricia trie so the CLI can list entries by
prefix. The highest count is tracked on insert and read by the usage
penalty stage of the scoring pipeline.
*/
package usage

import (
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Entry is one word with its usage count.
type Entry struct {
	Word  string
	Count int
}

// Table maps words to prior usage counts.
type Table struct {
	trie    *patricia.Trie
	highest int
	size    int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{trie: patricia.NewTrie()}
}

// FromMap builds a table from a plain map.
func FromMap(counts map[string]int) *Table {
	t := NewTable()
	for w, n := range counts {
		t.Add(w, n)
	}
	return t
}

// Add records count more uses of word. Counts of a repeated word accumulate.
func (t *Table) Add(word string, count int) {
	key := patricia.Prefix(word)
	total := count
	if item := t.trie.Get(key); item != nil {
		total += item.(int)
	} else {
		t.size++
	}
	t.trie.Set(key, total)

	if total > t.highest {
		t.highest = total
	}
}

// Get returns the usage count of word and whether it is in the table.
func (t *Table) Get(word string) (int, bool) {
	if t == nil {
		return 0, false
	}
	item := t.trie.Get(patricia.Prefix(word))
	if item == nil {
		return 0, false
	}
	return item.(int), true
}

// Max returns the highest usage count, 0 for an empty table.
func (t *Table) Max() int {
	if t == nil {
		return 0
	}
	return t.highest
}

// Len returns the number of distinct words.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// WithPrefix lists the entries starting with prefix in lexical order.
// An empty prefix lists the whole table.
func (t *Table) WithPrefix(prefix string) []Entry {
	var entries []Entry
	visit := func(p patricia.Prefix, item patricia.Item) error {
		entries = append(entries, Entry{Word: string(p), Count: item.(int)})
		return nil
	}

	var err error
	if prefix == "" {
		err = t.trie.Visit(visit)
	} else {
		err = t.trie.VisitSubtree(patricia.Prefix(prefix), visit)
	}
	if err != nil {
		log.Errorf("Error visiting usage table: %v", err)
	}
	return entries
}
