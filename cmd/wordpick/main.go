// Copyright 2025 The WordPick Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordpick CLI and msgpack IPC server.

wordpick filters a word list against per-letter placement clues, the kind
word-guessing games hand out after each guess, and ranks what is left.
Each letter can be excluded, fixed at some places, or known to be in the
word but not at some places. A word survives when every clue holds and,
unless disabled, it does not repeat a letter.

Survivors start from a baseline score. Every distinct letter of a word adds
how often that letter was seen while scanning, and words already used as
answers are pushed down: the most used word keeps its score while unused
words get the largest boost.

# Usage

Pick with clues given as arguments:

	wordpick pick --exclude xqz a:2 n:~3,5 r:~

Read the clues from a puzzle file and show why each word was kept or dropped:

	wordpick pick --puzzle round3.toml --trace

Play several rounds interactively:

	wordpick repl --usage used.csv

List used words starting with a prefix:

	wordpick usage cra

# Puzzle files

Puzzles are TOML or YAML files mapping letters to clues:

	length = 5

	[letters]
	x = false
	a = { fixed = [2] }
	n = { elsewhere = [3, 5] }

# Configuration

Runtime configuration lives in ~/.config/wordpick/config.toml and is created
with defaults if it doesn't exist:

	[pick]
	skip_duplicate_letters = true
	trace = false
	word_length = 5

	[score]
	baseline = 150000
	frequency_bonus = true
	usage_penalty = true

	[dict]
	words_path = "words.txt"
	usage_path = ""
	max_words = 0
	lowercase = true

	[cli]
	default_limit = 20

Word lists and usage tables are looked up in the working directory, the
config directory and the executable directory, and their data/ subdirs.

# IPC Protocol

`wordpick serve` reads msgpack requests from stdin and writes one response
per request to stdout:

	{"id": "r1", "letters": {"x": false, "a": {"fixed": [2]}}, "l": 10}
	{"id": "r1", "s": [{"w": "basic", "sc": 450120, "r": 1}], "c": 1, "t": 830}

See package server for the full message set.

# Flags

	-d, --debug
	    Enable debug mode with detailed logging
	--config string
	    Path to a config file
*/
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordpick/internal/cli"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
