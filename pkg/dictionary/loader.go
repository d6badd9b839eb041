/*
Package dictionary reads word lists from disk.

Text lists hold one word per line, CSV lists hold the word in the first
column, and binary lists use the chunk layout: an int32 word count, then per
word a uint16 length, the word bytes and a uint16 rank. Entries are trimmed,
blank lines and `#` comments are skipped, and input order is preserved.
*/
package dictionary

import (
	"bufio"
	"encoding/binary"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bastiangx/wordpick/internal/utils"
	"github.com/charmbracelet/log"
)

// LoadOptions controls how entries are normalized while loading.
type LoadOptions struct {
	// MaxWords caps the number of words kept, 0 keeps all.
	MaxWords int
	// Lowercase folds every word to lower case.
	Lowercase bool
	// LettersOnly drops entries containing anything but letters.
	LettersOnly bool
}

// WordList is a loaded dictionary in file order.
type WordList struct {
	Words   []string
	Source  string
	Format  FileFormat
	Skipped int
}

// Load detects the format of path and reads it.
func Load(path string, opts LoadOptions) (*WordList, error) {
	format, err := DetectFileFormat(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	var list *WordList
	switch format {
	case FormatCSV:
		list, err = ReadCSV(file, opts)
	case FormatBinary:
		list, err = ReadBinary(file, opts)
	default:
		list, err = ReadText(file, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}

	list.Source = path
	list.Format = format
	log.Debugf("Loaded %d words from %s (%s), skipped %d", len(list.Words), path, format, list.Skipped)
	return list, nil
}

// ReadText reads one word per line.
func ReadText(r io.Reader, opts LoadOptions) (*WordList, error) {
	list := &WordList{Format: FormatText}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if list.add(scanner.Text(), opts) {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// ReadCSV reads the first column of every record.
func ReadCSV(r io.Reader, opts LoadOptions) (*WordList, error) {
	list := &WordList{Format: FormatCSV}
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.Comment = '#'
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) == 0 {
			continue
		}
		if list.add(record[0], opts) {
			break
		}
	}
	return list, nil
}

// ReadBinary reads a binary word list. Ranks are read and discarded; the
// file order already reflects them.
func ReadBinary(r io.Reader, opts LoadOptions) (*WordList, error) {
	list := &WordList{Format: FormatBinary}
	reader := bufio.NewReader(r)

	var total int32
	if err := binary.Read(reader, binary.LittleEndian, &total); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if total < 0 {
		return nil, fmt.Errorf("invalid word count %d", total)
	}

	for i := 0; i < int(total); i++ {
		var wordLen uint16
		if err := binary.Read(reader, binary.LittleEndian, &wordLen); err != nil {
			if errors.Is(err, io.EOF) {
				log.Warnf("Binary word list ended after %d of %d words", i, total)
				break
			}
			return nil, fmt.Errorf("failed to read word length: %w", err)
		}
		wordBytes := make([]byte, wordLen)
		if _, err := io.ReadFull(reader, wordBytes); err != nil {
			return nil, fmt.Errorf("failed to read word: %w", err)
		}
		var rank uint16
		if err := binary.Read(reader, binary.LittleEndian, &rank); err != nil {
			return nil, fmt.Errorf("failed to read rank: %w", err)
		}
		if list.add(string(wordBytes), opts) {
			break
		}
	}
	return list, nil
}

// WriteBinary writes words in the binary layout, ranked by position.
func WriteBinary(w io.Writer, words []string) error {
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, int32(len(words))); err != nil {
		return err
	}
	ranks := utils.CreateRankList(len(words))
	for i, word := range words {
		if len(word) > 0xFFFF {
			return fmt.Errorf("word %d is too long (%d bytes)", i, len(word))
		}
		if err := binary.Write(bw, binary.LittleEndian, uint16(len(word))); err != nil {
			return err
		}
		if _, err := bw.WriteString(word); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, ranks[i]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// add normalizes raw and appends it. It reports whether the cap was reached.
func (l *WordList) add(raw string, opts LoadOptions) bool {
	word := strings.TrimSpace(raw)
	if word == "" || strings.HasPrefix(word, "#") {
		return false
	}
	if opts.Lowercase {
		word = strings.ToLower(word)
	}
	if opts.LettersOnly && !utils.IsWord(word) {
		l.Skipped++
		return false
	}
	l.Words = append(l.Words, word)
	return opts.MaxWords > 0 && len(l.Words) >= opts.MaxWords
}
