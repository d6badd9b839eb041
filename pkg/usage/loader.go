package usage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// Load reads a usage table from a CSV file of `word,count` rows.
func Load(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open usage file %s: %w", path, err)
	}
	defer file.Close()

	t, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read usage file %s: %w", path, err)
	}
	log.Debugf("Loaded %d used words from %s (max usage %d)", t.Len(), path, t.Max())
	return t, nil
}

// Read parses `word,count` rows. A first row whose count is not a number is
// taken as a header. A row with only a word counts as one use. Blank words
// and rows with a malformed count are skipped with a warning.
func Read(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	t := NewTable()
	for line := 1; ; line++ {
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

		word := strings.TrimSpace(record[0])
		if word == "" {
			continue
		}
		if len(record) == 1 {
			t.Add(word, 1)
			continue
		}

		count, err := strconv.Atoi(strings.TrimSpace(record[1]))
		if err != nil {
			if line == 1 {
				log.Debugf("Skipping usage header %v", record)
				continue
			}
			log.Warnf("Skipping usage row %d: bad count %q", line, record[1])
			continue
		}
		t.Add(word, count)
	}
	return t, nil
}
