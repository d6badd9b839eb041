package puzzle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bastiangx/wordpick/pkg/constraint"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Puzzle is the on-disk description of one round.
type Puzzle struct {
	Length  int            `toml:"length" yaml:"length"`
	Letters map[string]any `toml:"letters" yaml:"letters"`
}

// Load reads a puzzle from a .toml, .yaml or .yml file.
func Load(path string) (*Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read puzzle %s: %w", path, err)
	}

	p := &Puzzle{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), p); err != nil {
			return nil, fmt.Errorf("failed to parse puzzle %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("failed to parse puzzle %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported puzzle format %q for %s", ext, path)
	}

	log.Debugf("Loaded puzzle %s: %d letters, length %d", path, len(p.Letters), p.Length)
	return p, nil
}

// Set decodes the letter map of the puzzle.
func (p *Puzzle) Set() (constraint.Set, error) {
	return Decode(p.Letters)
}
