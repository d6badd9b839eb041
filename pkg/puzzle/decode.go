/*
Package puzzle turns loosely typed letter maps into constraint sets.

The same letter map arrives from TOML and YAML files and from msgpack
requests. Each letter maps to one of:

	false                  the letter is not in the word
	null (or absent)       nothing is known
	{fixed = [2, 4]}       the letter sits at these places
	{elsewhere = [3, 5]}   the letter is in the word but not at these places

Anything else is a configuration error.
*/
package puzzle

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/bastiangx/wordpick/internal/utils"
	"github.com/bastiangx/wordpick/pkg/constraint"
)

var (
	ErrBadValue       = errors.New("unrecognized letter value")
	ErrDuplicateRule  = errors.New("letter given more than once")
	ErrBadPlaceNumber = errors.New("place must be an integer")
)

const (
	keyFixed     = "fixed"
	keyElsewhere = "elsewhere"
)

// Decode converts a raw letter map into a constraint set.
func Decode(letters map[string]any) (constraint.Set, error) {
	set := make(constraint.Set, len(letters))

	keys := make([]string, 0, len(letters))
	for k := range letters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		letter, ok := utils.SingleLetter(key)
		if !ok {
			return nil, fmt.Errorf("%q: %w", key, constraint.ErrBadLetter)
		}
		rule, err := decodeValue(letters[key])
		if err != nil {
			return nil, fmt.Errorf("letter %q: %w", key, err)
		}
		set[letter] = rule
	}
	return set, nil
}

func decodeValue(value any) (constraint.Letter, error) {
	switch v := value.(type) {
	case nil:
		return constraint.None(), nil
	case bool:
		if v {
			return constraint.Letter{}, fmt.Errorf("%w: true", ErrBadValue)
		}
		return constraint.Exclude(), nil
	case map[string]any:
		return decodeTable(v)
	case map[any]any:
		table := make(map[string]any, len(v))
		for k, val := range v {
			s, ok := k.(string)
			if !ok {
				return constraint.Letter{}, fmt.Errorf("%w: key %v", ErrBadValue, k)
			}
			table[s] = val
		}
		return decodeTable(table)
	}
	return constraint.Letter{}, fmt.Errorf("%w: %T", ErrBadValue, value)
}

func decodeTable(table map[string]any) (constraint.Letter, error) {
	if len(table) != 1 {
		return constraint.Letter{}, fmt.Errorf("%w: want exactly one of %q or %q", ErrBadValue, keyFixed, keyElsewhere)
	}

	var key string
	var raw any
	for k, v := range table {
		key, raw = k, v
	}

	places, err := decodePlaces(raw)
	if err != nil {
		return constraint.Letter{}, err
	}
	switch key {
	case keyFixed:
		return constraint.FixedAt(places...), nil
	case keyElsewhere:
		return constraint.Elsewhere(places...), nil
	}
	return constraint.Letter{}, fmt.Errorf("%w: key %q", ErrBadValue, key)
}

func decodePlaces(raw any) ([]int, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []any:
		places := make([]int, 0, len(v))
		for _, item := range v {
			n, err := toInt(item)
			if err != nil {
				return nil, err
			}
			places = append(places, n)
		}
		return places, nil
	case []int:
		return v, nil
	case []int64:
		places := make([]int, len(v))
		for i, n := range v {
			places[i] = int(n)
		}
		return places, nil
	}
	n, err := toInt(raw)
	if err != nil {
		return nil, err
	}
	return []int{n}, nil
}

// toInt accepts every integer type the TOML, YAML and msgpack decoders produce.
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return int(n), nil
	case uint64:
		if n > math.MaxInt32 {
			break
		}
		return int(n), nil
	case float64:
		if n == math.Trunc(n) {
			return int(n), nil
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrBadPlaceNumber, v)
}
