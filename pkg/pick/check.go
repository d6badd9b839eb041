package pick

import (
	"fmt"
	"strings"
)

// CheckKind identifies one of the rules evaluated by the matcher.
type CheckKind int

const (
	CheckLength CheckKind = iota
	CheckExcluded
	CheckFixed
	CheckForbidden
	CheckRequired
	CheckDuplicates
)

var checkNames = map[CheckKind]string{
	CheckLength:     "word_length",
	CheckExcluded:   "letter_not_excluded",
	CheckFixed:      "letter_in_fixed_place",
	CheckForbidden:  "letter_not_in_forbidden_place",
	CheckRequired:   "required_letters_present",
	CheckDuplicates: "no_duplicate_letters",
}

func (k CheckKind) String() string {
	if name, ok := checkNames[k]; ok {
		return name
	}
	return fmt.Sprintf("check(%d)", int(k))
}

// Outcome is the result of one check against one word.
type Outcome struct {
	Kind   CheckKind `msgpack:"k"`
	Passed bool      `msgpack:"ok"`
	Cause  string    `msgpack:"cause"`
}

func (o Outcome) String() string {
	status := "fail"
	if o.Passed {
		status = "pass"
	}
	return fmt.Sprintf("%s %s: %s", status, o.Kind, o.Cause)
}

func pass(kind CheckKind, format string, args ...any) Outcome {
	return Outcome{Kind: kind, Passed: true, Cause: fmt.Sprintf(format, args...)}
}

func fail(kind CheckKind, format string, args ...any) Outcome {
	return Outcome{Kind: kind, Passed: false, Cause: fmt.Sprintf(format, args...)}
}

func joinLetters(letters []rune) string {
	parts := make([]string, len(letters))
	for i, r := range letters {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}
