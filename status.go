package datadiff

import (
	"fmt"
	"strings"
)

// Status classifies a single diff entry, or summarises a whole diff
type Status string

const (
	// StatusAdded means the value only exists in the current input
	StatusAdded = Status("added")
	// StatusEqual means the value is unchanged
	StatusEqual = Status("equal")
	// StatusDeleted means the value only exists in the previous input
	StatusDeleted = Status("deleted")
	// StatusUpdated means the value exists on both sides but changed
	StatusUpdated = Status("updated")
	// StatusMoved means the value is unchanged but sits at a different position.
	// only lists & text produce moves
	StatusMoved = Status("moved")
)

// Statuses lists every status in display order
var Statuses = []Status{StatusAdded, StatusDeleted, StatusUpdated, StatusMoved, StatusEqual}

// ParseStatus converts a string to a Status
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Statuses {
		if st == known {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// DiffType names the shape of data a diff was computed over
type DiffType string

const (
	// TypeObject is a diff of two keyed records
	TypeObject = DiffType("object")
	// TypeList is a diff of two ordered sequences
	TypeList = DiffType("list")
	// TypeText is a diff of two strings
	TypeText = DiffType("text")
)

// Granularity controls how ShowOnly filters nested object entries
type Granularity string

const (
	// GranularityBasic filters top-level entries by their own status only
	GranularityBasic = Granularity("basic")
	// GranularityDeep keeps a parent if any descendant matches, pruning the
	// descendants that don't
	GranularityDeep = Granularity("deep")
)

// ParseGranularity converts a string to a Granularity
func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(strings.ToLower(strings.TrimSpace(s))); g {
	case GranularityBasic, GranularityDeep:
		return g, nil
	}
	return "", fmt.Errorf("unknown granularity %q", s)
}

// Separation is the unit text is split into before diffing
type Separation string

const (
	// SeparationCharacter creates one token per non-whitespace character
	SeparationCharacter = Separation("character")
	// SeparationWord creates one token per word
	SeparationWord = Separation("word")
	// SeparationSentence creates one token per sentence
	SeparationSentence = Separation("sentence")
)

// ParseSeparation converts a string to a Separation
func ParseSeparation(s string) (Separation, error) {
	switch sep := Separation(strings.ToLower(strings.TrimSpace(s))); sep {
	case SeparationCharacter, SeparationWord, SeparationSentence:
		return sep, nil
	}
	return "", fmt.Errorf("unknown separation %q", s)
}

// Mode selects a text alignment algorithm
type Mode string

const (
	// ModeVisual aligns tokens positionally. Tokens that changed position are
	// reported as a deletion plus an addition, which renders well
	ModeVisual = Mode("visual")
	// ModeStrict aligns tokens with a longest common subsequence, producing a
	// minimal edit script
	ModeStrict = Mode("strict")
)

// ParseMode converts a string to a Mode
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeVisual, ModeStrict:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// Result is implemented by every diff envelope
type Result interface {
	// DiffType reports the shape of data that was compared
	DiffType() DiffType
	// DiffStatus summarises all entries of the diff
	DiffStatus() Status
	formatPretty(f *formatter) error
}

// aggregateStatus summarises entry statuses: anything mixed is an update,
// uniform added, deleted & equal sets keep their status
func aggregateStatus(statuses []Status) Status {
	if len(statuses) == 0 {
		return StatusEqual
	}
	first := statuses[0]
	for _, st := range statuses[1:] {
		if st != first {
			return StatusUpdated
		}
	}
	switch first {
	case StatusAdded, StatusDeleted, StatusEqual:
		return first
	}
	return StatusUpdated
}

type statusSet map[Status]bool

func newStatusSet(statuses []Status) statusSet {
	if len(statuses) == 0 {
		return nil
	}
	set := make(statusSet, len(statuses))
	for _, st := range statuses {
		set[st] = true
	}
	return set
}

func intPtr(i int) *int {
	return &i
}
