package protocol

import (
	"errors"
	"fmt"

	"github.com/minaorangina/hanabi/deck"
)

var ErrUnknownReportKind = errors.New("unknown report kind")

// ReportKind distinguishes the two kinds of report the engine emits
type ReportKind int

const (
	Status ReportKind = iota
	Summary
)

var reportKindNames = []string{"status", "summary"}

func (k ReportKind) String() string {
	if k < 0 || int(k) >= len(reportKindNames) {
		return fmt.Sprintf("ReportKind(%d)", int(k))
	}
	return reportKindNames[k]
}

// MarshalText encodes the kind by name
func (k ReportKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind from its name
func (k *ReportKind) UnmarshalText(text []byte) error {
	for i, name := range reportKindNames {
		if name == string(text) {
			*k = ReportKind(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownReportKind, text)
}

// Report is a message from the game to whoever is driving it.
// Status reports describe the state after a turn; a Summary closes a game
// that had at least one turn.
type Report struct {
	Kind        ReportKind         `json:"kind"`
	Turn        int                `json:"turn"`
	Score       int                `json:"score,omitempty"`
	Finished    bool               `json:"finished,omitempty"`
	CurrentHand []deck.Card        `json:"currentHand,omitempty"`
	NextHand    []deck.Card        `json:"nextHand,omitempty"`
	Table       [deck.NumSuits]int `json:"table"`
	Cards       int                `json:"cards,omitempty"`
}
