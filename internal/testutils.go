package internal

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/minaorangina/hanabi/deck"
	"github.com/minaorangina/hanabi/protocol"
)

// Cards parses space separated card signatures, e.g. "R1 G2 B3"
func Cards(t *testing.T, signatures string) []deck.Card {
	t.Helper()

	d, err := deck.Parse(strings.Fields(signatures))
	if err != nil {
		t.Fatalf("Unexpected error: %s", err.Error())
	}
	return d
}

// NewGameLine builds the command that starts a game with the given cards
func NewGameLine(signatures string) string {
	return "Start new game with deck " + signatures
}

// ScriptedLines hands out a fixed set of lines, then io.EOF
type ScriptedLines struct {
	lines []string
	read  int
}

func NewScriptedLines(lines ...string) *ScriptedLines {
	return &ScriptedLines{lines: lines}
}

func (s *ScriptedLines) ReadLine() (string, error) {
	if s.read >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.read]
	s.read++
	return line, nil
}

// Remaining returns the number of lines not yet read
func (s *ScriptedLines) Remaining() int {
	return len(s.lines) - s.read
}

// ReportRecorder keeps every report written to it
type ReportRecorder struct {
	Reports []protocol.Report
}

func (r *ReportRecorder) WriteReport(report protocol.Report) error {
	r.Reports = append(r.Reports, report)
	return nil
}

// Last returns the most recent report
func (r *ReportRecorder) Last() protocol.Report {
	if len(r.Reports) == 0 {
		return protocol.Report{}
	}
	return r.Reports[len(r.Reports)-1]
}

// Within fails the test if assert does not return within d
func Within(t *testing.T, d time.Duration, assert func()) {
	t.Helper()

	done := make(chan struct{}, 1)

	go func() {
		assert()
		done <- struct{}{}
	}()

	select {
	case <-time.After(d):
		t.Error("timed out")
	case <-done:
	}
}
