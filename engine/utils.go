package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/minaorangina/hanabi/protocol"
	uuid "github.com/satori/go.uuid"
)

// NewID constructs a session ID
func NewID() string {
	return uuid.NewV4().String()
}

// LineReader is anything that supplies command lines, one at a time.
// It returns io.EOF when there are no more lines.
type LineReader interface {
	ReadLine() (string, error)
}

// ReportWriter is anything that can present a report
type ReportWriter interface {
	WriteReport(protocol.Report) error
}

// Run feeds lines to the session until it ends or input runs out
func Run(s *Session, r LineReader, w ReportWriter) error {
	for !s.Done() {
		line, err := r.ReadLine()
		if errors.Is(err, io.EOF) {
			s.End()
			return nil
		}
		if err != nil {
			s.End()
			return fmt.Errorf("read line: %w", err)
		}

		reports, stepErr := s.Step(line)
		for _, report := range reports {
			if err := w.WriteReport(report); err != nil {
				s.End()
				return fmt.Errorf("write report: %w", err)
			}
		}
		if stepErr != nil {
			return stepErr
		}
	}

	return nil
}
