package engine

import (
	"bufio"
	"io"
	"strings"

	"github.com/peterh/liner"
)

// MaxLineSize is the longest line a ScannerReader accepts, room for a new
// game command with hundreds of thousands of cards
const MaxLineSize = 1 << 20

// ScannerReader reads lines from any io.Reader
type ScannerReader struct {
	scanner *bufio.Scanner
}

func NewScannerReader(r io.Reader) *ScannerReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)
	return &ScannerReader{scanner: scanner}
}

func (sr *ScannerReader) ReadLine() (string, error) {
	if sr.scanner.Scan() {
		return strings.TrimSuffix(sr.scanner.Text(), "\r"), nil
	}
	if err := sr.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// PromptReader reads lines from an interactive terminal, with history
type PromptReader struct {
	line   *liner.State
	prompt string
}

func NewPromptReader(line *liner.State, prompt string) *PromptReader {
	line.SetCtrlCAborts(true)
	return &PromptReader{line: line, prompt: prompt}
}

func (pr *PromptReader) ReadLine() (string, error) {
	text, err := pr.line.Prompt(pr.prompt)
	if err == liner.ErrPromptAborted {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) != "" {
		pr.line.AppendHistory(text)
	}
	return text, nil
}
