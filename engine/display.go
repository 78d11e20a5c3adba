package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/minaorangina/hanabi/deck"
	"github.com/minaorangina/hanabi/protocol"
)

const (
	statusText      = "Turn: %d, cards on table: %d, game is finished: %s"
	currentHandText = "Current Player's hand:%s"
	nextHandText    = "   Next Player's hand:%s"
	tableText       = "        Current table:%s"
	summaryText     = "Turn: %d, cards: %d"
)

func SendText(w io.Writer, text string, a ...interface{}) error {
	_, err := fmt.Fprintf(w, text, a...)
	return err
}

// FormatReport renders a report as protocol text, one string per line
func FormatReport(r protocol.Report) []string {
	if r.Kind == protocol.Summary {
		return []string{fmt.Sprintf(summaryText, r.Turn, r.Cards)}
	}

	return []string{
		fmt.Sprintf(statusText, r.Turn, r.Score, formatBool(r.Finished)),
		fmt.Sprintf(currentHandText, formatCards(r.CurrentHand)),
		fmt.Sprintf(nextHandText, formatCards(r.NextHand)),
		fmt.Sprintf(tableText, formatTable(r.Table)),
	}
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func formatCards(cards []deck.Card) string {
	var sb strings.Builder
	for _, c := range cards {
		sb.WriteString(" " + c.String())
	}
	return sb.String()
}

func formatTable(counts [deck.NumSuits]int) string {
	var sb strings.Builder
	for _, s := range deck.AllSuits {
		fmt.Fprintf(&sb, " %c%d", s.Letter(), counts[s])
	}
	return sb.String()
}

// TextWriter writes reports as plain protocol text
type TextWriter struct {
	out io.Writer
}

func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{out: w}
}

func (tw *TextWriter) WriteReport(r protocol.Report) error {
	for _, line := range FormatReport(r) {
		if err := SendText(tw.out, "%s\n", line); err != nil {
			return err
		}
	}
	return nil
}
