package engine

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/minaorangina/hanabi/deck"
	"github.com/minaorangina/hanabi/protocol"
)

var suitColors = [deck.NumSuits]*color.Color{
	deck.Red:    color.New(color.FgRed),
	deck.Green:  color.New(color.FgGreen),
	deck.Blue:   color.New(color.FgBlue),
	deck.White:  color.New(color.FgHiWhite),
	deck.Yellow: color.New(color.FgYellow),
}

var (
	headerColor   = color.New(color.FgWhite, color.Bold)
	finishedColor = color.New(color.FgHiYellow, color.Bold)
)

func colorizeCard(c deck.Card) string {
	return suitColors[c.Suit].Sprint(c.String())
}

// PrettyWriter renders reports as tables for a person at a terminal
type PrettyWriter struct {
	out io.Writer
}

func NewPrettyWriter(w io.Writer) *PrettyWriter {
	return &PrettyWriter{out: w}
}

func (pw *PrettyWriter) WriteReport(r protocol.Report) error {
	if r.Kind == protocol.Summary {
		return SendText(pw.out, "%s\n",
			finishedColor.Sprintf("Game over after %d turns with %d cards on the table", r.Turn, r.Cards))
	}

	t := table.NewWriter()
	t.SetOutputMirror(pw.out)
	t.SetStyle(table.StyleRounded)
	t.Style().Title.Align = text.AlignCenter

	title := fmt.Sprintf("Turn %d · score %d", r.Turn, r.Score)
	if r.Finished {
		title += " · finished"
	}
	t.SetTitle(headerColor.Sprint(title))

	header := table.Row{""}
	for i := 0; i <= protocol.MaxIndex; i++ {
		header = append(header, i)
	}
	t.AppendHeader(header)
	t.AppendRow(handRow("Current", r.CurrentHand))
	t.AppendRow(handRow("Next", r.NextHand))
	t.AppendSeparator()

	tableRow := table.Row{"Table"}
	for _, s := range deck.AllSuits {
		tableRow = append(tableRow, suitColors[s].Sprintf("%c%d", s.Letter(), r.Table[s]))
	}
	t.AppendRow(tableRow)

	t.Render()
	return nil
}

func handRow(label string, cards []deck.Card) table.Row {
	row := table.Row{label}
	for _, c := range cards {
		row = append(row, colorizeCard(c))
	}
	return row
}
