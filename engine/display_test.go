package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/minaorangina/hanabi/deck"
	utils "github.com/minaorangina/hanabi/internal"
	"github.com/minaorangina/hanabi/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendText(t *testing.T) {
	t.Run("send simple text", func(t *testing.T) {
		buffer := &bytes.Buffer{}
		want := "Hello"
		require.NoError(t, SendText(buffer, want))

		assert.Equal(t, want, buffer.String())
	})

	t.Run("send formatted text", func(t *testing.T) {
		buffer := &bytes.Buffer{}
		want := "Hello, human"
		format := "Hello, %s"
		require.NoError(t, SendText(buffer, format, "human"))

		assert.Equal(t, want, buffer.String())
	})
}

func TestFormatReport(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		r := protocol.Report{
			Kind:        protocol.Status,
			Turn:        7,
			Score:       3,
			Finished:    true,
			CurrentHand: utils.Cards(t, "R1 G2 B3 W4 Y5"),
			NextHand:    utils.Cards(t, "Y1 W1 B1 G1"),
			Table:       [deck.NumSuits]int{deck.Red: 2, deck.Yellow: 1},
		}

		assert.Equal(t, []string{
			"Turn: 7, cards on table: 3, game is finished: True",
			"Current Player's hand: R1 G2 B3 W4 Y5",
			"   Next Player's hand: Y1 W1 B1 G1",
			"        Current table: R2 G0 B0 W0 Y1",
		}, FormatReport(r))
	})

	t.Run("summary", func(t *testing.T) {
		r := protocol.Report{Kind: protocol.Summary, Turn: 12, Cards: 4}
		assert.Equal(t, []string{"Turn: 12, cards: 4"}, FormatReport(r))
	})

	t.Run("empty hand", func(t *testing.T) {
		lines := FormatReport(protocol.Report{Kind: protocol.Status})
		require.Len(t, lines, 4)
		assert.Equal(t, "Current Player's hand:", lines[1])
	})
}

func TestTextWriter(t *testing.T) {
	buffer := &bytes.Buffer{}
	w := NewTextWriter(buffer)

	require.NoError(t, w.WriteReport(protocol.Report{Kind: protocol.Summary, Turn: 1}))
	require.NoError(t, w.WriteReport(protocol.Report{Kind: protocol.Status, Turn: 1}))

	lines := strings.Split(strings.TrimSuffix(buffer.String(), "\n"), "\n")
	assert.Len(t, lines, 5)
	assert.Equal(t, "Turn: 1, cards: 0", lines[0])
}

func TestPrettyWriter(t *testing.T) {
	color.NoColor = true

	t.Run("status is drawn as a table", func(t *testing.T) {
		buffer := &bytes.Buffer{}
		err := NewPrettyWriter(buffer).WriteReport(protocol.Report{
			Kind:        protocol.Status,
			Turn:        2,
			Score:       1,
			CurrentHand: utils.Cards(t, "R1 G2 B3 W4 Y5"),
			NextHand:    utils.Cards(t, "Y1 W1 B1 G1 R5"),
			Table:       [deck.NumSuits]int{deck.Green: 1},
		})
		require.NoError(t, err)

		out := buffer.String()
		assert.Contains(t, out, "Turn 2")
		for _, sig := range []string{"R1", "G2", "B3", "W4", "Y5", "R5", "G1", "R0"} {
			assert.Contains(t, out, sig)
		}
		assert.NotContains(t, out, "finished")
	})

	t.Run("summary is a single line", func(t *testing.T) {
		buffer := &bytes.Buffer{}
		err := NewPrettyWriter(buffer).WriteReport(protocol.Report{Kind: protocol.Summary, Turn: 9, Cards: 6})
		require.NoError(t, err)

		assert.Equal(t, "Game over after 9 turns with 6 cards on the table\n", buffer.String())
	})
}
