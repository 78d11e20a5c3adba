package engine

import (
	"testing"

	"github.com/minaorangina/hanabi/deck"
	"github.com/minaorangina/hanabi/game"
	utils "github.com/minaorangina/hanabi/internal"
	"github.com/minaorangina/hanabi/protocol"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	elevenCards = "R1 R2 R3 R4 R5 G1 G2 G3 G4 G5 B1"
	twelveCards = elevenCards + " B2"
)

func step(t *testing.T, s *Session, line string) []protocol.Report {
	t.Helper()
	reports, err := s.Step(line)
	require.NoError(t, err)
	return reports
}

func TestSessionConstructor(t *testing.T) {
	t.Run("starts awaiting a new game", func(t *testing.T) {
		s := NewSession(SessionOpts{})
		assert.Equal(t, AwaitingStart, s.Phase())
		assert.False(t, s.Done())
		assert.Nil(t, s.Game())
		assert.NotEmpty(t, s.ID())
	})

	t.Run("keeps a given ID", func(t *testing.T) {
		s := NewSession(SessionOpts{ID: "table-1"})
		assert.Equal(t, "table-1", s.ID())
	})

	t.Run("generated IDs are unique", func(t *testing.T) {
		assert.NotEqual(t, NewSession(SessionOpts{}).ID(), NewSession(SessionOpts{}).ID())
	})
}

func TestAwaitingStart(t *testing.T) {
	t.Run("a new game command starts playing", func(t *testing.T) {
		s := NewSession(SessionOpts{})
		reports := step(t, s, utils.NewGameLine(twelveCards))

		assert.Equal(t, Playing, s.Phase())
		require.Len(t, reports, 1)
		assert.Equal(t, protocol.Status, reports[0].Kind)
		assert.Equal(t, 0, reports[0].Turn)
		assert.False(t, reports[0].Finished)
	})

	t.Run("anything else ends the session", func(t *testing.T) {
		for _, line := range []string{"", "Play card 0", "Start new game with deck R1"} {
			s := NewSession(SessionOpts{})
			reports := step(t, s, line)

			assert.Empty(t, reports)
			assert.Equal(t, Ended, s.Phase(), line)
		}
	})
}

func TestPlaying(t *testing.T) {
	t.Run("turn commands go to the game", func(t *testing.T) {
		s := NewSession(SessionOpts{})
		step(t, s, utils.NewGameLine(twelveCards))

		reports := step(t, s, "Play card 0")

		assert.Equal(t, Playing, s.Phase())
		require.Len(t, reports, 1)
		assert.Equal(t, 1, reports[0].Turn)
		assert.Equal(t, 1, s.Game().Table.Height(deck.Red))
	})

	t.Run("a concluded game goes back to awaiting a new game", func(t *testing.T) {
		s := NewSession(SessionOpts{})
		step(t, s, utils.NewGameLine(elevenCards))

		reports := step(t, s, "Play card 0")

		assert.Equal(t, AwaitingStart, s.Phase())
		require.Len(t, reports, 2)
		assert.Equal(t, protocol.Summary, reports[0].Kind)
		assert.True(t, reports[1].Finished)

		t.Log("and the next game can start")
		step(t, s, utils.NewGameLine(twelveCards))
		assert.Equal(t, Playing, s.Phase())
		assert.Equal(t, 0, s.Game().Turn)
	})

	t.Run("an untruthful hint concludes the game", func(t *testing.T) {
		s := NewSession(SessionOpts{})
		step(t, s, utils.NewGameLine(twelveCards))

		step(t, s, "Tell color Red for cards 0")
		assert.Equal(t, AwaitingStart, s.Phase())
	})

	t.Run("a new game command restarts straight away", func(t *testing.T) {
		t.Log("Given a game with one turn played")
		s := NewSession(SessionOpts{})
		step(t, s, utils.NewGameLine(twelveCards))
		step(t, s, "Play card 0")
		first := s.Game()

		t.Log("When a new game is requested")
		reports := step(t, s, utils.NewGameLine("W1 W2 W3 W4 W5 Y1 Y2 Y3 Y4 Y5 B1 B2 B3"))

		t.Log("Then the old game is summarised and the new one starts from scratch")
		assert.Equal(t, Playing, s.Phase())
		assert.True(t, first.Over())
		assert.NotSame(t, first, s.Game())

		require.Len(t, reports, 2)
		assert.Equal(t, protocol.Report{
			Kind:  protocol.Summary,
			Turn:  1,
			Cards: 1,
			Table: [deck.NumSuits]int{deck.Red: 1},
		}, reports[0])
		assert.Equal(t, 0, reports[1].Turn)
		assert.Equal(t, utils.Cards(t, "W1 W2 W3 W4 W5"), reports[1].CurrentHand)
		assert.Equal(t, [deck.NumSuits]int{}, reports[1].Table)
		assert.Equal(t, 0, s.Game().Score)
		assert.Empty(t, s.Game().Discard)
	})

	t.Run("a restart before any turn has no summary", func(t *testing.T) {
		s := NewSession(SessionOpts{})
		step(t, s, utils.NewGameLine(twelveCards))

		reports := step(t, s, utils.NewGameLine(elevenCards))
		require.Len(t, reports, 1)
		assert.Equal(t, protocol.Status, reports[0].Kind)
	})

	t.Run("anything else ends the session without a summary", func(t *testing.T) {
		s := NewSession(SessionOpts{})
		step(t, s, utils.NewGameLine(twelveCards))
		step(t, s, "Drop card 0")

		reports := step(t, s, "Play card 7")
		assert.Empty(t, reports)
		assert.True(t, s.Done())
	})
}

func TestEnded(t *testing.T) {
	s := NewSession(SessionOpts{})
	step(t, s, "nonsense")
	require.True(t, s.Done())

	_, err := s.Step(utils.NewGameLine(elevenCards))
	assert.ErrorIs(t, err, ErrSessionEnded)

	t.Run("the ended transition does nothing", func(t *testing.T) {
		st, reports, err := ended(state{phase: Ended}, protocol.Parse(utils.NewGameLine(elevenCards)))
		require.NoError(t, err)
		assert.Empty(t, reports)
		assert.Equal(t, Ended, st.phase)
	})
}

func TestSessionFatalErrors(t *testing.T) {
	logger, hook := test.NewNullLogger()
	s := NewSession(SessionOpts{Logger: logger})
	step(t, s, utils.NewGameLine(twelveCards))

	// a hand can only be short if the game was built by hand
	s.st.game = game.ExistingHanabi(game.HanabiOpts{
		Deck:  deck.Deck(utils.Cards(t, "B1 B2")),
		Hands: [2]game.Hand{game.NewHand(utils.Cards(t, "R1")), game.NewHand(utils.Cards(t, "G1"))},
	})

	_, err := s.Step("Drop card 3")
	assert.ErrorIs(t, err, game.ErrIndexOutOfRange)
	assert.True(t, s.Done())

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, s.ID(), hook.LastEntry().Data["session"])
}

func TestSessionLogging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	s := NewSession(SessionOpts{ID: "logged", Logger: logger})
	step(t, s, utils.NewGameLine(elevenCards))
	step(t, s, "Drop card 0")

	var concluded *logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "game concluded" {
			concluded = e
		}
	}
	require.NotNil(t, concluded)
	assert.Equal(t, logrus.InfoLevel, concluded.Level)
	assert.Equal(t, 1, concluded.Data["turn"])
	assert.Equal(t, "logged", concluded.Data["session"])
}

func TestPhaseText(t *testing.T) {
	for _, p := range []Phase{AwaitingStart, Playing, Ended} {
		text, err := p.MarshalText()
		require.NoError(t, err)

		var back Phase
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, p, back)
	}

	var p Phase
	assert.ErrorIs(t, p.UnmarshalText([]byte("napping")), ErrUnknownPhase)
}
