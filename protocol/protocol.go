package protocol

import (
	"strings"

	"github.com/minaorangina/hanabi/deck"
)

// Cmd represents a command
type Cmd int

const (
	Invalid Cmd = iota
	NewGame
	PlayCard
	DropCard
	TellColor
	TellRank
)

var cmdNames = []string{
	"Invalid",
	"NewGame",
	"PlayCard",
	"DropCard",
	"TellColor",
	"TellRank",
}

func (c Cmd) String() string {
	if c < 0 || int(c) >= len(cmdNames) {
		return cmdNames[Invalid]
	}
	return cmdNames[c]
}

const (
	// MinDeckSize is the smallest deck a new game may start with:
	// two hands of five plus one card to draw.
	MinDeckSize = 11
	// MaxIndex is the highest card index a command may address
	MaxIndex = 4
	// MaxHintIndices is the most cards a single hint may name
	MaxHintIndices = 5
)

const (
	newGamePrefix   = "Start new game with deck"
	playCardPrefix  = "Play card "
	dropCardPrefix  = "Drop card "
	tellColorPrefix = "Tell color "
	tellRankPrefix  = "Tell rank "
	forCards        = " for cards"
)

// Command is a parsed input line. Only the fields relevant to Cmd are set.
type Command struct {
	Cmd     Cmd
	Line    string
	Deck    []deck.Card // NewGame
	Index   int         // PlayCard, DropCard
	Suit    deck.Suit   // TellColor
	Rank    deck.Rank   // TellRank
	Indices []int       // TellColor, TellRank
}

// NewGameLine formats the command that starts a game with the given cards
func NewGameLine(cards []deck.Card) string {
	var sb strings.Builder
	sb.WriteString(newGamePrefix)
	for _, c := range cards {
		sb.WriteString(" " + c.String())
	}
	return sb.String()
}

// InGame reports whether the command is one of the four turn commands
func (c Command) InGame() bool {
	switch c.Cmd {
	case PlayCard, DropCard, TellColor, TellRank:
		return true
	}
	return false
}

// Parse classifies a single line. Anything that is not exactly one of the
// five command shapes comes back as Invalid. Indices are only checked
// against the 0-4 range, never against the size of a hand.
func Parse(line string) Command {
	invalid := Command{Cmd: Invalid, Line: line}

	switch {
	case strings.HasPrefix(line, newGamePrefix):
		cards, ok := parseCards(line[len(newGamePrefix):])
		if !ok || len(cards) < MinDeckSize {
			return invalid
		}
		return Command{Cmd: NewGame, Line: line, Deck: cards}

	case strings.HasPrefix(line, playCardPrefix):
		idx, ok := parseIndex(line[len(playCardPrefix):])
		if !ok {
			return invalid
		}
		return Command{Cmd: PlayCard, Line: line, Index: idx}

	case strings.HasPrefix(line, dropCardPrefix):
		idx, ok := parseIndex(line[len(dropCardPrefix):])
		if !ok {
			return invalid
		}
		return Command{Cmd: DropCard, Line: line, Index: idx}

	case strings.HasPrefix(line, tellColorPrefix):
		name, rest, found := strings.Cut(line[len(tellColorPrefix):], forCards)
		if !found {
			return invalid
		}
		suit, ok := deck.SuitFromName(name)
		if !ok {
			return invalid
		}
		indices, ok := parseIndices(rest)
		if !ok {
			return invalid
		}
		return Command{Cmd: TellColor, Line: line, Suit: suit, Indices: indices}

	case strings.HasPrefix(line, tellRankPrefix):
		digit, rest, found := strings.Cut(line[len(tellRankPrefix):], forCards)
		if !found || len(digit) != 1 {
			return invalid
		}
		rank, ok := deck.RankFromDigit(digit[0])
		if !ok {
			return invalid
		}
		indices, ok := parseIndices(rest)
		if !ok {
			return invalid
		}
		return Command{Cmd: TellRank, Line: line, Rank: rank, Indices: indices}
	}

	return invalid
}

// tokens splits " a b c" into its single-space separated tokens.
// The leading space is required and empty tokens are rejected.
func tokens(s string) ([]string, bool) {
	if len(s) < 2 || s[0] != ' ' {
		return nil, false
	}
	toks := strings.Split(s[1:], " ")
	for _, tok := range toks {
		if tok == "" {
			return nil, false
		}
	}
	return toks, true
}

func parseCards(s string) ([]deck.Card, bool) {
	toks, ok := tokens(s)
	if !ok {
		return nil, false
	}
	cards := make([]deck.Card, 0, len(toks))
	for _, tok := range toks {
		c, err := deck.ParseCard(tok)
		if err != nil {
			return nil, false
		}
		cards = append(cards, c)
	}
	return cards, true
}

func parseIndex(s string) (int, bool) {
	if len(s) != 1 || s[0] < '0' || s[0] > '0'+MaxIndex {
		return 0, false
	}
	return int(s[0] - '0'), true
}

func parseIndices(s string) ([]int, bool) {
	toks, ok := tokens(s)
	if !ok || len(toks) > MaxHintIndices {
		return nil, false
	}
	indices := make([]int, 0, len(toks))
	for _, tok := range toks {
		idx, ok := parseIndex(tok)
		if !ok {
			return nil, false
		}
		indices = append(indices, idx)
	}
	return indices, true
}
