package game

import (
	"errors"
	"fmt"

	"github.com/minaorangina/hanabi/deck"
	"github.com/minaorangina/hanabi/protocol"
)

var (
	ErrNilGame         = errors.New("game is nil")
	ErrGameNotStarted  = errors.New("game has not been set up")
	ErrGameOver        = errors.New("game is already over")
	ErrDeckTooSmall    = errors.New("deck is too small to deal both hands")
	ErrDeckEmpty       = errors.New("deck is empty")
	ErrNotTurnCommand  = errors.New("not a turn command")
	ErrIndexOutOfRange = errors.New("card index out of range")
)

const (
	numPlayers = 2
	handSize   = 5
)

// Hanabi is a single two player game, from the deal until it concludes
type Hanabi struct {
	Deck       deck.Deck
	Table      Table
	Discard    []deck.Card
	Hands      [numPlayers]Hand
	CurrentIdx int
	Turn       int
	Score      int
	stage      Stage
}

// HanabiOpts describes a game part way through
type HanabiOpts struct {
	Deck       deck.Deck
	Table      Table
	Discard    []deck.Card
	Hands      [numPlayers]Hand
	CurrentIdx int
	Turn       int
}

// New deals a new game: five cards to the current player, the next five to
// the other player, and the rest become the deck.
func New(cards []deck.Card) (*Hanabi, error) {
	if len(cards) < numPlayers*handSize+1 {
		return nil, fmt.Errorf("%w: got %d cards", ErrDeckTooSmall, len(cards))
	}

	d := make(deck.Deck, len(cards))
	copy(d, cards)

	h := &Hanabi{Discard: []deck.Card{}}
	for i := range h.Hands {
		h.Hands[i] = NewHand(d.Deal(handSize))
	}
	h.Deck = d
	h.stage = active

	return h, nil
}

// ExistingHanabi constructs a game already in progress
func ExistingHanabi(opts HanabiOpts) *Hanabi {
	h := &Hanabi{
		Deck:       opts.Deck,
		Table:      opts.Table,
		Discard:    opts.Discard,
		Hands:      opts.Hands,
		CurrentIdx: opts.CurrentIdx % numPlayers,
		Turn:       opts.Turn,
		Score:      opts.Table.Total(),
		stage:      active,
	}

	if h.Deck == nil {
		h.Deck = deck.Deck{}
	}
	if h.Discard == nil {
		h.Discard = []deck.Card{}
	}

	return h
}

// Over reports whether the game has concluded
func (h *Hanabi) Over() bool {
	return h.stage == concluded
}

// CurrentHand is the hand of the player whose turn it is
func (h *Hanabi) CurrentHand() Hand {
	return h.Hands[h.CurrentIdx]
}

// NextHand is the hand of the other player
func (h *Hanabi) NextHand() Hand {
	return h.Hands[h.nextIdx()]
}

// CardCount counts every card in the game: hands, deck, table and discard
func (h *Hanabi) CardCount() int {
	total := h.Deck.Len() + h.Table.Total() + len(h.Discard)
	for _, hand := range h.Hands {
		total += hand.Len()
	}
	return total
}

// Apply plays a single turn. Breaking a rule is not an error: it concludes
// the game. Errors are only returned for commands that cannot be applied at all.
func (h *Hanabi) Apply(cmd protocol.Command) ([]protocol.Report, error) {
	if h == nil {
		return nil, ErrNilGame
	}
	if h.stage == awaitingSetup {
		return nil, ErrGameNotStarted
	}
	if h.stage == concluded {
		return nil, ErrGameOver
	}
	if !cmd.InGame() {
		return nil, fmt.Errorf("%w: %s", ErrNotTurnCommand, cmd.Cmd)
	}

	var err error
	switch cmd.Cmd {
	case protocol.PlayCard:
		err = h.play(cmd.Index)

	case protocol.DropCard:
		err = h.drop(cmd.Index)

	case protocol.TellColor:
		err = h.tell(func(hand *Hand) (bool, error) {
			return hand.HintSuit(cmd.Suit, cmd.Indices)
		})

	case protocol.TellRank:
		err = h.tell(func(hand *Hand) (bool, error) {
			return hand.HintRank(cmd.Rank, cmd.Indices)
		})
	}
	if err != nil {
		return nil, fmt.Errorf("turn %d: %w", h.Turn+1, err)
	}
	h.Turn++

	reports := []protocol.Report{}
	if h.stage == concluded {
		reports = append(reports, h.buildSummary())
	}

	h.turn()

	return append(reports, h.Status()), nil
}

// Conclude ends the game early, e.g. when a new game is requested.
// A summary is only reported if at least one turn was played.
func (h *Hanabi) Conclude() []protocol.Report {
	if h == nil {
		return nil
	}
	h.conclude()
	if h.Turn == 0 {
		return nil
	}
	return []protocol.Report{h.buildSummary()}
}

func (h *Hanabi) play(idx int) error {
	hand, card, err := h.take(idx)
	if err != nil {
		return err
	}

	if h.Table.Place(card) {
		h.Score++
	} else {
		h.Discard = append(h.Discard, card)
		h.conclude()
	}

	return h.replenish(hand)
}

func (h *Hanabi) drop(idx int) error {
	hand, card, err := h.take(idx)
	if err != nil {
		return err
	}

	h.Discard = append(h.Discard, card)

	return h.replenish(hand)
}

// take removes a card from the current hand, but only once it is certain
// a replacement can be drawn. On error nothing has changed.
func (h *Hanabi) take(idx int) (*Hand, deck.Card, error) {
	hand := &h.Hands[h.CurrentIdx]
	if _, err := hand.At(idx); err != nil {
		return nil, deck.Card{}, err
	}
	if h.Deck.Len() == 0 {
		return nil, deck.Card{}, ErrDeckEmpty
	}

	card, err := hand.RemoveAt(idx)
	return hand, card, err
}

// hints are always about the other player's cards
func (h *Hanabi) tell(hint func(*Hand) (bool, error)) error {
	truthful, err := hint(&h.Hands[h.nextIdx()])
	if err != nil {
		return err
	}
	if !truthful {
		h.conclude()
	}
	return nil
}

// replenish draws the front card of the deck. Taking the last card
// concludes the game once this turn is over.
func (h *Hanabi) replenish(hand *Hand) error {
	c, ok := h.Deck.Draw()
	if !ok {
		return ErrDeckEmpty
	}
	hand.Append(c)

	if h.Deck.Len() == 0 {
		h.conclude()
	}
	return nil
}

func (h *Hanabi) conclude() {
	h.stage = concluded
}

func (h *Hanabi) turn() {
	h.CurrentIdx = h.nextIdx()
}

func (h *Hanabi) nextIdx() int {
	return (h.CurrentIdx + 1) % numPlayers
}
