package game

import (
	"fmt"

	"github.com/minaorangina/hanabi/deck"
)

// HeldCard is a card in a player's hand, along with what the
// player has been told about it
type HeldCard struct {
	deck.Card
	KnowsSuit bool
	KnowsRank bool
}

// Hand is an ordered set of cards; indices are how commands address them
type Hand []HeldCard

// NewHand constructs a hand with no knowledge about any card
func NewHand(cards []deck.Card) Hand {
	h := make(Hand, 0, len(cards))
	for _, c := range cards {
		h.Append(c)
	}
	return h
}

// Cards returns the plain cards in the hand
func (h Hand) Cards() []deck.Card {
	cards := make([]deck.Card, 0, len(h))
	for _, hc := range h {
		cards = append(cards, hc.Card)
	}
	return cards
}

func (h Hand) Len() int {
	return len(h)
}

// At returns the card at index i
func (h Hand) At(i int) (HeldCard, error) {
	if err := h.checkIndex(i); err != nil {
		return HeldCard{}, err
	}
	return h[i], nil
}

// RemoveAt removes the card at index i, shifting later cards left
func (h *Hand) RemoveAt(i int) (deck.Card, error) {
	if err := h.checkIndex(i); err != nil {
		return deck.Card{}, err
	}
	removed := (*h)[i].Card
	*h = append((*h)[:i], (*h)[i+1:]...)
	return removed, nil
}

// Append adds a card to the end of the hand
func (h *Hand) Append(c deck.Card) {
	*h = append(*h, HeldCard{Card: c})
}

// HintSuit tells the owner which of their cards are of the given suit.
// It returns false, changing nothing, if any named card is not of that suit.
func (h *Hand) HintSuit(suit deck.Suit, indices []int) (bool, error) {
	return h.hint(indices,
		func(c deck.Card) bool { return c.Suit == suit },
		func(hc *HeldCard) { hc.KnowsSuit = true },
	)
}

// HintRank tells the owner which of their cards have the given rank.
// It returns false, changing nothing, if any named card has another rank.
func (h *Hand) HintRank(rank deck.Rank, indices []int) (bool, error) {
	return h.hint(indices,
		func(c deck.Card) bool { return c.Rank == rank },
		func(hc *HeldCard) { hc.KnowsRank = true },
	)
}

func (h *Hand) hint(indices []int, matches func(deck.Card) bool, learn func(*HeldCard)) (bool, error) {
	for _, i := range indices {
		if err := h.checkIndex(i); err != nil {
			return false, err
		}
	}

	for _, i := range indices {
		if !matches((*h)[i].Card) {
			return false, nil
		}
	}

	for _, i := range indices {
		learn(&(*h)[i])
	}

	return true, nil
}

func (h Hand) checkIndex(i int) error {
	if i < 0 || i >= len(h) {
		return fmt.Errorf("%w: %d (hand has %d cards)", ErrIndexOutOfRange, i, len(h))
	}
	return nil
}
