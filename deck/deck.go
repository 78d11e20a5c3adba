package deck

import (
	"fmt"
	"math/rand"
)

// Deck represents the undealt cards, drawn from the front
type Deck []Card

// New creates a complete Hanabi deck: three ones, two each of
// twos to fours and a single five in every suit.
func New() Deck {
	copies := map[Rank]int{1: 3, 2: 2, 3: 2, 4: 2, 5: 1}

	cards := []Card{}
	for _, suit := range AllSuits {
		for rank := MinRank; rank <= MaxRank; rank++ {
			for i := 0; i < copies[rank]; i++ {
				cards = append(cards, NewCard(rank, suit))
			}
		}
	}
	return cards
}

// Parse builds a deck from card signatures, keeping their order
func Parse(signatures []string) (Deck, error) {
	d := make(Deck, 0, len(signatures))
	for i, sig := range signatures {
		c, err := ParseCard(sig)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i, err)
		}
		d = append(d, c)
	}
	return d, nil
}

// Shuffle shuffles the deck of cards
func (d Deck) Shuffle(r *rand.Rand) {
	r.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// Len returns the number of undealt cards
func (d Deck) Len() int {
	return len(d)
}

// Deal deals n cards from the front of the deck.
// An out of range n deals nothing.
func (d *Deck) Deal(n int) []Card {
	if n < 0 || n > len(*d) {
		return []Card{}
	}
	dealt := make([]Card, n)
	copy(dealt, (*d)[:n])
	*d = (*d)[n:]
	return dealt
}

// Draw takes the front card of the deck
func (d *Deck) Draw() (Card, bool) {
	if len(*d) == 0 {
		return Card{}, false
	}
	c := (*d)[0]
	*d = (*d)[1:]
	return c, true
}

func (d Deck) String() string {
	s := ""
	for i, c := range d {
		if i > 0 {
			s += " "
		}
		s += c.String()
	}
	return s
}
