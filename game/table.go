package game

import "github.com/minaorangina/hanabi/deck"

const maxTableCards = int(deck.NumSuits) * int(deck.MaxRank)

// Table holds the played stack for each suit.
// Every stack is exactly ranks 1..k.
type Table [deck.NumSuits][]deck.Card

// CanPlace reports whether c continues its suit's stack
func (t *Table) CanPlace(c deck.Card) bool {
	return int(c.Rank) == len(t[c.Suit])+1 &&
		t.Total() < maxTableCards
}

// Place adds c to its stack if it is a legal continuation
func (t *Table) Place(c deck.Card) bool {
	if !t.CanPlace(c) {
		return false
	}
	t[c.Suit] = append(t[c.Suit], c)
	return true
}

// Height returns the length of a suit's stack
func (t *Table) Height(s deck.Suit) int {
	return len(t[s])
}

// Total returns the number of cards on the table
func (t *Table) Total() int {
	total := 0
	for _, stack := range t {
		total += len(stack)
	}
	return total
}

// Counts returns the height of every stack, in table order
func (t *Table) Counts() [deck.NumSuits]int {
	counts := [deck.NumSuits]int{}
	for _, s := range deck.AllSuits {
		counts[s] = len(t[s])
	}
	return counts
}
