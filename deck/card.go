package deck

import (
	"errors"
	"fmt"
)

var ErrMalformedCard = errors.New("malformed card signature")

// Suit represents the colour of a card
type Suit int

// Suits are ordered the way the table is reported
const (
	Red Suit = iota
	Green
	Blue
	White
	Yellow
	NumSuits
)

var suitLetters = [NumSuits]byte{'R', 'G', 'B', 'W', 'Y'}

var suitNames = [NumSuits]string{"Red", "Green", "Blue", "White", "Yellow"}

// AllSuits lists every suit in table order
var AllSuits = [NumSuits]Suit{Red, Green, Blue, White, Yellow}

func (s Suit) String() string {
	if !s.valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Letter returns the single character used in card signatures
func (s Suit) Letter() byte {
	if !s.valid() {
		return '?'
	}
	return suitLetters[s]
}

func (s Suit) valid() bool {
	return s >= Red && s < NumSuits
}

// SuitFromLetter looks up a suit by its signature letter
func SuitFromLetter(b byte) (Suit, bool) {
	for i, l := range suitLetters {
		if l == b {
			return Suit(i), true
		}
	}
	return 0, false
}

// SuitFromName looks up a suit by its colour name, e.g. "Red"
func SuitFromName(name string) (Suit, bool) {
	for i, n := range suitNames {
		if n == name {
			return Suit(i), true
		}
	}
	return 0, false
}

// Rank represents the number on a card
type Rank int

const (
	MinRank Rank = 1
	MaxRank Rank = 5
)

// RankFromDigit converts a single digit character into a rank
func RankFromDigit(b byte) (Rank, bool) {
	r := Rank(b) - '0'
	if r < MinRank || r > MaxRank {
		return 0, false
	}
	return r, true
}

// Card is a plain card: a suit and a rank.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard constructs a card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Suit: suit, Rank: rank}
}

// ParseCard parses a two character signature such as "R1"
func ParseCard(signature string) (Card, error) {
	if len(signature) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrMalformedCard, signature)
	}

	suit, ok := SuitFromLetter(signature[0])
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrMalformedCard, signature)
	}
	rank, ok := RankFromDigit(signature[1])
	if !ok {
		return Card{}, fmt.Errorf("%w: rank out of range in %q", ErrMalformedCard, signature)
	}

	return NewCard(rank, suit), nil
}

func (c Card) String() string {
	return string([]byte{c.Suit.Letter(), byte('0' + c.Rank)})
}

// MarshalText encodes a card as its signature
func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a card signature
func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
