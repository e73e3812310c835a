package game

import "strconv"

type Suit int

type Rank int

type CardKind int

const (
	Spades Suit = iota
	Clubs
	Diamonds
	Hearts
)

const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

const (
	Monster CardKind = iota
	Weapon
	Potion
)

func (s Suit) String() string {
	switch s {
	case Spades:
		return "spades"
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	case Hearts:
		return "hearts"
	}
	return "suit(" + strconv.Itoa(int(s)) + ")"
}

func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	}
	return "?"
}

func (s Suit) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	return strconv.Itoa(int(r))
}

func (r Rank) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (k CardKind) String() string {
	switch k {
	case Monster:
		return "monster"
	case Weapon:
		return "weapon"
	case Potion:
		return "potion"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

func (k CardKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Card is immutable once built by NewCard; Strength and Kind are derived
// from Rank and Suit.
type Card struct {
	Suit     Suit     `json:"suit"`
	Rank     Rank     `json:"rank"`
	Strength int      `json:"strength"`
	Kind     CardKind `json:"kind"`
}

func NewCard(suit Suit, rank Rank) Card {
	return Card{
		Suit:     suit,
		Rank:     rank,
		Strength: rankStrength(rank),
		Kind:     suitKind(suit),
	}
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.Symbol()
}

func rankStrength(r Rank) int {
	switch r {
	case Jack:
		return 11
	case Queen:
		return 12
	case King:
		return 13
	case Ace:
		return 14
	default:
		return int(r)
	}
}

func suitKind(s Suit) CardKind {
	switch s {
	case Spades, Clubs:
		return Monster
	case Diamonds:
		return Weapon
	case Hearts:
		return Potion
	}
	return Monster
}
