package game

import (
	"math/rand"
	"time"
)

const DeckSize = 44

// Deck is the face-down draw pile. The top of the pile is the end of cards,
// the bottom is index 0.
type Deck struct {
	cards []Card
}

// NewDeck builds the 44-card dungeon (no red face cards, no jokers) and
// shuffles it once with rnd. A nil rnd is seeded from the clock.
func NewDeck(rnd *rand.Rand) *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, s := range []Suit{Spades, Clubs} {
		for r := Two; r <= Ace; r++ {
			cards = append(cards, NewCard(s, r))
		}
	}
	for _, s := range []Suit{Diamonds, Hearts} {
		for r := Two; r <= Ten; r++ {
			cards = append(cards, NewCard(s, r))
		}
	}
	d := &Deck{cards: cards}
	d.shuffle(rnd)
	return d
}

// NewDeckFrom returns an unshuffled deck whose last card is drawn first.
func NewDeckFrom(cards []Card) *Deck {
	return &Deck{cards: append([]Card(nil), cards...)}
}

func (d *Deck) shuffle(rnd *rand.Rand) {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	rnd.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	last := len(d.cards) - 1
	c := d.cards[last]
	d.cards = d.cards[:last]
	return c, true
}

// PutOnBottom slides cards under the pile. A batch keeps its order: the
// first card of the batch ends up as the very bottom card.
func (d *Deck) PutOnBottom(cards ...Card) {
	if len(cards) == 0 {
		return
	}
	merged := make([]Card, 0, len(cards)+len(d.cards))
	merged = append(merged, cards...)
	d.cards = append(merged, d.cards...)
}

func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

func (d *Deck) Len() int {
	return len(d.cards)
}

func (d *Deck) RemainingMonsterStrength() int {
	total := 0
	for _, c := range d.cards {
		if c.Kind == Monster {
			total += c.Strength
		}
	}
	return total
}
