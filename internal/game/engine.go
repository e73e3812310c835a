package game

import "math/rand"

// Game is the single mutable root of a play session. It owns its deck,
// room and player; nothing else keeps references to them.
type Game struct {
	deck   *Deck
	room   *Room
	player *Player

	turn            int
	lastSkippedTurn int
}

// New deals a fresh game: shuffled deck, empty room, full health, turn 0.
func New(rnd *rand.Rand) *Game {
	return &Game{
		deck:   NewDeck(rnd),
		room:   NewRoom(),
		player: NewPlayer(),
	}
}

// NewWithDeck starts a game on a prepared deck.
func NewWithDeck(d *Deck) *Game {
	return &Game{
		deck:   d,
		room:   NewRoom(),
		player: NewPlayer(),
	}
}

// StartTurn advances the turn counter and tops the room up from the deck.
func (g *Game) StartTurn() {
	g.turn++
	g.fillRoom()
}

func (g *Game) Apply(a Action) (Event, error) {
	switch a.Type {
	case ActionQuit:
		return EventQuitGame, nil
	case ActionPrintRules:
		return EventRulesPrinted, nil
	case ActionSkip:
		if err := g.CanSkip(); err != nil {
			return "", err
		}
		g.room.ClearInto(g.deck)
		g.lastSkippedTurn = g.turn
		return EventTurnEnded, nil
	case ActionFight:
		return g.resolve(a.Index, g.player.Fight)
	case ActionKill:
		return g.resolve(a.Index, g.player.Kill)
	case ActionHeal:
		return g.resolve(a.Index, func(c Card) error {
			return g.player.Heal(c, g.turn)
		})
	case ActionEquip:
		return g.resolve(a.Index, g.player.EquipWeapon)
	default:
		return "", ErrInvalidAction
	}
}

func (g *Game) CanSkip() error {
	return ValidateSkip(g.room, g.turn, g.lastSkippedTurn)
}

// resolve looks the card up, lets the player act on it and only then
// discards it, so a rejected action leaves the room untouched.
func (g *Game) resolve(index int, act func(Card) error) (Event, error) {
	c, err := g.room.Get(index)
	if err != nil {
		return "", err
	}
	if err := act(c); err != nil {
		return "", err
	}
	if _, err := g.room.Remove(index); err != nil {
		return "", err
	}
	if g.room.Len() == 1 {
		return EventTurnEnded, nil
	}
	return EventActionApplied, nil
}

func (g *Game) IsOver() bool {
	return g.deck.IsEmpty() || g.player.Health == 0
}

func (g *Game) Outcome() (Outcome, bool) {
	if !g.IsOver() {
		return Outcome{}, false
	}
	if g.player.Health == 0 {
		return Outcome{Result: ResultLose, Score: g.deck.RemainingMonsterStrength()}, true
	}
	return Outcome{Result: ResultWin, Score: g.player.Health}, true
}

func (g *Game) Info() GameInfo {
	return GameInfo{
		Health:         g.player.Health,
		RemainingCards: g.deck.Len(),
		WeaponStrength: g.player.Weapon.Strength,
		LastSlain:      g.player.Weapon.LastSlain,
		Turn:           g.turn,
		LastSkipped:    g.lastSkippedTurn,
		LastHealed:     g.player.LastHealedTurn,
		RoomCards:      g.room.Cards(),
	}
}

func (g *Game) fillRoom() {
	for !g.room.IsFull() {
		c, ok := g.deck.Draw()
		if !ok {
			return
		}
		_ = g.room.Add(c)
	}
}
