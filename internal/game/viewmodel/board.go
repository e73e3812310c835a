package viewmodel

import "scoundrel/internal/game"

type SlotView struct {
	Position int
	Label    string
	Suit     game.Suit
	Kind     game.CardKind
	Strength int
}

type BoardView struct {
	Slots          []SlotView
	Health         int
	MaxHealth      int
	WeaponStrength int
	FightBelow     int
	CardsLeft      int
	Turn           int
	TurnSkipped    int
	TurnHealed     int
}

// BuildBoard flattens a game snapshot for renderers. Slot positions are
// 1-based, matching what the player types.
func BuildBoard(info game.GameInfo) BoardView {
	slots := make([]SlotView, 0, len(info.RoomCards))
	for i, c := range info.RoomCards {
		slots = append(slots, SlotView{
			Position: i + 1,
			Label:    c.String(),
			Suit:     c.Suit,
			Kind:     c.Kind,
			Strength: c.Strength,
		})
	}
	return BoardView{
		Slots:          slots,
		Health:         info.Health,
		MaxHealth:      game.MaxHealth,
		WeaponStrength: info.WeaponStrength,
		FightBelow:     info.LastSlain,
		CardsLeft:      info.RemainingCards,
		Turn:           info.Turn,
		TurnSkipped:    info.LastSkipped,
		TurnHealed:     info.LastHealed,
	}
}
