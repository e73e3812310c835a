package game

type ActionType string

const (
	ActionQuit       ActionType = "quit"
	ActionSkip       ActionType = "skip"
	ActionPrintRules ActionType = "rules"
	ActionFight      ActionType = "fight"
	ActionKill       ActionType = "kill"
	ActionHeal       ActionType = "heal"
	ActionEquip      ActionType = "equip"
)

// Action is one player command. Index is the 0-based room slot and is only
// read by fight, kill, heal and equip.
type Action struct {
	Type  ActionType
	Index int
}

type Event string

const (
	EventQuitGame      Event = "quit_game"
	EventTurnEnded     Event = "turn_ended"
	EventActionApplied Event = "action_applied"
	EventRulesPrinted  Event = "rules_printed"
)

type Result string

const (
	ResultWin  Result = "win"
	ResultLose Result = "lose"
)

// Outcome carries a non-negative score for both results.
type Outcome struct {
	Result Result `json:"result"`
	Score  int    `json:"score"`
}

type GameInfo struct {
	Health         int    `json:"health"`
	RemainingCards int    `json:"remaining_cards"`
	WeaponStrength int    `json:"weapon_strength"`
	LastSlain      int    `json:"last_slain"`
	Turn           int    `json:"turn"`
	LastSkipped    int    `json:"last_skipped"`
	LastHealed     int    `json:"last_healed"`
	RoomCards      []Card `json:"room_cards"`
}
