package i18n

const (
	BoardHealthKey  = "board.health"
	BoardWeaponKey  = "board.weapon"
	BoardDeckKey    = "board.deck"
	BoardTurnKey    = "board.turn"
	BoardSkippedKey = "board.skipped"
	BoardHealedKey  = "board.healed"
	BoardEmptyKey   = "board.empty"

	PromptKey  = "prompt.action"
	GoodbyeKey = "session.goodbye"
	WinKey     = "outcome.win"
	LoseKey    = "outcome.lose"
	ScoreKey   = "outcome.score"

	RulesTitleKey = "rules.title"
	RulesBodyKey  = "rules.body"

	ErrRoomFullKey                  = "error.room_full"
	ErrNotAWeaponKey                = "error.not_a_weapon"
	ErrNotAPotionKey                = "error.not_a_potion"
	ErrCannotSkipKey                = "error.cannot_skip"
	ErrCannotSkipTwoInRowKey        = "error.cannot_skip_two_in_row"
	ErrNotAMonsterKey               = "error.not_a_monster"
	ErrIndexOutOfBoundsKey          = "error.index_out_of_bounds"
	ErrNoWeaponEquippedKey          = "error.no_weapon_equipped"
	ErrMonsterTooStrongForWeaponKey = "error.monster_too_strong_for_weapon"
	ErrInvalidActionKey             = "error.invalid_action"
	ErrEmptyInputKey                = "error.empty_input"
	ErrUnknownCommandKey            = "error.unknown_command"
	ErrMissingIndexKey              = "error.missing_index"
	ErrInvalidIndexKey              = "error.invalid_index"
	ErrIndexStartsAtOneKey          = "error.index_starts_at_one"
	ErrUnexpectedKey                = "error.unexpected"
)
