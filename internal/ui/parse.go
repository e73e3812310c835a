package ui

import (
	"errors"
	"strconv"
	"strings"

	"scoundrel/internal/game"
)

var (
	ErrEmptyInput       = errors.New("empty_input")
	ErrUnknownCommand   = errors.New("unknown_command")
	ErrMissingIndex     = errors.New("missing_index")
	ErrInvalidIndex     = errors.New("invalid_index")
	ErrIndexStartsAtOne = errors.New("index_starts_at_one")
	ErrInputReadFailed  = errors.New("input_read_failed")
)

var indexedCommands = map[string]game.ActionType{
	"f": game.ActionFight,
	"a": game.ActionKill,
	"e": game.ActionEquip,
	"h": game.ActionHeal,
}

var bareCommands = map[string]game.ActionType{
	"q": game.ActionQuit,
	"s": game.ActionSkip,
	"r": game.ActionPrintRules,
}

// ParseAction turns one line of player input into an Action. Card positions
// are typed 1-based and returned 0-based. Extra tokens are rejected.
func ParseAction(line string) (game.Action, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return game.Action{}, ErrEmptyInput
	}
	if actionType, ok := bareCommands[fields[0]]; ok {
		if len(fields) > 1 {
			return game.Action{}, ErrUnknownCommand
		}
		return game.Action{Type: actionType}, nil
	}

	actionType, ok := indexedCommands[fields[0]]
	if !ok {
		return game.Action{}, ErrUnknownCommand
	}
	switch {
	case len(fields) < 2:
		return game.Action{}, ErrMissingIndex
	case len(fields) > 2:
		return game.Action{}, ErrUnknownCommand
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 0 {
		return game.Action{}, ErrInvalidIndex
	}
	if n == 0 {
		return game.Action{}, ErrIndexStartsAtOne
	}
	return game.Action{Type: actionType, Index: n - 1}, nil
}
