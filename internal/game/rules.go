package game

import "errors"

var (
	ErrRoomFull                  = errors.New("room_full")
	ErrNotAWeapon                = errors.New("not_a_weapon")
	ErrNotAPotion                = errors.New("not_a_potion")
	ErrCannotSkip                = errors.New("cannot_skip")
	ErrCannotSkipTwoInRow        = errors.New("cannot_skip_two_in_row")
	ErrNotAMonster               = errors.New("not_a_monster")
	ErrIndexOutOfBounds          = errors.New("index_out_of_bounds")
	ErrNoWeaponEquipped          = errors.New("no_weapon_equipped")
	ErrMonsterTooStrongForWeapon = errors.New("monster_too_strong_for_weapon")
	ErrInvalidAction             = errors.New("invalid_action")
)

// ValidateSkip reports whether the room dealt on turn may be run from.
// A partially resolved room cannot be skipped, and neither can two
// consecutive rooms.
func ValidateSkip(room *Room, turn, lastSkipped int) error {
	if !room.IsFull() {
		return ErrCannotSkip
	}
	if turn != 1 && turn-lastSkipped == 1 {
		return ErrCannotSkipTwoInRow
	}
	return nil
}
