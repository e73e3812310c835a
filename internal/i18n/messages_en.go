package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, BoardHealthKey, "health: %d/%d")
	message.SetString(lang, BoardWeaponKey, "weapon: %d | can fight below: %d")
	message.SetString(lang, BoardDeckKey, "cards in deck: %d")
	message.SetString(lang, BoardTurnKey, "turn: %d")
	message.SetString(lang, BoardSkippedKey, "turn skipped: %d")
	message.SetString(lang, BoardHealedKey, "turn healed: %d")
	message.SetString(lang, BoardEmptyKey, "the room is empty")

	message.SetString(lang, PromptKey, "action [f|a|e|h <n>, s, r, q]: ")
	message.SetString(lang, GoodbyeKey, "You leave the dungeon.")
	message.SetString(lang, WinKey, "You win!")
	message.SetString(lang, LoseKey, "You lose")
	message.SetString(lang, ScoreKey, "Score: %d")

	message.SetString(lang, RulesTitleKey, "Rules")
	message.SetString(lang, RulesBodyKey, `The dungeon is a deck of 44 cards: clubs and spades are monsters,
diamonds are weapons and hearts are health potions. Red face cards and
aces are not part of the dungeon.

Every turn a room of 4 cards is dealt. Resolve 3 of them; the last one
stays and becomes part of the next room.

  f <n>  fight the monster at position n bare handed: lose its strength in health
  a <n>  attack the monster at position n with your weapon: lose only the
         difference between the monster and the weapon
  e <n>  equip the weapon at position n, discarding the current one
  h <n>  drink the potion at position n (only one potion per turn heals,
         health never goes above 20)
  s      skip the room: all 4 cards go to the bottom of the deck. You cannot
         skip a room you started resolving, nor two rooms in a row
  r      show these rules
  q      quit

Once a weapon has slain a monster it can only be used against monsters
weaker than the last one it killed.

The game ends when your health reaches 0 or the dungeon runs out of cards.
If the last room has 4 cards or fewer left you win by default. Winning
scores your remaining health; losing scores minus the strength of the
monsters still in the deck.`)

	message.SetString(lang, ErrRoomFullKey, "The room is already full.")
	message.SetString(lang, ErrNotAWeaponKey, "That card is not a weapon.")
	message.SetString(lang, ErrNotAPotionKey, "That card is not a potion.")
	message.SetString(lang, ErrCannotSkipKey, "You cannot skip a room you already started.")
	message.SetString(lang, ErrCannotSkipTwoInRowKey, "You cannot skip two rooms in a row.")
	message.SetString(lang, ErrNotAMonsterKey, "That card is not a monster.")
	message.SetString(lang, ErrIndexOutOfBoundsKey, "There is no card at that position.")
	message.SetString(lang, ErrNoWeaponEquippedKey, "You have no weapon equipped.")
	message.SetString(lang, ErrMonsterTooStrongForWeaponKey, "Your weapon can only slay monsters weaker than the last one it killed.")
	message.SetString(lang, ErrInvalidActionKey, "That action is not allowed.")
	message.SetString(lang, ErrEmptyInputKey, "Type an action.")
	message.SetString(lang, ErrUnknownCommandKey, "Unknown command, type r for the rules.")
	message.SetString(lang, ErrMissingIndexKey, "That command needs a card position.")
	message.SetString(lang, ErrInvalidIndexKey, "The card position must be a number.")
	message.SetString(lang, ErrIndexStartsAtOneKey, "Card positions start at 1.")
	message.SetString(lang, ErrUnexpectedKey, "Something went wrong: %v")
}
