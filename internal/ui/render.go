package ui

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"
	"golang.org/x/text/message"

	"scoundrel/internal/game"
	"scoundrel/internal/game/viewmodel"
	"scoundrel/internal/i18n"
)

const clearScreen = "\x1B[2J\x1B[1;1H"

type Renderer struct {
	out         io.Writer
	p           *message.Printer
	clearScreen bool
}

func NewRenderer(out io.Writer, p *message.Printer, clear bool) *Renderer {
	return &Renderer{out: out, p: p, clearScreen: clear}
}

// Board draws the room and the player's stats.
func (r *Renderer) Board(view viewmodel.BoardView) error {
	if r.clearScreen {
		fmt.Fprint(r.out, clearScreen)
	}
	if len(view.Slots) == 0 {
		fmt.Fprintln(r.out, r.p.Sprintf(i18n.BoardEmptyKey))
	} else {
		header := make([]string, 0, len(view.Slots))
		labels := make([]string, 0, len(view.Slots))
		for _, s := range view.Slots {
			header = append(header, strconv.Itoa(s.Position))
			labels = append(labels, slotLabel(s))
		}
		table, err := pterm.DefaultTable.
			WithHasHeader().
			WithBoxed().
			WithData(pterm.TableData{header, labels}).
			Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(r.out, table)
	}

	fmt.Fprintln(r.out, r.p.Sprintf(i18n.BoardHealthKey, view.Health, view.MaxHealth))
	fmt.Fprintln(r.out, r.p.Sprintf(i18n.BoardWeaponKey, view.WeaponStrength, view.FightBelow))
	fmt.Fprintln(r.out, r.p.Sprintf(i18n.BoardDeckKey, view.CardsLeft))
	fmt.Fprintln(r.out, r.p.Sprintf(i18n.BoardTurnKey, view.Turn))
	fmt.Fprintln(r.out, r.p.Sprintf(i18n.BoardSkippedKey, view.TurnSkipped))
	fmt.Fprintln(r.out, r.p.Sprintf(i18n.BoardHealedKey, view.TurnHealed))
	return nil
}

func slotLabel(s viewmodel.SlotView) string {
	switch s.Kind {
	case game.Monster:
		return pterm.LightWhite(s.Label)
	case game.Weapon:
		return pterm.LightCyan(s.Label)
	case game.Potion:
		return pterm.LightRed(s.Label)
	}
	return s.Label
}

func (r *Renderer) Prompt() {
	fmt.Fprint(r.out, r.p.Sprintf(i18n.PromptKey))
}

func (r *Renderer) Rules() {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, pterm.Bold.Sprint(r.p.Sprintf(i18n.RulesTitleKey)))
	fmt.Fprintln(r.out, r.p.Sprintf(i18n.RulesBodyKey))
	fmt.Fprintln(r.out)
}

// Error prints a rejected action or bad input so the player can retry.
func (r *Renderer) Error(err error) {
	key, known := errorKey(err)
	var msg string
	if known {
		msg = r.p.Sprintf(key)
	} else {
		msg = r.p.Sprintf(i18n.ErrUnexpectedKey, err)
	}
	fmt.Fprintln(r.out, pterm.Yellow(msg))
}

// Outcome prints the result. A loss is shown with a negative score.
func (r *Renderer) Outcome(o game.Outcome) {
	switch o.Result {
	case game.ResultWin:
		fmt.Fprintln(r.out, pterm.LightGreen(r.p.Sprintf(i18n.WinKey)))
		fmt.Fprintln(r.out, r.p.Sprintf(i18n.ScoreKey, o.Score))
	case game.ResultLose:
		fmt.Fprintln(r.out, pterm.LightRed(r.p.Sprintf(i18n.LoseKey)))
		fmt.Fprintln(r.out, r.p.Sprintf(i18n.ScoreKey, -o.Score))
	}
}

func (r *Renderer) Goodbye() {
	fmt.Fprintln(r.out, r.p.Sprintf(i18n.GoodbyeKey))
}

func errorKey(err error) (string, bool) {
	switch {
	case errors.Is(err, game.ErrRoomFull):
		return i18n.ErrRoomFullKey, true
	case errors.Is(err, game.ErrNotAWeapon):
		return i18n.ErrNotAWeaponKey, true
	case errors.Is(err, game.ErrNotAPotion):
		return i18n.ErrNotAPotionKey, true
	case errors.Is(err, game.ErrCannotSkip):
		return i18n.ErrCannotSkipKey, true
	case errors.Is(err, game.ErrCannotSkipTwoInRow):
		return i18n.ErrCannotSkipTwoInRowKey, true
	case errors.Is(err, game.ErrNotAMonster):
		return i18n.ErrNotAMonsterKey, true
	case errors.Is(err, game.ErrIndexOutOfBounds):
		return i18n.ErrIndexOutOfBoundsKey, true
	case errors.Is(err, game.ErrNoWeaponEquipped):
		return i18n.ErrNoWeaponEquippedKey, true
	case errors.Is(err, game.ErrMonsterTooStrongForWeapon):
		return i18n.ErrMonsterTooStrongForWeaponKey, true
	case errors.Is(err, game.ErrInvalidAction):
		return i18n.ErrInvalidActionKey, true
	case errors.Is(err, ErrEmptyInput):
		return i18n.ErrEmptyInputKey, true
	case errors.Is(err, ErrUnknownCommand):
		return i18n.ErrUnknownCommandKey, true
	case errors.Is(err, ErrMissingIndex):
		return i18n.ErrMissingIndexKey, true
	case errors.Is(err, ErrInvalidIndex):
		return i18n.ErrInvalidIndexKey, true
	case errors.Is(err, ErrIndexStartsAtOne):
		return i18n.ErrIndexStartsAtOneKey, true
	default:
		return "", false
	}
}
