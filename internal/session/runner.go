package session

import (
	"context"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"scoundrel/internal/game"
	"scoundrel/internal/game/viewmodel"
	"scoundrel/internal/ui"
)

type Summary struct {
	SessionID string        `json:"session_id"`
	Turns     int           `json:"turns"`
	Quit      bool          `json:"quit"`
	Outcome   *game.Outcome `json:"outcome,omitempty"`
}

// Runner plays one game against a prompt and a renderer. It is the only
// owner of the game for the lifetime of the session.
type Runner struct {
	id       string
	game     *game.Game
	prompt   *ui.Prompt
	renderer *ui.Renderer
	logger   zerolog.Logger
}

// NewRunner tags the session with a ULID so its log lines sort by start time.
func NewRunner(g *game.Game, prompt *ui.Prompt, renderer *ui.Renderer) *Runner {
	id := ulid.Make().String()
	return &Runner{
		id:       id,
		game:     g,
		prompt:   prompt,
		renderer: renderer,
		logger:   log.With().Str("session_id", id).Logger(),
	}
}

func (r *Runner) ID() string {
	return r.id
}

// Run deals turns until the game is over or the player quits. The only
// error it returns is fatal: input could not be read or ctx was canceled.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	summary := Summary{SessionID: r.id}
	r.logger.Info().Msg("session started")

	for !r.game.IsOver() {
		r.game.StartTurn()
		info := r.game.Info()
		r.logger.Debug().
			Int("turn", info.Turn).
			Int("room", len(info.RoomCards)).
			Int("deck", info.RemainingCards).
			Msg("turn started")

		quit, err := r.playTurn(ctx)
		summary.Turns = r.game.Info().Turn
		if err != nil {
			r.logger.Error().Err(err).Int("turn", summary.Turns).Msg("session aborted")
			return summary, err
		}
		if quit {
			summary.Quit = true
			r.renderer.Goodbye()
			r.logger.Info().Interface("summary", summary).Msg("player quit")
			return summary, nil
		}
	}

	outcome, _ := r.game.Outcome()
	summary.Outcome = &outcome
	if err := r.renderer.Board(viewmodel.BuildBoard(r.game.Info())); err != nil {
		return summary, err
	}
	r.renderer.Outcome(outcome)
	r.logger.Info().Interface("summary", summary).Msg("session finished")
	return summary, nil
}

// playTurn resolves the current room until the turn ends, the game is over
// or the player quits. Rejected input is shown above the next prompt.
func (r *Runner) playTurn(ctx context.Context) (bool, error) {
	var notice error
	showRules := false
	for {
		if err := r.renderer.Board(viewmodel.BuildBoard(r.game.Info())); err != nil {
			return false, err
		}
		if showRules {
			r.renderer.Rules()
			showRules = false
		}
		if notice != nil {
			r.renderer.Error(notice)
			notice = nil
		}
		r.renderer.Prompt()

		line, err := r.prompt.ReadLine(ctx)
		if err != nil {
			return false, err
		}
		action, err := ui.ParseAction(line)
		if err != nil {
			r.logger.Debug().Err(err).Str("input", line).Msg("input rejected")
			notice = err
			continue
		}
		ev, err := r.game.Apply(action)
		if err != nil {
			r.logger.Debug().Err(err).
				Str("action", string(action.Type)).
				Int("index", action.Index).
				Msg("action rejected")
			notice = err
			continue
		}
		r.logger.Debug().
			Str("action", string(action.Type)).
			Int("index", action.Index).
			Str("event", string(ev)).
			Msg("action applied")

		switch ev {
		case game.EventQuitGame:
			return true, nil
		case game.EventRulesPrinted:
			showRules = true
		case game.EventTurnEnded:
			r.logger.Debug().Interface("info", r.game.Info()).Msg("turn ended")
			return false, nil
		case game.EventActionApplied:
			if r.game.IsOver() {
				return false, nil
			}
		}
	}
}
