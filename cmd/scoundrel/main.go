package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"

	"scoundrel/internal/config"
	"scoundrel/internal/game"
	"scoundrel/internal/i18n"
	"scoundrel/internal/logging"
	"scoundrel/internal/random"
	"scoundrel/internal/session"
	"scoundrel/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		return 2
	}
	closer, err := logging.Init(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "init logging:", err)
		return 2
	}
	defer closer.Close()

	rnd, seed, err := random.Source(cfg.Game.Seed)
	if err != nil {
		log.Error().Err(err).Msg("seed shuffle failed")
		return 1
	}
	if !cfg.Game.Color {
		pterm.DisableColor()
	}

	tag, err := i18n.ResolveTag(cfg.Game.Lang)
	if err != nil {
		supported := make([]string, 0, len(i18n.Supported()))
		for _, t := range i18n.Supported() {
			supported = append(supported, t.String())
		}
		log.Warn().Err(err).
			Strs("supported", supported).
			Str("fallback", tag.String()).
			Msg("SCOUNDREL_LANG not supported")
	}
	renderer := ui.NewRenderer(os.Stdout, i18n.Printer(tag), cfg.Game.ClearScreen)
	runner := session.NewRunner(game.New(rnd), ui.NewPrompt(os.Stdin), renderer)
	log.Info().
		Str("session_id", runner.ID()).
		Int64("seed", seed).
		Str("lang", tag.String()).
		Msg("dungeon shuffled")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, err := runner.Run(ctx)
	if err != nil {
		if errors.Is(err, ui.ErrInputReadFailed) || errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stdout)
			return 1
		}
		log.Error().Err(err).Str("session_id", summary.SessionID).Msg("session failed")
		return 1
	}
	return 0
}
