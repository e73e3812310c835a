package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"scoundrel/internal/config"
)

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scoundrel.log")
	closer, err := Init(config.LogConfig{Level: "debug", File: path, MaxMB: 1})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	log.Debug().Str("session_id", "s1").Msg("turn started")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"session_id":"s1"`) || !strings.Contains(string(data), "turn started") {
		t.Fatalf("unexpected log content: %s", data)
	}
	if zerolog.GlobalLevel() != zerolog.DebugLevel {
		t.Fatalf("global level = %s, want debug", zerolog.GlobalLevel())
	}
}

func TestInitFallsBackToWarn(t *testing.T) {
	closer, err := Init(config.LogConfig{Level: "loud"})
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer closer.Close()
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Fatalf("global level = %s, want warn", zerolog.GlobalLevel())
	}
}
