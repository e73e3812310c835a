package config

import "testing"

func TestLoadGameDefaults(t *testing.T) {
	cfg, err := LoadGame()
	if err != nil {
		t.Fatalf("LoadGame() error = %v", err)
	}
	if cfg.Seed != 0 {
		t.Fatalf("Seed = %d, want 0", cfg.Seed)
	}
	if cfg.Lang != "en" {
		t.Fatalf("Lang = %q, want en", cfg.Lang)
	}
	if !cfg.Color || !cfg.ClearScreen {
		t.Fatalf("unexpected display defaults: %+v", cfg)
	}
}

func TestLoadGameOverrides(t *testing.T) {
	t.Setenv("SCOUNDREL_SEED", "1234")
	t.Setenv("SCOUNDREL_LANG", "pt-BR")
	t.Setenv("SCOUNDREL_COLOR", "false")
	t.Setenv("SCOUNDREL_CLEAR_SCREEN", "0")

	cfg, err := LoadGame()
	if err != nil {
		t.Fatalf("LoadGame() error = %v", err)
	}
	if cfg.Seed != 1234 || cfg.Lang != "pt-BR" {
		t.Fatalf("unexpected game config: %+v", cfg)
	}
	if cfg.Color || cfg.ClearScreen {
		t.Fatalf("display flags not overridden: %+v", cfg)
	}
}

func TestLoadGameRejectsBadSeed(t *testing.T) {
	t.Setenv("SCOUNDREL_SEED", "not-a-number")

	if _, err := LoadGame(); err == nil {
		t.Fatal("LoadGame() expected error, got nil")
	}
}

func TestLoadAppComposes(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("SCOUNDREL_SEED", "7")

	cfg, err := LoadApp()
	if err != nil {
		t.Fatalf("LoadApp() error = %v", err)
	}
	if cfg.Log.Level != "error" || cfg.Game.Seed != 7 {
		t.Fatalf("unexpected app config: %+v", cfg)
	}
}
