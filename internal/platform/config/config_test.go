package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"breathe/internal/platform/config"
)

func TestLoadSettingsDefaultsWhenMissingOrMalformed(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	missing := config.LoadSettings(filepath.Join(dir, "nope.yaml"))
	if missing != config.DefaultSettings() {
		t.Fatalf("missing file must yield defaults, got %+v", missing)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("inhale_seconds: [not a number"), 0o644); err != nil {
		t.Fatalf("write malformed settings: %v", err)
	}
	if got := config.LoadSettings(bad); got != config.DefaultSettings() {
		t.Fatalf("malformed file must yield defaults, got %+v", got)
	}
}

func TestLoadSettingsClampsNonPositiveDurationsPerPhase(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	payload := "inhale_seconds: -3\nhold_seconds: 10\nexhale_seconds: 0\nspeak: true\n"
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	got := config.LoadSettings(path)
	if got.InhaleSeconds != config.DefaultInhaleSeconds {
		t.Fatalf("non-positive inhale must fall back to default, got %d", got.InhaleSeconds)
	}
	if got.HoldSeconds != 10 {
		t.Fatalf("valid hold must survive, got %d", got.HoldSeconds)
	}
	if got.ExhaleSeconds != config.DefaultExhaleSeconds {
		t.Fatalf("zero exhale must fall back to default, got %d", got.ExhaleSeconds)
	}
	if !got.Speak {
		t.Fatalf("speak flag must survive")
	}
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	want := config.Settings{InhaleSeconds: 5, HoldSeconds: 5, ExhaleSeconds: 5, Speak: true}
	if err := config.SaveSettings(path, want); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	if got := config.LoadSettings(path); got != want {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}
}
