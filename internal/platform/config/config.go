package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DataPath     string
	DBPath       string
	SettingsPath string
	ExportPath   string
}

// New resolves the data directory; an empty path falls back to
// ~/.breathe so every command shares one store set by default.
func New(dataPath string) (Config, error) {
	if dataPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		dataPath = filepath.Join(home, ".breathe")
	}
	return Config{
		DataPath:     dataPath,
		DBPath:       filepath.Join(dataPath, "breathe.db"),
		SettingsPath: filepath.Join(dataPath, "settings.yaml"),
		ExportPath:   filepath.Join(dataPath, "exports"),
	}, nil
}

const (
	DefaultInhaleSeconds = 4
	DefaultHoldSeconds   = 7
	DefaultExhaleSeconds = 8
)

// Settings holds the user-tunable phase durations. Invalid values are
// never rejected; they fall back per phase to the 4/7/8 defaults.
type Settings struct {
	InhaleSeconds int  `yaml:"inhale_seconds"`
	HoldSeconds   int  `yaml:"hold_seconds"`
	ExhaleSeconds int  `yaml:"exhale_seconds"`
	Speak         bool `yaml:"speak"`
}

func DefaultSettings() Settings {
	return Settings{
		InhaleSeconds: DefaultInhaleSeconds,
		HoldSeconds:   DefaultHoldSeconds,
		ExhaleSeconds: DefaultExhaleSeconds,
	}
}

// LoadSettings reads settings.yaml. A missing or malformed file and
// non-positive durations all recover to defaults; load cannot fail.
func LoadSettings(path string) Settings {
	payload, err := os.ReadFile(path)
	if err != nil {
		return DefaultSettings()
	}
	s := Settings{}
	if err := yaml.Unmarshal(payload, &s); err != nil {
		return DefaultSettings()
	}
	return clamp(s)
}

func SaveSettings(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	payload, err := yaml.Marshal(clamp(s))
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

func clamp(s Settings) Settings {
	if s.InhaleSeconds < 1 {
		s.InhaleSeconds = DefaultInhaleSeconds
	}
	if s.HoldSeconds < 1 {
		s.HoldSeconds = DefaultHoldSeconds
	}
	if s.ExhaleSeconds < 1 {
		s.ExhaleSeconds = DefaultExhaleSeconds
	}
	return s
}
