package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration used when no YAML can be read.
func DefaultConfig() Config {
	return Config{
		Seed:     0,
		LogLevel: "info",
		Text: TextConfig{
			ClearScreen: true,
			Keys: KeyConfig{
				Left:  []string{"g", "a", "left"},
				Right: []string{"d", "right"},
				Up:    []string{"h", "w", "up"},
				Down:  []string{"b", "s", "down"},
				Quit:  []string{"q", "quit"},
			},
		},
		SSH: SSHConfig{
			Address:            ":2048",
			IdleTimeoutMinutes: 30,
		},
	}
}
