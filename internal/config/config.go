// Package config provides YAML-based configuration loading for term2048:
// seed, log level, text-mode keymap and SSH server settings.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// Config contains all term2048 settings.
type Config struct {
	Seed     int64      `yaml:"seed"`
	LogLevel string     `yaml:"log_level"`
	Text     TextConfig `yaml:"text"`
	SSH      SSHConfig  `yaml:"ssh"`
}

// TextConfig configures the line-oriented text loop.
type TextConfig struct {
	ClearScreen bool      `yaml:"clear_screen"`
	Keys        KeyConfig `yaml:"keys"`
}

// KeyConfig lists the input tokens bound to each text-mode command.
type KeyConfig struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Quit  []string `yaml:"quit"`
}

// SSHConfig configures the Wish SSH server.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"` // Empty means ~/.t2048/host_key
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// Level parses LogLevel. An empty value means info.
func (c Config) Level() (log.Level, error) {
	if strings.TrimSpace(c.LogLevel) == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("config: log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// Validate reports every problem found in the configuration.
func (c Config) Validate() error {
	var errs []error

	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if c.SSH.IdleTimeoutMinutes < 0 {
		errs = append(errs, fmt.Errorf("config: ssh.idle_timeout_minutes must be >= 0, got %d", c.SSH.IdleTimeoutMinutes))
	}
	if err := c.Text.Keys.validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (k KeyConfig) validate() error {
	var errs []error
	owner := make(map[string]string)

	for _, group := range k.groups() {
		if len(group.keys) == 0 {
			errs = append(errs, fmt.Errorf("config: text.keys.%s has no keys", group.name))
		}
		for _, key := range group.keys {
			token := normalizeToken(key)
			if token == "" {
				errs = append(errs, fmt.Errorf("config: text.keys.%s contains an empty key", group.name))
				continue
			}
			if prev, ok := owner[token]; ok && prev != group.name {
				errs = append(errs, fmt.Errorf("config: key %q bound to both %s and %s", token, prev, group.name))
				continue
			}
			owner[token] = group.name
		}
	}

	return errors.Join(errs...)
}

type keyGroup struct {
	name string
	keys []string
}

func (k KeyConfig) groups() []keyGroup {
	return []keyGroup{
		{"left", k.Left},
		{"right", k.Right},
		{"up", k.Up},
		{"down", k.Down},
		{"quit", k.Quit},
	}
}

func normalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
