package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/term2048/internal/t2048"
)

// Command is what a text-mode input token asks for.
type Command int

const (
	CommandUnknown Command = iota
	CommandMove
	CommandQuit
)

// Keymap resolves text-mode input tokens to commands.
type Keymap struct {
	moves map[string]t2048.Direction
	quit  map[string]bool
	help  string
}

// Keymap builds a lookup table from the configured keys.
// Tokens are matched case-insensitively after trimming spaces.
func (k KeyConfig) Keymap() Keymap {
	m := Keymap{
		moves: make(map[string]t2048.Direction),
		quit:  make(map[string]bool),
	}

	bind := func(keys []string, dir t2048.Direction) {
		for _, key := range keys {
			if token := normalizeToken(key); token != "" {
				m.moves[token] = dir
			}
		}
	}
	bind(k.Left, t2048.DirLeft)
	bind(k.Right, t2048.DirRight)
	bind(k.Up, t2048.DirUp)
	bind(k.Down, t2048.DirDown)

	for _, key := range k.Quit {
		if token := normalizeToken(key); token != "" {
			m.quit[token] = true
		}
	}

	var parts []string
	for _, group := range k.groups() {
		if len(group.keys) > 0 {
			parts = append(parts, fmt.Sprintf("%s = %s", normalizeToken(group.keys[0]), group.name))
		}
	}
	m.help = strings.Join(parts, " | ")

	return m
}

// Lookup resolves one input token. The direction is DirNone unless the
// command is CommandMove.
func (m Keymap) Lookup(token string) (Command, t2048.Direction) {
	token = normalizeToken(token)
	if dir, ok := m.moves[token]; ok {
		return CommandMove, dir
	}
	if m.quit[token] {
		return CommandQuit, t2048.DirNone
	}
	return CommandUnknown, t2048.DirNone
}

// Help returns a one-line summary using the first key of every command,
// e.g. "g = left | d = right | h = up | b = down | q = quit".
func (m Keymap) Help() string {
	return m.help
}
