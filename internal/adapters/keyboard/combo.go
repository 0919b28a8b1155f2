// Package keyboard simulates the copy/paste chords, reports modifier state
// and registers the global hotkey. Everything platform-specific lives behind
// build tags in this package.
package keyboard

import (
	"fmt"
	"strings"
)

// Combo is a parsed hotkey binding like "ctrl+shift+q".
type Combo struct {
	Modifiers []string
	Key       string
}

var modifierNames = map[string]string{
	"ctrl": "ctrl", "control": "ctrl",
	"shift": "shift",
	"alt":   "alt", "option": "alt",
	"cmd": "cmd", "command": "cmd", "super": "cmd", "meta": "cmd",
	"win": "win", "windows": "win",
}

// ParseCombo splits a binding into normalized modifiers and a final key.
// At least one modifier is required; a bare key would fire on every press.
func ParseCombo(binding string) (Combo, error) {
	parts := strings.Split(binding, "+")
	if len(parts) < 2 {
		return Combo{}, fmt.Errorf("invalid hotkey %q: need at least modifier+key", binding)
	}
	key := strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))
	if key == "" {
		return Combo{}, fmt.Errorf("invalid hotkey %q: empty key", binding)
	}
	mods := make([]string, 0, len(parts)-1)
	for _, p := range parts[:len(parts)-1] {
		name, ok := modifierNames[strings.ToLower(strings.TrimSpace(p))]
		if !ok {
			return Combo{}, fmt.Errorf("invalid hotkey %q: unknown modifier %q", binding, p)
		}
		mods = append(mods, name)
	}
	return Combo{Modifiers: mods, Key: key}, nil
}
