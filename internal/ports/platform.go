package ports

// Clipboard provides access to the system clipboard, the single shared
// mutable resource outside the process.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
	Clear() error
	// WriteNoHistory writes text and, where the platform supports it, tags
	// the entry so clipboard-history UIs do not retain it. On platforms
	// without such an API it behaves like Write.
	WriteNoHistory(text string) error
	// ExcludeCurrentFromHistory re-tags whatever is currently on the
	// clipboard as excluded from history. Best effort: failures are logged
	// by the implementation and never surfaced.
	ExcludeCurrentFromHistory()
}

// Keyboard simulates the platform copy/paste chords and reports whether
// modifier keys are physically held.
type Keyboard interface {
	SimulateCopy() error
	SimulatePaste() error
	// ModifiersHeld reports whether any of the named modifier keys
	// ("ctrl", "shift", "alt", "cmd", "win") is currently pressed.
	ModifiersHeld(mods []string) bool
}

// Hotkey registers a global key combination and invokes fire on every press.
type Hotkey interface {
	Register(combo string, fire func()) error
	Close() error
}
