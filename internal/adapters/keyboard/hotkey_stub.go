//go:build !windows

package keyboard

import (
	"fmt"
	"runtime"

	"github.com/sirupsen/logrus"
)

// GlobalHotkey is unavailable on this platform; registration is expected to
// come from an external hook (a compositor shortcut or input daemon bound to
// the same binary).
type GlobalHotkey struct {
	log *logrus.Entry
}

func NewGlobalHotkey(log *logrus.Entry) *GlobalHotkey {
	return &GlobalHotkey{log: log}
}

func (h *GlobalHotkey) Register(combo string, _ func()) error {
	return fmt.Errorf("global hotkey registration for %q is not supported on %s", combo, runtime.GOOS)
}

func (h *GlobalHotkey) Close() error { return nil }
