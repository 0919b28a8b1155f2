package keyboard

import (
	"runtime"

	"github.com/micmonay/keybd_event"
	"github.com/sirupsen/logrus"
)

// Simulator issues the platform copy and paste chords (Ctrl on Windows and
// Linux, Cmd on macOS) and answers modifier-state queries.
type Simulator struct {
	log *logrus.Entry
}

func NewSimulator(log *logrus.Entry) *Simulator {
	return &Simulator{log: log}
}

func (s *Simulator) SimulateCopy() error {
	return pressWithPlatformModifier(keybd_event.VK_C)
}

func (s *Simulator) SimulatePaste() error {
	return pressWithPlatformModifier(keybd_event.VK_V)
}

// ModifiersHeld reports whether any of the named modifiers is physically
// pressed right now. Platforms without key-state queries report false, which
// lets the release-wait loop exit immediately.
func (s *Simulator) ModifiersHeld(mods []string) bool {
	return modifiersHeld(mods)
}

func pressWithPlatformModifier(vk int) error {
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return err
	}
	if runtime.GOOS == "darwin" {
		kb.HasSuper(true)
	} else {
		kb.HasCTRL(true)
	}
	kb.SetKeys(vk)
	return kb.Launching()
}
