//go:build windows

package keyboard

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"
)

const (
	modAlt     = 0x0001
	modControl = 0x0002
	modShift   = 0x0004
	modWin     = 0x0008

	wmHotkey = 0x0312
	wmQuit   = 0x0012

	hotkeyID = 1
)

var (
	procRegisterHotKey     = user32.NewProc("RegisterHotKey")
	procUnregisterHotKey   = user32.NewProc("UnregisterHotKey")
	procGetMessageW        = user32.NewProc("GetMessageW")
	procPostThreadMessageW = user32.NewProc("PostThreadMessageW")
)

type msg struct {
	hwnd    uintptr
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      struct{ x, y int32 }
}

// GlobalHotkey registers a system-wide hotkey through RegisterHotKey and
// pumps its message loop on a dedicated, locked OS thread.
type GlobalHotkey struct {
	log      *logrus.Entry
	threadID atomic.Uint32
	done     chan struct{}
}

func NewGlobalHotkey(log *logrus.Entry) *GlobalHotkey {
	return &GlobalHotkey{log: log, done: make(chan struct{})}
}

func (h *GlobalHotkey) Register(combo string, fire func()) error {
	c, err := ParseCombo(combo)
	if err != nil {
		return err
	}
	mods, vk, err := c.windowsArgs()
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		// RegisterHotKey binds the hotkey to the calling thread; the same
		// thread must pump the messages.
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		h.threadID.Store(windows.GetCurrentThreadId())

		if r, _, callErr := procRegisterHotKey.Call(0, hotkeyID, uintptr(mods), uintptr(vk)); r == 0 {
			errCh <- fmt.Errorf("register hotkey %q: %v", combo, callErr)
			close(h.done)
			return
		}
		errCh <- nil
		defer procUnregisterHotKey.Call(0, hotkeyID)
		defer close(h.done)

		var m msg
		for {
			r, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
			if int32(r) <= 0 {
				return // WM_QUIT or an error
			}
			if m.message == wmHotkey {
				fire()
			}
		}
	}()
	return <-errCh
}

func (h *GlobalHotkey) Close() error {
	if tid := h.threadID.Load(); tid != 0 {
		procPostThreadMessageW.Call(uintptr(tid), wmQuit, 0, 0)
	}
	select {
	case <-h.done:
	case <-time.After(time.Second):
		h.log.Warn("hotkey message loop did not stop in time")
	}
	return nil
}

// windowsArgs converts a parsed combo into RegisterHotKey arguments.
func (c Combo) windowsArgs() (mods uint32, vk uint32, err error) {
	for _, m := range c.Modifiers {
		switch m {
		case "ctrl":
			mods |= modControl
		case "shift":
			mods |= modShift
		case "alt":
			mods |= modAlt
		case "win", "cmd":
			mods |= modWin
		}
	}
	key := c.Key
	switch {
	case len(key) == 1 && key[0] >= 'a' && key[0] <= 'z':
		vk = uint32(key[0] - 'a' + 'A')
	case len(key) == 1 && key[0] >= '0' && key[0] <= '9':
		vk = uint32(key[0])
	case len(key) >= 2 && key[0] == 'f':
		var n int
		if _, err := fmt.Sscanf(key, "f%d", &n); err == nil && n >= 1 && n <= 24 {
			vk = uint32(0x70 + n - 1) // VK_F1..VK_F24
		}
	case key == "space":
		vk = 0x20
	}
	if vk == 0 {
		return 0, 0, fmt.Errorf("unsupported hotkey key %q", key)
	}
	return mods, vk, nil
}
