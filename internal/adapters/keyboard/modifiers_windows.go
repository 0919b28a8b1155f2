//go:build windows

package keyboard

import "golang.org/x/sys/windows"

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	procGetAsyncKeyState = user32.NewProc("GetAsyncKeyState")
)

// Virtual-key codes for the modifier keys we poll.
var modifierVKs = map[string][]uintptr{
	"ctrl":  {0x11},       // VK_CONTROL
	"shift": {0x10},       // VK_SHIFT
	"alt":   {0x12},       // VK_MENU
	"win":   {0x5B, 0x5C}, // VK_LWIN, VK_RWIN
	"cmd":   {0x5B, 0x5C},
}

func modifiersHeld(mods []string) bool {
	for _, m := range mods {
		for _, vk := range modifierVKs[m] {
			state, _, _ := procGetAsyncKeyState.Call(vk)
			if state&0x8000 != 0 {
				return true
			}
		}
	}
	return false
}
