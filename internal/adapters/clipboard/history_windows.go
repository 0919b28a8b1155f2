//go:build windows

package clipboard

import (
	"errors"
	"unsafe"

	"golang.org/x/sys/windows"
)

// The two well-known clipboard formats the Windows clipboard-history feature
// honors. Writing a zero DWORD under either marks the entry as excluded.
var exclusionFormats = []string{
	"ExcludeClipboardContentFromMonitorProcessing",
	"CanIncludeInClipboardHistory",
}

const (
	cfUnicodeText = 13
	gmemMoveable  = 0x0002
)

var (
	user32                       = windows.NewLazySystemDLL("user32.dll")
	kernel32                     = windows.NewLazySystemDLL("kernel32.dll")
	procOpenClipboard            = user32.NewProc("OpenClipboard")
	procCloseClipboard           = user32.NewProc("CloseClipboard")
	procEmptyClipboard           = user32.NewProc("EmptyClipboard")
	procSetClipboardData         = user32.NewProc("SetClipboardData")
	procGetClipboardData         = user32.NewProc("GetClipboardData")
	procRegisterClipboardFormatW = user32.NewProc("RegisterClipboardFormatW")
	procGlobalAlloc              = kernel32.NewProc("GlobalAlloc")
	procGlobalLock               = kernel32.NewProc("GlobalLock")
	procGlobalUnlock             = kernel32.NewProc("GlobalUnlock")
)

func writeNoHistory(text string) error {
	opened, _, _ := procOpenClipboard.Call(0)
	if opened == 0 {
		return errors.New("open clipboard failed")
	}
	defer procCloseClipboard.Call()

	procEmptyClipboard.Call()
	if err := setClipboardText(text); err != nil {
		return err
	}
	setExclusionFlags()
	return nil
}

func excludeCurrentFromHistory() error {
	opened, _, _ := procOpenClipboard.Call(0)
	if opened == 0 {
		return errors.New("open clipboard failed")
	}
	defer procCloseClipboard.Call()

	h, _, _ := procGetClipboardData.Call(cfUnicodeText)
	if h == 0 {
		return nil // nothing textual on the clipboard
	}
	p, _, _ := procGlobalLock.Call(h)
	if p == 0 {
		return errors.New("lock clipboard data failed")
	}
	text := windows.UTF16PtrToString((*uint16)(unsafe.Pointer(p)))
	procGlobalUnlock.Call(h)

	procEmptyClipboard.Call()
	if err := setClipboardText(text); err != nil {
		return err
	}
	setExclusionFlags()
	return nil
}

func setClipboardText(text string) error {
	u16, err := windows.UTF16FromString(text)
	if err != nil {
		return err
	}
	size := uintptr(len(u16) * 2)
	h, _, _ := procGlobalAlloc.Call(gmemMoveable, size)
	if h == 0 {
		return errors.New("global alloc failed")
	}
	p, _, _ := procGlobalLock.Call(h)
	if p == 0 {
		return errors.New("global lock failed")
	}
	dst := unsafe.Slice((*uint16)(unsafe.Pointer(p)), len(u16))
	copy(dst, u16)
	procGlobalUnlock.Call(h)
	if r, _, _ := procSetClipboardData.Call(cfUnicodeText, h); r == 0 {
		return errors.New("set clipboard data failed")
	}
	return nil
}

// setExclusionFlags attaches a zero DWORD under each exclusion format.
// Failures here only cost the history exclusion, not the write.
func setExclusionFlags() {
	for _, name := range exclusionFormats {
		namePtr, err := windows.UTF16PtrFromString(name)
		if err != nil {
			continue
		}
		format, _, _ := procRegisterClipboardFormatW.Call(uintptr(unsafe.Pointer(namePtr)))
		if format == 0 {
			continue
		}
		h, _, _ := procGlobalAlloc.Call(gmemMoveable, 4)
		if h == 0 {
			continue
		}
		p, _, _ := procGlobalLock.Call(h)
		if p != 0 {
			*(*uint32)(unsafe.Pointer(p)) = 0
			procGlobalUnlock.Call(h)
			procSetClipboardData.Call(format, h)
		}
	}
}
