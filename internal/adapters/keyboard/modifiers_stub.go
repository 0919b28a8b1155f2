//go:build !windows

package keyboard

// No portable key-state query outside Windows. Reporting "not held" lets the
// dispatcher's release-wait exit immediately, matching the behavior of
// hotkey daemons that rely on the registration layer to swallow the chord.
func modifiersHeld([]string) bool {
	return false
}
