//go:build !windows

package clipboard

import clip "github.com/atotto/clipboard"

// No clipboard-history API outside Windows; degrade to a plain write.
func writeNoHistory(text string) error {
	return clip.WriteAll(text)
}

func excludeCurrentFromHistory() error {
	return nil
}
