// Package clipboard provides system clipboard access plus the best-effort
// history-exclusion side channel available on Windows. Platform branching
// stays inside this package; callers see one interface.
package clipboard

import (
	clip "github.com/atotto/clipboard"
	"github.com/sirupsen/logrus"
)

type System struct {
	log *logrus.Entry
}

func New(log *logrus.Entry) *System {
	return &System{log: log}
}

func (s *System) Read() (string, error) {
	return clip.ReadAll()
}

func (s *System) Write(text string) error {
	return clip.WriteAll(text)
}

func (s *System) Clear() error {
	return clip.WriteAll("")
}

// WriteNoHistory writes text tagged so the platform's clipboard-history UI
// skips the entry. Platforms without such an API get a plain write.
func (s *System) WriteNoHistory(text string) error {
	return writeNoHistory(text)
}

// ExcludeCurrentFromHistory re-tags whatever is on the clipboard right now
// as excluded from history. Best effort: a failure only costs a history
// entry, never the attempt, so errors are logged and swallowed.
func (s *System) ExcludeCurrentFromHistory() {
	if err := excludeCurrentFromHistory(); err != nil {
		s.log.WithError(err).Debug("clipboard history exclusion failed")
	}
}
