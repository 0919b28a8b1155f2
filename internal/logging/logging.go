// Package logging builds the process-wide logger.
package logging

import "github.com/sirupsen/logrus"

// New returns a logger at the named level ("debug", "info", ...). An
// unparseable level falls back to info rather than failing startup.
func New(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if lvl, err := logrus.ParseLevel(level); err == nil {
		log.SetLevel(lvl)
	}
	return log
}
