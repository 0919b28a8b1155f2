package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/TUNA-NOPE/ShiftLang/internal/config"
	"github.com/TUNA-NOPE/ShiftLang/internal/ports"
	"github.com/TUNA-NOPE/ShiftLang/internal/usecase/dispatch"
)

// App ties the hotkey listener to the dispatcher and owns their lifecycle.
type App struct {
	cfg        *config.Config
	log        *logrus.Logger
	hotkey     ports.Hotkey
	dispatcher *dispatch.Dispatcher
}

func NewApp(cfg *config.Config, log *logrus.Logger, hotkey ports.Hotkey, dispatcher *dispatch.Dispatcher) *App {
	return &App{cfg: cfg, log: log, hotkey: hotkey, dispatcher: dispatcher}
}

// Run registers the hotkey and blocks until an interrupt. The dispatcher is
// invoked from the hotkey callback; everything per-attempt is contained
// there, so this loop only ever exits on a signal.
func (a *App) Run() error {
	if err := a.hotkey.Register(a.cfg.Hotkey, a.dispatcher.HandleHotkey); err != nil {
		return fmt.Errorf("register hotkey: %w", err)
	}
	a.log.WithFields(logrus.Fields{
		"hotkey":   a.cfg.Hotkey,
		"provider": config.ProviderDisplayName(a.cfg.Provider),
		"source":   a.cfg.SourceLanguage,
		"target":   a.cfg.TargetLanguage,
	}).Info("shiftlang running, press the hotkey to translate the selection")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	s := <-sig
	a.log.WithField("signal", s.String()).Info("shutting down")
	return a.hotkey.Close()
}
