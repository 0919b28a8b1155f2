package main

import (
	"os"

	clipboardadapter "github.com/TUNA-NOPE/ShiftLang/internal/adapters/clipboard"
	keyboardadapter "github.com/TUNA-NOPE/ShiftLang/internal/adapters/keyboard"
	"github.com/TUNA-NOPE/ShiftLang/internal/adapters/provider/factory"
	"github.com/TUNA-NOPE/ShiftLang/internal/config"
	"github.com/TUNA-NOPE/ShiftLang/internal/domain"
	"github.com/TUNA-NOPE/ShiftLang/internal/language"
	"github.com/TUNA-NOPE/ShiftLang/internal/logging"
	"github.com/TUNA-NOPE/ShiftLang/internal/usecase/dispatch"
)

const configPath = "config.json"

func main() {
	cfg, err := config.Load(configPath)
	if err != nil {
		logging.New("info").WithError(err).Fatal("configuration load failed")
	}
	log := logging.New(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("configuration invalid")
	}

	combo, err := keyboardadapter.ParseCombo(cfg.Hotkey)
	if err != nil {
		log.WithError(err).Fatal("configuration invalid")
	}

	entry := log.WithField("component", "dispatch")
	backends, err := factory.New(cfg, log.WithField("component", "provider"))
	if err != nil {
		// The only per-request-independent failure: an unknown provider tag
		// is fatal at startup, everything at runtime degrades silently.
		log.WithError(err).Fatal("backend construction failed")
	}

	dispatcher := dispatch.New(dispatch.Deps{
		Clipboard: clipboardadapter.New(log.WithField("component", "clipboard")),
		Keyboard:  keyboardadapter.NewSimulator(log.WithField("component", "keyboard")),
		Backends:  backends,
		Detect: func(text string) domain.Direction {
			return language.Direction(text, cfg.SourceLanguage, cfg.TargetLanguage)
		},
		Log: entry,
	}, dispatch.Options{
		Modifiers:                combo.Modifiers,
		ClearClipboardAfterPaste: cfg.ClearClipboardAfterPaste,
		Timing:                   dispatch.DefaultTiming(),
	})

	app := NewApp(cfg, log, keyboardadapter.NewGlobalHotkey(log.WithField("component", "hotkey")), dispatcher)
	if err := app.Run(); err != nil {
		log.WithError(err).Error("exited with error")
		os.Exit(1)
	}
}
