// Package factory maps the configured provider tag to a constructed backend
// pair. It is the only place that knows which tag corresponds to which
// adapter; everything downstream works against the port interfaces.
package factory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/TUNA-NOPE/ShiftLang/internal/adapters/prompt"
	"github.com/TUNA-NOPE/ShiftLang/internal/adapters/provider/bing"
	"github.com/TUNA-NOPE/ShiftLang/internal/adapters/provider/google"
	"github.com/TUNA-NOPE/ShiftLang/internal/adapters/provider/libretranslate"
	"github.com/TUNA-NOPE/ShiftLang/internal/adapters/provider/mymemory"
	"github.com/TUNA-NOPE/ShiftLang/internal/adapters/provider/openrouter"
	"github.com/TUNA-NOPE/ShiftLang/internal/adapters/provider/registry"
	"github.com/TUNA-NOPE/ShiftLang/internal/adapters/provider/yandex"
	"github.com/TUNA-NOPE/ShiftLang/internal/config"
	"github.com/TUNA-NOPE/ShiftLang/internal/language"
	"github.com/TUNA-NOPE/ShiftLang/internal/ports"
)

// ErrUnknownProvider is returned for a tag no adapter is registered under.
// It is the one factory error considered fatal at startup.
var ErrUnknownProvider = errors.New("unknown translation provider")

// defaultRegistry wires every simple provider. openrouter is not listed here
// because it is bidirectional and built separately.
func defaultRegistry() *registry.Registry {
	r := registry.New()
	r.Register(config.ProviderGoogle, true, func(_ registry.Options, from, to string) ports.Translator {
		return google.New(from, to)
	})
	r.Register(config.ProviderMyMemory, false, func(_ registry.Options, from, to string) ports.Translator {
		return mymemory.New(from, to)
	})
	r.Register(config.ProviderBing, true, func(o registry.Options, from, to string) ports.Translator {
		return bing.New(o.APIKey, from, to)
	})
	r.Register(config.ProviderLibreTranslate, true, func(o registry.Options, from, to string) ports.Translator {
		return libretranslate.New(o.APIKey, o.BaseURL, from, to)
	})
	r.Register(config.ProviderYandex, true, func(o registry.Options, from, to string) ports.Translator {
		return yandex.New(o.APIKey, from, to)
	})
	return r
}

// New builds the backend pair for the configured provider. Every instance is
// wrapped so that a provider failure returns the original text instead of an
// error; a translation failure must never corrupt the user's clipboard.
func New(cfg *config.Config, log *logrus.Entry) (*ports.Backends, error) {
	tag := strings.ToLower(cfg.Provider)
	src := language.Code(cfg.SourceLanguage)
	tgt := language.Code(cfg.TargetLanguage)

	if tag == config.ProviderOpenRouter {
		renderer, err := prompt.New()
		if err != nil {
			return nil, err
		}
		ai := openrouter.New(cfg.Credential(), cfg.Model, cfg.SourceLanguage, cfg.TargetLanguage, renderer)
		wrapped := &fallbackBidirectional{fallback: fallback{inner: ai, tag: tag, log: log}, inner: ai}
		return &ports.Backends{
			Tag:          tag,
			Forward:      wrapped,
			Reverse:      wrapped,
			AutoToTarget: wrapped,
			AutoToSource: wrapped,
			Bidi:         wrapped,
		}, nil
	}

	reg := defaultRegistry()
	build, ok := reg.Get(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
	opts := registry.Options{APIKey: cfg.Credential(), BaseURL: cfg.ProviderBaseURL}
	mk := func(from, to string) ports.Translator {
		return &fallback{inner: build(opts, from, to), tag: tag, log: log}
	}

	b := &ports.Backends{
		Tag:     tag,
		Forward: mk(src, tgt),
		Reverse: mk(tgt, src),
	}
	if reg.SupportsAuto(tag) {
		b.AutoToTarget = mk("auto", tgt)
		b.AutoToSource = mk("auto", src)
	} else {
		// No on-the-wire detection; the fixed pair is the best we can do
		// and the dispatcher's retry-toward-source still covers the
		// already-in-target case.
		b.AutoToTarget = b.Forward
		b.AutoToSource = b.Reverse
	}
	return b, nil
}
