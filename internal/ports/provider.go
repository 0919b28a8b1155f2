package ports

import (
	"context"

	"github.com/TUNA-NOPE/ShiftLang/internal/domain"
)

// Translator is a translation backend whose direction is fixed at
// construction time: a forward instance translates source to target, a
// reverse instance the other way around.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// BidirectionalTranslator is implemented by AI backends that can resolve the
// translation direction themselves. dir carries the script-based hint; it may
// be DirectionUnknown, in which case the backend infers the direction from
// the text itself.
type BidirectionalTranslator interface {
	Translator
	TranslateBidirectional(ctx context.Context, text string, dir domain.Direction) (string, error)
}

// Backends bundles the provider instances built from configuration. The pair
// is constructed once at startup, is stateless per request and safe to reuse
// across attempts.
type Backends struct {
	// Tag is the configured provider name the pair was built from.
	Tag string
	// Forward translates source -> target, Reverse target -> source.
	Forward Translator
	Reverse Translator
	// AutoToTarget and AutoToSource let the provider detect the input
	// language on the wire. Providers without such an endpoint fall back to
	// the fixed-direction instances.
	AutoToTarget Translator
	AutoToSource Translator
	// Bidi is non-nil only for the AI provider, where one instance serves
	// both directions and callers should prefer TranslateBidirectional.
	Bidi BidirectionalTranslator
}
