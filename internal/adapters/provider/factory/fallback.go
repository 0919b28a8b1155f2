package factory

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/TUNA-NOPE/ShiftLang/internal/domain"
	"github.com/TUNA-NOPE/ShiftLang/internal/ports"
)

// fallback absorbs provider failures at the backend boundary. Any network
// error, non-success status or malformed response is logged and the original
// text is returned unchanged, which the validator downstream reads as a
// no-op and suppresses the paste.
type fallback struct {
	inner ports.Translator
	tag   string
	log   *logrus.Entry
}

func (f *fallback) Translate(ctx context.Context, text string) (string, error) {
	out, err := f.inner.Translate(ctx, text)
	if err != nil {
		f.log.WithError(err).WithField("provider", f.tag).Warn("translation failed, keeping original text")
		return text, nil
	}
	return out, nil
}

type fallbackBidirectional struct {
	fallback
	inner ports.BidirectionalTranslator
}

func (f *fallbackBidirectional) TranslateBidirectional(ctx context.Context, text string, dir domain.Direction) (string, error) {
	out, err := f.inner.TranslateBidirectional(ctx, text, dir)
	if err != nil {
		f.log.WithError(err).WithFields(logrus.Fields{"provider": f.tag, "direction": dir.String()}).
			Warn("translation failed, keeping original text")
		return text, nil
	}
	return out, nil
}
