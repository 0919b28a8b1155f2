package factory

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TUNA-NOPE/ShiftLang/internal/config"
	"github.com/TUNA-NOPE/ShiftLang/internal/ports"
)

func testConfig(provider string) *config.Config {
	cfg := config.Default()
	cfg.Provider = provider
	return cfg
}

func build(t *testing.T, provider string) *ports.Backends {
	t.Helper()
	logger, _ := test.NewNullLogger()
	b, err := New(testConfig(provider), logger.WithField("component", "provider"))
	require.NoError(t, err)
	return b
}

func TestNewBuildsEveryKnownProvider(t *testing.T) {
	for _, tag := range []string{
		config.ProviderGoogle,
		config.ProviderBing,
		config.ProviderYandex,
		config.ProviderMyMemory,
		config.ProviderLibreTranslate,
		config.ProviderOpenRouter,
	} {
		b := build(t, tag)
		assert.Equal(t, tag, b.Tag)
		assert.NotNil(t, b.Forward, tag)
		assert.NotNil(t, b.Reverse, tag)
		assert.NotNil(t, b.AutoToTarget, tag)
		assert.NotNil(t, b.AutoToSource, tag)
	}
}

func TestNewUnknownProviderFails(t *testing.T) {
	logger, _ := test.NewNullLogger()
	_, err := New(testConfig("babelfish"), logger.WithField("component", "provider"))
	require.ErrorIs(t, err, ErrUnknownProvider)
}

func TestNewOpenRouterIsBidirectional(t *testing.T) {
	b := build(t, config.ProviderOpenRouter)
	require.NotNil(t, b.Bidi)
	// One AI instance serves every direction.
	assert.Same(t, b.Forward, b.Reverse)
	assert.Same(t, b.Forward, b.AutoToTarget)
	assert.Same(t, b.Forward, b.Bidi)
}

func TestNewSimpleProvidersAreNotBidirectional(t *testing.T) {
	assert.Nil(t, build(t, config.ProviderGoogle).Bidi)
	assert.Nil(t, build(t, config.ProviderMyMemory).Bidi)
}

func TestNewAutoFallsBackToFixedPair(t *testing.T) {
	// MyMemory has no on-the-wire detection; the auto slots reuse the fixed
	// instances.
	b := build(t, config.ProviderMyMemory)
	assert.Same(t, b.Forward, b.AutoToTarget)
	assert.Same(t, b.Reverse, b.AutoToSource)

	// Google does, so its auto slots are distinct instances.
	b = build(t, config.ProviderGoogle)
	assert.NotSame(t, b.Forward, b.AutoToTarget)
	assert.NotSame(t, b.Reverse, b.AutoToSource)
}

type failingTranslator struct{ calls int }

func (f *failingTranslator) Translate(context.Context, string) (string, error) {
	f.calls++
	return "", assert.AnError
}

func TestFallbackReturnsOriginalTextOnError(t *testing.T) {
	logger, hook := test.NewNullLogger()
	inner := &failingTranslator{}
	f := &fallback{inner: inner, tag: "test", log: logger.WithField("component", "provider")}

	out, err := f.Translate(context.Background(), "שלום")

	require.NoError(t, err)
	assert.Equal(t, "שלום", out)
	assert.Equal(t, 1, inner.calls)
	require.NotEmpty(t, hook.Entries)
	assert.Equal(t, "translation failed, keeping original text", hook.LastEntry().Message)
}

type okTranslator struct{}

func (okTranslator) Translate(_ context.Context, text string) (string, error) {
	return "translated: " + text, nil
}

func TestFallbackPassesThroughSuccess(t *testing.T) {
	logger, _ := test.NewNullLogger()
	f := &fallback{inner: okTranslator{}, tag: "test", log: logger.WithField("component", "provider")}

	out, err := f.Translate(context.Background(), "שלום")

	require.NoError(t, err)
	assert.Equal(t, "translated: שלום", out)
}
