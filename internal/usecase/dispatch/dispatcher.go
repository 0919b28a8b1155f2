// Package dispatch owns the translation attempt: the state machine that
// turns a hotkey event into a clipboard round-trip through a translation
// backend and back, without double-triggering or corrupting the clipboard.
package dispatch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/TUNA-NOPE/ShiftLang/internal/domain"
	"github.com/TUNA-NOPE/ShiftLang/internal/ports"
	"github.com/TUNA-NOPE/ShiftLang/internal/usecase/validate"
)

// Timing bundles the polling bounds and delays of an attempt. Tests inject
// microsecond values to simulate "never arrives" deterministically.
type Timing struct {
	// DebounceWindow is the minimum interval between attempt starts.
	DebounceWindow time.Duration
	// ModifierReleasePolls bounds the wait for the hotkey's modifiers to be
	// physically released before the simulated copy.
	ModifierReleasePolls    int
	ModifierReleaseInterval time.Duration
	// CaptureAttempts bounds the clipboard polls after the simulated copy.
	CaptureAttempts int
	CaptureInterval time.Duration
	// PasteSettleDelay is slept after the simulated paste before cleanup.
	PasteSettleDelay time.Duration
	// AttemptTimeout caps a whole attempt including the network call.
	AttemptTimeout time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		DebounceWindow:          300 * time.Millisecond,
		ModifierReleasePolls:    20,
		ModifierReleaseInterval: 50 * time.Millisecond,
		CaptureAttempts:         10,
		CaptureInterval:         100 * time.Millisecond,
		PasteSettleDelay:        100 * time.Millisecond,
		AttemptTimeout:          30 * time.Second,
	}
}

// Deps are the collaborators a Dispatcher drives.
type Deps struct {
	Clipboard ports.Clipboard
	Keyboard  ports.Keyboard
	Backends  *ports.Backends
	// Detect decides which configured language the captured text is in.
	Detect func(text string) domain.Direction
	Log    *logrus.Entry
}

// Options is the per-installation behavior of the dispatcher.
type Options struct {
	// Modifiers are the hotkey's modifier keys, waited out before the
	// simulated copy so the copy chord cannot re-trigger the hotkey.
	Modifiers                []string
	ClearClipboardAfterPaste bool
	Timing                   Timing
}

type Dispatcher struct {
	d Deps
	o Options
	g gate
}

func New(d Deps, o Options) *Dispatcher {
	if o.Timing == (Timing{}) {
		o.Timing = DefaultTiming()
	}
	return &Dispatcher{d: d, o: o}
}

// Active reports whether an attempt is currently in flight.
func (dp *Dispatcher) Active() bool { return dp.g.isActive() }

// HandleHotkey runs one translation attempt. It is the hotkey callback:
// it never panics and never returns an error to the listener. Re-entrant
// and rapid repeat invocations are dropped by the entry guard.
func (dp *Dispatcher) HandleHotkey() {
	if !dp.g.tryAcquire(time.Now(), dp.o.Timing.DebounceWindow) {
		dp.d.Log.Debug("trigger dropped: attempt active or within debounce window")
		return
	}
	// The active flag is released on every exit path; a failure mid-attempt
	// must not leave the dispatcher permanently locked.
	defer dp.g.release()

	ctx, cancel := context.WithTimeout(context.Background(), dp.o.Timing.AttemptTimeout)
	defer cancel()

	if err := dp.run(ctx); err != nil {
		dp.d.Log.WithError(err).WithField("state", StateAborted.String()).Warn("translation attempt aborted")
	}
}

func (dp *Dispatcher) run(ctx context.Context) error {
	dp.transition(StateArmed)
	dp.waitModifierRelease()

	dp.transition(StateCapturingSelection)
	text, ok := dp.captureSelection()
	if !ok {
		dp.d.Log.Info("nothing selected, clipboard stayed empty")
		return nil
	}
	dp.d.Clipboard.ExcludeCurrentFromHistory()
	dp.d.Log.WithField("chars", len(text)).Debug("selection captured")

	dp.transition(StateTranslating)
	translated, err := dp.translate(ctx, text)
	if err != nil {
		dp.d.Log.WithField("reason", string(domain.ReasonProviderError)).Debug("backend error reached dispatcher")
		return fmt.Errorf("translate: %w", err)
	}

	dp.transition(StateValidating)
	res := validate.Check(text, translated)
	if !res.Succeeded {
		dp.d.Log.WithField("reason", string(res.Reason)).Info("result rejected, leaving selection untouched")
		return nil
	}

	dp.transition(StatePastingBack)
	if err := dp.d.Clipboard.WriteNoHistory(res.Text); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}
	if err := dp.d.Keyboard.SimulatePaste(); err != nil {
		return fmt.Errorf("simulate paste: %w", err)
	}
	time.Sleep(dp.o.Timing.PasteSettleDelay)
	if dp.o.ClearClipboardAfterPaste {
		if err := dp.d.Clipboard.Clear(); err != nil {
			dp.d.Log.WithError(err).Debug("post-paste clipboard clear failed")
		}
	}
	dp.transition(StateIdle)
	return nil
}

// waitModifierRelease polls until none of the hotkey's modifier keys is held
// anymore, so the simulated copy chord cannot combine with a still-pressed
// modifier into another hotkey event. Bounded; gives up silently.
func (dp *Dispatcher) waitModifierRelease() {
	if len(dp.o.Modifiers) == 0 {
		return
	}
	for i := 0; i < dp.o.Timing.ModifierReleasePolls; i++ {
		if !dp.d.Keyboard.ModifiersHeld(dp.o.Modifiers) {
			return
		}
		time.Sleep(dp.o.Timing.ModifierReleaseInterval)
	}
}

// captureSelection clears the clipboard, issues a simulated copy and polls
// until non-blank content appears. Exhausted retries mean nothing was
// selected; that ends the attempt cleanly.
func (dp *Dispatcher) captureSelection() (string, bool) {
	if err := dp.d.Clipboard.Clear(); err != nil {
		dp.d.Log.WithError(err).Debug("pre-copy clipboard clear failed")
	}
	if err := dp.d.Keyboard.SimulateCopy(); err != nil {
		dp.d.Log.WithError(err).Warn("copy simulation failed")
		return "", false
	}
	for i := 0; i < dp.o.Timing.CaptureAttempts; i++ {
		time.Sleep(dp.o.Timing.CaptureInterval)
		text, err := dp.d.Clipboard.Read()
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) != "" {
			return text, true
		}
	}
	return "", false
}

// translate resolves the direction and routes the request to the right
// backend instance. With an AI backend the direction hint travels inside the
// prompt; with simple backends an ambiguous direction is resolved by an
// auto-detect attempt toward the target, retried toward the source when the
// provider hands the text back unchanged (the selection was already in the
// target language).
func (dp *Dispatcher) translate(ctx context.Context, text string) (string, error) {
	dir := dp.d.Detect(text)
	b := dp.d.Backends
	dp.d.Log.WithFields(logrus.Fields{"provider": b.Tag, "direction": dir.String()}).Debug("direction resolved")

	if b.Bidi != nil {
		return b.Bidi.TranslateBidirectional(ctx, text, dir)
	}

	switch dir {
	case domain.DirectionSource:
		return b.Forward.Translate(ctx, text)
	case domain.DirectionTarget:
		return b.Reverse.Translate(ctx, text)
	}

	out, err := b.AutoToTarget.Translate(ctx, text)
	if err != nil {
		return "", err
	}
	if strings.EqualFold(strings.TrimSpace(out), strings.TrimSpace(text)) {
		return b.AutoToSource.Translate(ctx, text)
	}
	return out, nil
}

func (dp *Dispatcher) transition(s State) {
	dp.d.Log.WithField("state", s.String()).Trace("state transition")
}
