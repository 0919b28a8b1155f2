// Package validate decides whether a backend response is usable: it rejects
// no-op results and repairs doubled echoes. Translation quality itself is
// not judged here.
package validate

import (
	"strings"

	"github.com/TUNA-NOPE/ShiftLang/internal/domain"
)

// Check compares a backend response against the original selection.
//
// An empty result, or one that equals the original after trimming and case
// folding, is rejected as a no-op; this is both the fallback signal from a
// failed provider and the genuine already-translated case. A result that is
// an exact doubled copy of a shorter answer is truncated to its first half
// before acceptance. Everything else is accepted as-is.
func Check(original, translated string) domain.Result {
	orig := strings.TrimSpace(original)
	got := strings.TrimSpace(translated)

	if got == "" || strings.EqualFold(got, orig) {
		return domain.Result{Text: original, Reason: domain.ReasonNoChange}
	}

	if repaired, ok := repairDoubled(orig, got); ok {
		if strings.EqualFold(repaired, orig) {
			// The provider echoed the input twice; nothing new to paste.
			return domain.Result{Text: original, Reason: domain.ReasonDoubled}
		}
		return domain.Result{Text: repaired, Succeeded: true}
	}

	return domain.Result{Text: got, Succeeded: true}
}

// repairDoubled detects providers that occasionally return the answer twice
// in a row. Deliberately conservative: only an exact first-half/second-half
// duplicate of a result at least twice the input's length is repaired, so
// legitimately longer translations are never mangled.
func repairDoubled(original, translated string) (string, bool) {
	if len(translated) < 2*len(original) {
		return "", false
	}
	runes := []rune(translated)
	if len(runes) < 2 || len(runes)%2 != 0 {
		return "", false
	}
	half := len(runes) / 2
	first, second := string(runes[:half]), string(runes[half:])
	if first != second {
		return "", false
	}
	return strings.TrimSpace(first), true
}
