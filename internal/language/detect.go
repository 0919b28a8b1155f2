package language

import (
	"unicode"

	"github.com/abadojack/whatlanggo"

	"github.com/TUNA-NOPE/ShiftLang/internal/domain"
)

// Direction inspects the Unicode scripts in text and decides whether it is
// written in sourceLang or targetLang. It returns DirectionUnknown when both
// languages share a script family (for example two Latin-based languages) and
// script inspection cannot tell them apart. The check is pure and
// deterministic; it performs no I/O.
func Direction(text, sourceLang, targetLang string) domain.Direction {
	src := scripts[Normalize(sourceLang)]
	tgt := scripts[Normalize(targetLang)]
	if sharesScript(src, tgt) {
		return domain.DirectionUnknown
	}

	if dominant := whatlanggo.DetectScript(text); dominant != nil {
		if containsTable(src, dominant) {
			return domain.DirectionSource
		}
		if containsTable(tgt, dominant) {
			return domain.DirectionTarget
		}
	}

	// The dominant script belongs to neither language. A single character of
	// a side's exclusive script still decides it, the way mixed selections
	// (a Hebrew word inside English punctuation) usually look.
	if containsAnyRune(text, src) {
		return domain.DirectionSource
	}
	if containsAnyRune(text, tgt) {
		return domain.DirectionTarget
	}

	// No script evidence either way. A source language with a distinctive
	// script that left no trace means the text is on the target side, and
	// vice versa.
	if len(src) > 0 {
		return domain.DirectionTarget
	}
	return domain.DirectionSource
}

// sharesScript reports whether the two script sets cannot disambiguate the
// languages: both unknown (Latin and friends) or overlapping (Russian and
// Ukrainian are both Cyrillic).
func sharesScript(a, b []*unicode.RangeTable) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	for _, ta := range a {
		for _, tb := range b {
			if ta == tb {
				return true
			}
		}
	}
	return false
}

func containsTable(set []*unicode.RangeTable, t *unicode.RangeTable) bool {
	for _, s := range set {
		if s == t {
			return true
		}
	}
	return false
}

func containsAnyRune(text string, set []*unicode.RangeTable) bool {
	if len(set) == 0 {
		return false
	}
	for _, r := range text {
		for _, t := range set {
			if unicode.Is(t, r) {
				return true
			}
		}
	}
	return false
}
