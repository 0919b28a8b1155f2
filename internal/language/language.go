// Package language maps configured language names to codes, display names
// and Unicode scripts, and decides which of the two configured languages a
// piece of text is written in.
package language

import (
	"strings"
	"unicode"
)

// codeToName resolves ISO codes stored in older config files to the language
// names the rest of the package is keyed by.
var codeToName = map[string]string{
	"he": "hebrew", "iw": "hebrew", "yi": "yiddish",
	"ar": "arabic", "fa": "persian", "ur": "urdu", "ps": "pashto",
	"hi": "hindi", "mr": "marathi", "ne": "nepali",
	"bn": "bengali", "pa": "punjabi", "gu": "gujarati", "or": "oriya",
	"ta": "tamil", "te": "telugu", "kn": "kannada", "ml": "malayalam",
	"si": "sinhala", "th": "thai", "lo": "lao", "bo": "tibetan",
	"my": "myanmar", "km": "khmer", "am": "amharic",
	"ja": "japanese", "ko": "korean",
	"zh": "chinese (simplified)", "zh-cn": "chinese (simplified)",
	"zh-tw": "chinese (traditional)",
	"ru":    "russian", "uk": "ukrainian", "bg": "bulgarian", "sr": "serbian",
	"be": "belarusian", "mk": "macedonian",
	"el": "greek", "ka": "georgian", "hy": "armenian",
	"en": "english", "es": "spanish", "fr": "french", "de": "german",
	"it": "italian", "pt": "portuguese", "nl": "dutch", "pl": "polish",
	"tr": "turkish", "vi": "vietnamese", "id": "indonesian", "ms": "malay",
	"sv": "swedish", "no": "norwegian", "da": "danish", "fi": "finnish",
	"cs": "czech", "sk": "slovak", "ro": "romanian", "hu": "hungarian",
	"uz": "uzbek", "kk": "kazakh", "az": "azerbaijani", "sw": "swahili",
}

// nameToCode is the reverse lookup used when a provider wants an ISO code.
var nameToCode = func() map[string]string {
	m := make(map[string]string, len(codeToName))
	for code, name := range codeToName {
		// Prefer the canonical code over legacy aliases (he over iw,
		// zh over zh-cn) by keeping the first short code seen.
		if cur, ok := m[name]; ok && len(cur) <= len(code) {
			continue
		}
		m[name] = code
	}
	m["hebrew"] = "he"
	m["chinese (simplified)"] = "zh-cn"
	m["chinese (traditional)"] = "zh-tw"
	return m
}()

// scripts associates a language with the Unicode scripts it is exclusively
// written in. Languages missing from this table (English, Spanish, ...)
// share the Latin script and cannot be told apart by script inspection.
var scripts = map[string][]*unicode.RangeTable{
	"hebrew":                {unicode.Hebrew},
	"yiddish":               {unicode.Hebrew},
	"arabic":                {unicode.Arabic},
	"persian":               {unicode.Arabic},
	"urdu":                  {unicode.Arabic},
	"pashto":                {unicode.Arabic},
	"hindi":                 {unicode.Devanagari},
	"marathi":               {unicode.Devanagari},
	"nepali":                {unicode.Devanagari},
	"bengali":               {unicode.Bengali},
	"punjabi":               {unicode.Gurmukhi},
	"gujarati":              {unicode.Gujarati},
	"oriya":                 {unicode.Oriya},
	"tamil":                 {unicode.Tamil},
	"telugu":                {unicode.Telugu},
	"kannada":               {unicode.Kannada},
	"malayalam":             {unicode.Malayalam},
	"sinhala":               {unicode.Sinhala},
	"thai":                  {unicode.Thai},
	"lao":                   {unicode.Lao},
	"tibetan":               {unicode.Tibetan},
	"myanmar":               {unicode.Myanmar},
	"khmer":                 {unicode.Khmer},
	"amharic":               {unicode.Ethiopic},
	"japanese":              {unicode.Hiragana, unicode.Katakana, unicode.Han},
	"korean":                {unicode.Hangul},
	"chinese (simplified)":  {unicode.Han},
	"chinese (traditional)": {unicode.Han},
	"russian":               {unicode.Cyrillic},
	"ukrainian":             {unicode.Cyrillic},
	"bulgarian":             {unicode.Cyrillic},
	"serbian":               {unicode.Cyrillic},
	"belarusian":            {unicode.Cyrillic},
	"macedonian":            {unicode.Cyrillic},
	"greek":                 {unicode.Greek},
	"georgian":              {unicode.Georgian},
	"armenian":              {unicode.Armenian},
}

// Normalize lowercases a configured language value and resolves ISO codes to
// language names, so "He", "iw" and "hebrew" all come out as "hebrew".
func Normalize(lang string) string {
	l := strings.ToLower(strings.TrimSpace(lang))
	if name, ok := codeToName[l]; ok {
		return name
	}
	return l
}

// Code returns the ISO code a provider API expects for a configured language,
// or the normalized input when no mapping is known.
func Code(lang string) string {
	name := Normalize(lang)
	if code, ok := nameToCode[name]; ok {
		return code
	}
	return name
}

// DisplayName returns a capitalized language name for prompts and logs.
func DisplayName(lang string) string {
	name := Normalize(lang)
	words := strings.Fields(name)
	for i, w := range words {
		r := []rune(w)
		if unicode.IsLetter(r[0]) {
			r[0] = unicode.ToUpper(r[0])
		}
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
