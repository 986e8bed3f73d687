package langid

import (
	"unicode"

	"github.com/abadojack/whatlanggo"
	"golang.org/x/text/language"
)

// scriptLanguages maps scripts that belong to essentially one language (for this product's
// purposes) to that language. Latin, Cyrillic and Arabic are shared by many languages and give
// no signal on their own.
var scriptLanguages = map[*unicode.RangeTable]language.Tag{
	unicode.Malayalam:  language.Malayalam,
	unicode.Tamil:      language.Tamil,
	unicode.Telugu:     language.Telugu,
	unicode.Kannada:    language.Kannada,
	unicode.Gujarati:   language.Gujarati,
	unicode.Gurmukhi:   language.Punjabi,
	unicode.Bengali:    language.Bengali,
	unicode.Devanagari: language.Hindi,
	unicode.Oriya:      language.MustParse("or"),
	unicode.Sinhala:    language.Sinhala,
	unicode.Thai:       language.Thai,
	unicode.Lao:        language.Lao,
	unicode.Khmer:      language.Khmer,
	unicode.Myanmar:    language.Burmese,
	unicode.Georgian:   language.Georgian,
	unicode.Armenian:   language.Armenian,
	unicode.Greek:      language.Greek,
	unicode.Hebrew:     language.Hebrew,
	unicode.Ethiopic:   language.Amharic,
	unicode.Hangul:     language.Korean,
	unicode.Hiragana:   language.Japanese,
	unicode.Katakana:   language.Japanese,
}

// ScriptHeuristic infers a language from the dominant writing system of a text, without any
// statistical model. It is exact for single-language scripts such as Malayalam and silent
// otherwise.
type ScriptHeuristic struct{}

// Detect returns the language implied by the text's dominant script, and false when the
// script is shared between languages or the text has no letters.
func (ScriptHeuristic) Detect(text string) (language.Tag, bool) {
	script := whatlanggo.DetectScript(text)
	if script == nil {
		return language.Und, false
	}
	tag, ok := scriptLanguages[script]
	return tag, ok
}

// Confirms reports whether text is written in the script of want
func (h ScriptHeuristic) Confirms(text string, want language.Tag) bool {
	got, ok := h.Detect(text)
	return ok && got == want
}
