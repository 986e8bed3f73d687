// Package lexicon holds the keyword taxonomies the classifier matches against.
//
// A Lexicon is an ordered list of categories, each with an ordered list of lower-cased
// triggers. Declaration order is significant: it is the tie-break order for ranked signals
// and the scan order for first-match resolvers. Values are immutable once built and safe to
// share between goroutines.
package lexicon

import (
	"fmt"
	"slices"
	"strings"
)

// Taxonomy names a lexicon within a Set
type Taxonomy string

const (
	TaxonomyEmotion Taxonomy = "emotion"
	TaxonomyTone    Taxonomy = "tone"
	TaxonomyIntent  Taxonomy = "intent"
	// TaxonomyMood is the small angry/happy lexicon the voice path resolves a single emotion from
	TaxonomyMood Taxonomy = "mood"
)

// Taxonomies lists every taxonomy a Set carries, in display order
var Taxonomies = []Taxonomy{TaxonomyEmotion, TaxonomyTone, TaxonomyIntent, TaxonomyMood}

// Entry is one category and its triggers as declared by the author
type Entry struct {
	Category string   `yaml:"category"`
	Triggers []string `yaml:"triggers"`
}

// Lexicon is an immutable, ordered category -> triggers mapping
type Lexicon struct {
	categories []string
	triggers   map[string][]string
	index      map[string]int
}

// New builds a Lexicon from entries. Categories and triggers are trimmed and lower-cased;
// duplicate triggers inside a category are dropped. A category declared twice is an error.
func New(entries []Entry) (Lexicon, error) {
	lex := Lexicon{
		categories: make([]string, 0, len(entries)),
		triggers:   make(map[string][]string, len(entries)),
		index:      make(map[string]int, len(entries)),
	}

	for _, e := range entries {
		category := strings.ToLower(strings.TrimSpace(e.Category))
		if category == "" {
			return Lexicon{}, fmt.Errorf("lexicon entry %d has an empty category", len(lex.categories))
		}
		if _, dup := lex.index[category]; dup {
			return Lexicon{}, fmt.Errorf("category %q declared more than once", category)
		}

		triggers := make([]string, 0, len(e.Triggers))
		for _, trigger := range e.Triggers {
			trigger = strings.ToLower(strings.TrimSpace(trigger))
			if trigger == "" || slices.Contains(triggers, trigger) {
				continue
			}
			triggers = append(triggers, trigger)
		}

		lex.index[category] = len(lex.categories)
		lex.categories = append(lex.categories, category)
		lex.triggers[category] = triggers
	}

	return lex, nil
}

// MustNew is New for static tables; it panics on a malformed table
func MustNew(entries []Entry) Lexicon {
	lex, err := New(entries)
	if err != nil {
		panic("lexicon: " + err.Error())
	}
	return lex
}

// Categories returns the categories in declaration order
func (l Lexicon) Categories() []string {
	return slices.Clone(l.categories)
}

// Triggers returns a copy of the triggers for category, or nil if the category is unknown
func (l Lexicon) Triggers(category string) []string {
	return slices.Clone(l.triggers[category])
}

// Len returns the number of categories
func (l Lexicon) Len() int {
	return len(l.categories)
}

// Each calls fn for every category in declaration order. The triggers slice must not be modified.
func (l Lexicon) Each(fn func(category string, triggers []string)) {
	for _, c := range l.categories {
		fn(c, l.triggers[c])
	}
}

// Entries returns the lexicon as authorable entries, in declaration order
func (l Lexicon) Entries() []Entry {
	out := make([]Entry, 0, len(l.categories))
	l.Each(func(category string, triggers []string) {
		out = append(out, Entry{Category: category, Triggers: slices.Clone(triggers)})
	})
	return out
}
