// Package signals turns raw text into ranked keyword signals for one lexicon.
package signals

import (
	"math"
	"slices"
	"strings"

	"github.com/FrenchMajesty/synapsecx/pkg/lexicon"
)

// Neutral is the sentinel category returned when nothing in a text registers
const Neutral = "neutral"

// Polarity boost thresholds for the emotion taxonomy
const (
	PositiveBoostThreshold = 0.3
	NegativeBoostThreshold = -0.3

	boostHappy = "happy"
	boostSad   = "sad"
)

// Signal is one ranked category with its hit count
type Signal struct {
	Category  string `json:"category"`
	Intensity int    `json:"intensity"`
}

// Counts maps category to intensity for a single text and remembers the order in which
// categories first registered a hit. That order breaks ties when ranking.
type Counts struct {
	values map[string]int
	order  []string
}

// NewCounts returns an empty Counts
func NewCounts() *Counts {
	return &Counts{values: make(map[string]int)}
}

// Add adds n to category. A category is placed in first-appearance order the first time it
// receives a positive amount.
func (c *Counts) Add(category string, n int) {
	if n <= 0 {
		return
	}
	if c.values == nil {
		c.values = make(map[string]int)
	}
	if _, seen := c.values[category]; !seen {
		c.order = append(c.order, category)
	}
	c.values[category] += n
}

// Get returns the intensity of category, 0 if it never registered
func (c *Counts) Get(category string) int {
	return c.values[category]
}

// Order returns the categories in first-appearance order
func (c *Counts) Order() []string {
	return slices.Clone(c.order)
}

// Ranked is a sequence of signals ordered most-intense first
type Ranked []Signal

// Categories returns just the category names, in rank order
func (r Ranked) Categories() []string {
	out := make([]string, len(r))
	for i, s := range r {
		out[i] = s.Category
	}
	return out
}

// Top returns the highest ranked category
func (r Ranked) Top() string {
	if len(r) == 0 {
		return Neutral
	}
	return r[0].Category
}

// Intensity returns the intensity recorded for category, 0 if it is not ranked
func (r Ranked) Intensity(category string) int {
	for _, s := range r {
		if s.Category == category {
			return s.Intensity
		}
	}
	return 0
}

// CountTokens lower-cases text, splits it on whitespace and adds one to a category for every
// token that exactly equals one of its triggers. A token repeated in the text counts each time.
func CountTokens(text string, lex lexicon.Lexicon) *Counts {
	counts := NewCounts()
	tokens := strings.Fields(strings.ToLower(text))

	lex.Each(func(category string, triggers []string) {
		for _, trigger := range triggers {
			for _, token := range tokens {
				if token == trigger {
					counts.Add(category, 1)
				}
			}
		}
	})

	return counts
}

// CountSubstrings lower-cases text and adds one to a category for every trigger that occurs
// anywhere in it. Multi-word and punctuated triggers ("yeah right", "great...") match here.
func CountSubstrings(text string, lex lexicon.Lexicon) *Counts {
	counts := NewCounts()
	lowered := strings.ToLower(text)

	lex.Each(func(category string, triggers []string) {
		for _, trigger := range triggers {
			if strings.Contains(lowered, trigger) {
				counts.Add(category, 1)
			}
		}
	})

	return counts
}

// Boost folds a continuous polarity score into emotion counts: strongly positive text adds
// floor(polarity*2) to happy, strongly negative text adds floor(-polarity*2) to sad.
// counts is modified in place and returned. Run it after keyword counting so a boosted category
// that had no keyword hit is ordered after every category that did.
func Boost(counts *Counts, polarity float64) *Counts {
	switch {
	case polarity > PositiveBoostThreshold:
		counts.Add(boostHappy, int(math.Floor(polarity*2)))
	case polarity < NegativeBoostThreshold:
		counts.Add(boostSad, int(math.Floor(-polarity*2)))
	}
	return counts
}

// Rank orders the registered categories of counts by descending intensity. Equal intensities
// keep first-appearance order; since counting scans the lexicon in declaration order, keyword
// ties follow the lexicon. If nothing registered the result is the single Neutral signal.
func Rank(counts *Counts) Ranked {
	ranked := make(Ranked, 0, len(counts.order))
	for _, category := range counts.order {
		ranked = append(ranked, Signal{Category: category, Intensity: counts.values[category]})
	}

	if len(ranked) == 0 {
		return Ranked{{Category: Neutral}}
	}

	slices.SortStableFunc(ranked, func(a, b Signal) int {
		return b.Intensity - a.Intensity
	})

	return ranked
}
