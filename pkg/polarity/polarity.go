// Package polarity estimates continuous sentiment polarity and subjectivity for English text.
//
// The estimator averages word-level assessments from a small adjective/verb lexicon. An
// intensifier directly before a word scales it ("extremely angry"); a negator within the two
// words before it flips and halves the polarity ("not good"). Texts with no lexicon words score
// zero on both axes.
package polarity

import (
	"context"
	"math"
	"strings"
	"unicode"
)

// Score is the estimator's output for one text
type Score struct {
	// Polarity in [-1, 1]
	Polarity float64 `json:"polarity"`
	// Subjectivity in [0, 1]
	Subjectivity float64 `json:"subjectivity"`
}

// Estimator produces polarity and subjectivity for a text
type Estimator interface {
	Estimate(ctx context.Context, text string) (Score, error)
}

// Word is one lexicon entry
type Word struct {
	Polarity     float64
	Subjectivity float64
}

const (
	negationFactor = -0.5
	negationWindow = 2
)

// LexiconEstimator scores text against a fixed word lexicon. It is immutable and safe for
// concurrent use.
type LexiconEstimator struct {
	words        map[string]Word
	intensifiers map[string]float64
	negators     map[string]bool
}

// NewLexiconEstimator returns an estimator backed by the built-in English lexicon
func NewLexiconEstimator() *LexiconEstimator {
	return &LexiconEstimator{
		words:        englishWords,
		intensifiers: englishIntensifiers,
		negators:     englishNegators,
	}
}

// Estimate scores text. It fails only when ctx is already done.
func (e *LexiconEstimator) Estimate(ctx context.Context, text string) (Score, error) {
	if err := ctx.Err(); err != nil {
		return Score{}, err
	}

	tokens := tokenize(text)

	var polaritySum, subjectivitySum float64
	assessments := 0

	for i, token := range tokens {
		w, ok := e.words[token]
		if !ok {
			continue
		}

		p, s := w.Polarity, w.Subjectivity
		if i > 0 {
			if mult, ok := e.intensifiers[tokens[i-1]]; ok {
				p *= mult
				s *= mult
			}
		}
		if e.negated(tokens, i) {
			p *= negationFactor
		}

		polaritySum += clamp(p, -1, 1)
		subjectivitySum += clamp(s, 0, 1)
		assessments++
	}

	if assessments == 0 {
		return Score{}, nil
	}

	return Score{
		Polarity:     round(polaritySum / float64(assessments)),
		Subjectivity: round(subjectivitySum / float64(assessments)),
	}, nil
}

// negated reports whether a negator appears within the window before tokens[i]
func (e *LexiconEstimator) negated(tokens []string, i int) bool {
	for j := i - 1; j >= 0 && j >= i-negationWindow; j-- {
		if e.negators[tokens[j]] {
			return true
		}
	}
	return false
}

// tokenize lower-cases text and splits it into words, keeping apostrophes inside words
// so contractions such as "don't" survive as one token. Curly apostrophes are folded to '.
func tokenize(text string) []string {
	text = strings.ToLower(strings.ReplaceAll(text, "’", "'"))
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// round keeps scores stable under float noise so equal inputs print identically
func round(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
