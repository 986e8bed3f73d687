// Package engine is the rule-based classification engine. It blends keyword signals from the
// lexicon set with a continuous polarity score and exposes both sentiment reducers: the ranked
// multi-emotion view and the three-bucket polarity view.
package engine

import (
	"context"
	"strings"

	"github.com/FrenchMajesty/synapsecx/internal/logging"
	"github.com/FrenchMajesty/synapsecx/pkg/lexicon"
	"github.com/FrenchMajesty/synapsecx/pkg/polarity"
	"github.com/FrenchMajesty/synapsecx/pkg/signals"
)

// Three-bucket sentiment thresholds
const (
	PositiveThreshold = 0.2
	NegativeThreshold = -0.2
)

// Engine classifies text against an immutable lexicon set. One Engine serves any number of
// concurrent callers.
type Engine struct {
	lexicons  lexicon.Set
	estimator polarity.Estimator
	logger    logging.Logger
}

// New creates an Engine. A nil estimator uses the built-in lexicon estimator; a nil logger discards.
func New(lexicons lexicon.Set, estimator polarity.Estimator, logger logging.Logger) *Engine {
	if estimator == nil {
		estimator = polarity.NewLexiconEstimator()
	}
	return &Engine{
		lexicons:  lexicons,
		estimator: estimator,
		logger:    logging.OrNop(logger),
	}
}

// Lexicons returns the lexicon set the engine matches against
func (e *Engine) Lexicons() lexicon.Set {
	return e.lexicons
}

// Score runs the sentiment estimator. A failing estimator scores the text as neutral and objective.
func (e *Engine) Score(ctx context.Context, text string) polarity.Score {
	score, err := e.estimator.Estimate(ctx, text)
	if err != nil {
		e.logger.Warn("sentiment estimator failed, scoring text as neutral", logging.Fields{"error": err.Error()})
		return polarity.Score{}
	}
	return score
}

// Classify produces the rich analysis: emotions ranked by token hits plus the polarity boost,
// tones ranked by substring hits, primary sentiment taken from the top emotion, and the fixed
// intent "general".
func (e *Engine) Classify(ctx context.Context, text string) Analysis {
	score := e.Score(ctx, text)
	emotions := e.RankEmotions(text, score.Polarity)

	return Analysis{
		Text:             text,
		PrimarySentiment: emotions.Top(),
		Emotions:         emotions,
		Tones:            e.RankTones(text),
		Score:            score,
		Intent:           IntentGeneral,
	}
}

// ClassifyConversation produces the lightweight analysis: bucketed sentiment, first-match intent
// and the single-label mood.
func (e *Engine) ClassifyConversation(ctx context.Context, text string) Conversation {
	score := e.Score(ctx, text)

	return Conversation{
		Text:      text,
		Sentiment: SentimentBucket(score.Polarity),
		Intent:    e.ResolveIntent(text),
		Emotion:   e.SimpleEmotion(text),
		Score:     score,
	}
}

// RankEmotions ranks the emotion taxonomy for text, boosted by polarity
func (e *Engine) RankEmotions(text string, polarity float64) signals.Ranked {
	counts := signals.CountTokens(text, e.lexicons.Emotion)
	signals.Boost(counts, polarity)
	return signals.Rank(counts)
}

// RankTones ranks the tone taxonomy for text
func (e *Engine) RankTones(text string) signals.Ranked {
	return signals.Rank(signals.CountSubstrings(text, e.lexicons.Tone))
}

// ResolveIntent returns the first intent, in declaration order, with a trigger contained in text
func (e *Engine) ResolveIntent(text string) string {
	if category, ok := firstMatch(text, e.lexicons.Intent); ok {
		return category
	}
	return IntentGeneralInquiry
}

// SimpleEmotion returns the first mood, in declaration order, with a trigger contained in text,
// or MoodCalm. Unlike RankEmotions it does not weigh how strongly a mood is expressed.
func (e *Engine) SimpleEmotion(text string) string {
	if category, ok := firstMatch(text, e.lexicons.Mood); ok {
		return category
	}
	return MoodCalm
}

// SentimentBucket reduces polarity to positive (> 0.2), negative (< -0.2) or neutral
func SentimentBucket(polarity float64) string {
	switch {
	case polarity > PositiveThreshold:
		return SentimentPositive
	case polarity < NegativeThreshold:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

func firstMatch(text string, lex lexicon.Lexicon) (string, bool) {
	lowered := strings.ToLower(text)
	found := ""
	lex.Each(func(category string, triggers []string) {
		if found != "" {
			return
		}
		for _, trigger := range triggers {
			if strings.Contains(lowered, trigger) {
				found = category
				return
			}
		}
	})
	return found, found != ""
}
