package engine

import (
	"github.com/FrenchMajesty/synapsecx/pkg/polarity"
	"github.com/FrenchMajesty/synapsecx/pkg/signals"
)

// Sentiment buckets produced by SentimentBucket
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Intent labels that are not lexicon categories
const (
	// IntentGeneral is what the rich analyzer reports; it does not resolve intent
	IntentGeneral = "general"
	// IntentGeneralInquiry is the fallback when no intent trigger matches
	IntentGeneralInquiry = "general inquiry"
)

// MoodCalm is reported by SimpleEmotion when no mood trigger matches
const MoodCalm = "calm"

// Analysis is the rich, ranked classification of one text
type Analysis struct {
	Text string
	// PrimarySentiment is the top-ranked emotion
	PrimarySentiment string
	Emotions         signals.Ranked
	Tones            signals.Ranked
	Score            polarity.Score
	Intent           string
}

// Conversation is the lightweight classification used by the conversation and voice paths
type Conversation struct {
	Text      string
	Sentiment string
	Intent    string
	Emotion   string
	Score     polarity.Score
}
