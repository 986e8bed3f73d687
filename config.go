package synapsecx

import (
	"github.com/FrenchMajesty/synapsecx/internal/logging"
	"github.com/FrenchMajesty/synapsecx/pkg/adapters"
	"github.com/FrenchMajesty/synapsecx/pkg/audio"
	"github.com/FrenchMajesty/synapsecx/pkg/lexicon"
)

const (
	// DefaultRecognizerProvider is used when Config.Recognizer is nil
	DefaultRecognizerProvider = adapters.ProviderOpenAI

	// DefaultTranslatorProvider is used when Config.Translator is nil
	DefaultTranslatorProvider = adapters.ProviderGoogle
)

// Config holds configuration for the Analyzer
type Config struct {
	// Lexicons are the keyword tables. Taxonomies left empty use the built-in lexicons.
	Lexicons lexicon.Set

	// Estimator scores polarity and subjectivity. If nil, uses the built-in lexicon estimator.
	Estimator SentimentEstimator

	// Detector is the statistical language detector behind the script heuristic. If nil, uses whatlanggo.
	Detector LanguageDetector

	// Translator normalizes Malayalam transcripts to English. If nil, uses TranslatorProvider.
	Translator         Translator
	TranslatorProvider string
	TranslatorModel    string

	// Recognizer transcribes speech. If nil, uses RecognizerProvider.
	Recognizer         Recognizer
	RecognizerProvider string
	RecognizerModel    string

	// Source captures utterances. If nil, uses ffmpeg with Audio.
	Source AudioSource
	Audio  audio.Config

	// DisableVoice builds a text-only analyzer: no provider credentials are needed and
	// AnalyzeDualVoiceConversation reports ErrVoiceDisabled.
	DisableVoice bool

	// DumpRequests writes provider request/response pairs to disk for debugging
	DumpRequests bool

	// Logger receives structured logs. If nil, logs are discarded.
	Logger logging.Logger
}

// applyDefaults fills in default values for unset config fields
func (c *Config) applyDefaults() {
	defaults := lexicon.Default()
	if c.Lexicons.Emotion.Len() == 0 {
		c.Lexicons.Emotion = defaults.Emotion
	}
	if c.Lexicons.Tone.Len() == 0 {
		c.Lexicons.Tone = defaults.Tone
	}
	if c.Lexicons.Intent.Len() == 0 {
		c.Lexicons.Intent = defaults.Intent
	}
	if c.Lexicons.Mood.Len() == 0 {
		c.Lexicons.Mood = defaults.Mood
	}

	if c.RecognizerProvider == "" {
		c.RecognizerProvider = DefaultRecognizerProvider
	}

	if c.TranslatorProvider == "" {
		c.TranslatorProvider = DefaultTranslatorProvider
	}

	c.Logger = logging.OrNop(c.Logger)
}
