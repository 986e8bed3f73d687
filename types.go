package synapsecx

import (
	"github.com/FrenchMajesty/synapsecx/pkg/langid"
	"github.com/FrenchMajesty/synapsecx/pkg/polarity"
	"github.com/FrenchMajesty/synapsecx/pkg/signals"
	"github.com/FrenchMajesty/synapsecx/pkg/speech"
	"github.com/FrenchMajesty/synapsecx/pkg/translate"
)

// Collaborators the Analyzer can be given in Config
type (
	SentimentEstimator = polarity.Estimator
	LanguageDetector   = langid.Detector
	Translator         = translate.Translator
	Recognizer         = speech.Recognizer
	AudioSource        = speech.Source
)

// ErrNoSpeech is the Error value of a voice analysis where nothing was recognized
const ErrNoSpeech = "No speech detected"

// ErrVoiceDisabled is the Error value of a voice analysis on a text-only analyzer
const ErrVoiceDisabled = "Voice analysis is disabled"

// TextAnalysis is the rich analysis of one text
type TextAnalysis struct {
	// RequestID correlates the result with its log lines
	RequestID string `json:"-" yaml:"-"`

	// Summary is the analyzed text
	Summary string `json:"summary" yaml:"summary"`

	// Sentiment is the top-ranked emotion
	Sentiment string `json:"sentiment" yaml:"sentiment"`

	// Emotions and Tones are category names ranked by intensity
	Emotions []string `json:"emotions" yaml:"emotions"`
	Tones    []string `json:"tones" yaml:"tones"`

	Polarity     float64 `json:"polarity" yaml:"polarity"`
	Subjectivity float64 `json:"subjectivity" yaml:"subjectivity"`

	// Intent is always "general" for the rich analysis
	Intent string `json:"intent" yaml:"intent"`

	// EmotionSignals and ToneSignals carry the intensities behind the rankings
	EmotionSignals signals.Ranked `json:"-" yaml:"-"`
	ToneSignals    signals.Ranked `json:"-" yaml:"-"`
}

// ConversationAnalysis is the lightweight analysis of one conversational text
type ConversationAnalysis struct {
	RequestID string `json:"-" yaml:"-"`
	Text      string `json:"text" yaml:"text"`
	// Language is a display name such as "Malayalam", or "Unknown"
	Language  string `json:"language" yaml:"language"`
	Sentiment string `json:"sentiment" yaml:"sentiment"`
	Intent    string `json:"intent" yaml:"intent"`
	Emotion   string `json:"emotion" yaml:"emotion"`
}

// VoiceAnalysis is the analysis of one spoken utterance. When nothing was recognized only
// Error is set.
type VoiceAnalysis struct {
	RequestID        string `json:"-" yaml:"-"`
	DetectedLanguage string `json:"detected_language,omitempty" yaml:"detected_language,omitempty"`
	OriginalText     string `json:"original_text,omitempty" yaml:"original_text,omitempty"`
	TranslatedText   string `json:"translated_text,omitempty" yaml:"translated_text,omitempty"`
	Sentiment        string `json:"sentiment,omitempty" yaml:"sentiment,omitempty"`
	Intent           string `json:"intent,omitempty" yaml:"intent,omitempty"`
	Emotion          string `json:"emotion,omitempty" yaml:"emotion,omitempty"`
	Error            string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the voice analysis carries an error instead of a classification
func (v VoiceAnalysis) Failed() bool {
	return v.Error != ""
}

// Metrics provides statistics about the analyzer's activity
type Metrics struct {
	TextAnalyses         int
	ConversationAnalyses int
	VoiceAnalyses        int

	// NoSpeech counts voice analyses where nothing was recognized
	NoSpeech int

	// Translations counts voice analyses whose transcript was translated. Failed translations,
	// which fall back to the original text, are not counted.
	Translations int

	// NoSpeechRate is the percentage of voice analyses with no recognized speech
	NoSpeechRate float32
}
