package synapsecx

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/FrenchMajesty/synapsecx/internal/logging"
	"github.com/FrenchMajesty/synapsecx/pkg/adapters"
	"github.com/FrenchMajesty/synapsecx/pkg/audio"
	"github.com/FrenchMajesty/synapsecx/pkg/engine"
	"github.com/FrenchMajesty/synapsecx/pkg/langid"
	"github.com/FrenchMajesty/synapsecx/pkg/lexicon"
	"github.com/FrenchMajesty/synapsecx/pkg/speech"
	"github.com/FrenchMajesty/synapsecx/pkg/translate"
)

// Analyzer runs text and voice through the classification engine
type Analyzer struct {
	engine     *engine.Engine
	identifier *langid.Identifier
	pipeline   *speech.Pipeline
	gate       *translate.Gate
	logger     logging.Logger

	// Metrics tracking
	textAnalyses         int
	conversationAnalyses int
	voiceAnalyses        int
	noSpeech             int
	translations         int
	metricsLock          sync.RWMutex
}

// NewAnalyzer creates a new Analyzer with the given configuration
func NewAnalyzer(ctx context.Context, cfg Config) (*Analyzer, error) {
	cfg.applyDefaults()

	a := &Analyzer{
		engine:     engine.New(cfg.Lexicons, cfg.Estimator, cfg.Logger),
		identifier: langid.NewIdentifier(cfg.Detector, cfg.Logger),
		logger:     cfg.Logger,
	}

	if cfg.DisableVoice {
		return a, nil
	}

	var recognizer Recognizer
	if cfg.Recognizer != nil {
		recognizer = cfg.Recognizer
	} else {
		client, err := adapters.NewRecognizer(ctx, adapters.ProviderOptions{
			Provider:     cfg.RecognizerProvider,
			Model:        cfg.RecognizerModel,
			Logger:       cfg.Logger,
			DumpRequests: cfg.DumpRequests,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create default recognizer: %w", err)
		}
		recognizer = client
	}

	var translator Translator
	if cfg.Translator != nil {
		translator = cfg.Translator
	} else {
		client, err := adapters.NewTranslator(ctx, adapters.ProviderOptions{
			Provider:     cfg.TranslatorProvider,
			Model:        cfg.TranslatorModel,
			Logger:       cfg.Logger,
			DumpRequests: cfg.DumpRequests,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create default translator: %w", err)
		}
		translator = client
	}

	var source AudioSource
	if cfg.Source != nil {
		source = cfg.Source
	} else {
		source = audio.NewCommandSource(cfg.Audio, cfg.Logger)
	}

	a.pipeline = speech.NewPipeline(source, recognizer, nil, cfg.Logger)
	a.gate = translate.NewGate(translator, cfg.Logger)

	return a, nil
}

// Lexicons returns the keyword tables the analyzer classifies with
func (a *Analyzer) Lexicons() lexicon.Set {
	return a.engine.Lexicons()
}

// AnalyzeText returns ranked emotions and tones, polarity and subjectivity for text
func (a *Analyzer) AnalyzeText(ctx context.Context, text string) TextAnalysis {
	requestID := uuid.NewString()
	result := a.engine.Classify(ctx, text)

	a.logger.Debug("Analyzed text", logging.Fields{
		"request_id": requestID,
		"sentiment":  result.PrimarySentiment,
		"polarity":   result.Score.Polarity,
	})
	a.recordText()

	return TextAnalysis{
		RequestID:      requestID,
		Summary:        text,
		Sentiment:      result.PrimarySentiment,
		Emotions:       result.Emotions.Categories(),
		Tones:          result.Tones.Categories(),
		Polarity:       result.Score.Polarity,
		Subjectivity:   result.Score.Subjectivity,
		Intent:         result.Intent,
		EmotionSignals: result.Emotions,
		ToneSignals:    result.Tones,
	}
}

// AnalyzeConversation returns the language, bucketed sentiment, intent and mood of text
func (a *Analyzer) AnalyzeConversation(ctx context.Context, text string) ConversationAnalysis {
	requestID := uuid.NewString()
	result := a.engine.ClassifyConversation(ctx, text)
	language := a.identifier.Identify(ctx, text)

	a.logger.Debug("Analyzed conversation", logging.Fields{
		"request_id": requestID,
		"language":   language,
		"sentiment":  result.Sentiment,
		"intent":     result.Intent,
	})
	a.recordConversation()

	return ConversationAnalysis{
		RequestID: requestID,
		Text:      text,
		Language:  language,
		Sentiment: result.Sentiment,
		Intent:    result.Intent,
		Emotion:   result.Emotion,
	}
}

// AnalyzeDualVoiceConversation captures one utterance, recognizes it as Malayalam or English,
// translates Malayalam to English and classifies the English text. When nothing is recognized
// the result carries only Error and no classification runs.
func (a *Analyzer) AnalyzeDualVoiceConversation(ctx context.Context) VoiceAnalysis {
	requestID := uuid.NewString()
	logger := a.logger.WithFields(logging.Fields{"request_id": requestID})

	if a.pipeline == nil {
		logger.Warn("Voice analysis requested on a text-only analyzer")
		return VoiceAnalysis{RequestID: requestID, Error: ErrVoiceDisabled}
	}

	outcome := a.pipeline.Run(ctx)
	if outcome.NoSpeech() {
		a.recordVoice(false, false)
		return VoiceAnalysis{RequestID: requestID, Error: ErrNoSpeech}
	}

	english := outcome.Text
	if outcome.Language == speech.Malayalam {
		english = a.gate.ToWorkingLanguage(ctx, outcome.Text, speech.Malayalam.String())
	}
	// the gate hands back the original text when translation fails
	translated := english != outcome.Text

	result := a.engine.ClassifyConversation(ctx, english)
	logger.Debug("Analyzed voice conversation", logging.Fields{
		"language":  outcome.Language.String(),
		"sentiment": result.Sentiment,
		"intent":    result.Intent,
	})
	a.recordVoice(true, translated)

	return VoiceAnalysis{
		RequestID:        requestID,
		DetectedLanguage: outcome.Language.String(),
		OriginalText:     outcome.Text,
		TranslatedText:   english,
		Sentiment:        result.Sentiment,
		Intent:           result.Intent,
		Emotion:          result.Emotion,
	}
}

// GetMetrics returns current analysis metrics
func (a *Analyzer) GetMetrics() Metrics {
	a.metricsLock.RLock()
	defer a.metricsLock.RUnlock()

	var noSpeechRate float32
	if a.voiceAnalyses > 0 {
		noSpeechRate = float32(a.noSpeech) / float32(a.voiceAnalyses) * 100
	}

	return Metrics{
		TextAnalyses:         a.textAnalyses,
		ConversationAnalyses: a.conversationAnalyses,
		VoiceAnalyses:        a.voiceAnalyses,
		NoSpeech:             a.noSpeech,
		Translations:         a.translations,
		NoSpeechRate:         noSpeechRate,
	}
}

func (a *Analyzer) recordText() {
	a.metricsLock.Lock()
	defer a.metricsLock.Unlock()
	a.textAnalyses++
}

func (a *Analyzer) recordConversation() {
	a.metricsLock.Lock()
	defer a.metricsLock.Unlock()
	a.conversationAnalyses++
}

func (a *Analyzer) recordVoice(recognized, translated bool) {
	a.metricsLock.Lock()
	defer a.metricsLock.Unlock()
	a.voiceAnalyses++
	if !recognized {
		a.noSpeech++
	}
	if translated {
		a.translations++
	}
}
