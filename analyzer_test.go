package synapsecx_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrenchMajesty/synapsecx"
	"github.com/FrenchMajesty/synapsecx/pkg/audio"
	"github.com/FrenchMajesty/synapsecx/pkg/polarity"
	"github.com/FrenchMajesty/synapsecx/pkg/speech"
	"github.com/FrenchMajesty/synapsecx/pkg/testutil"
)

type voiceFixture struct {
	source     *testutil.MockSource
	recognizer *testutil.MockRecognizer
	translator *testutil.MockTranslator
	estimator  *testutil.MockEstimator
	analyzer   *synapsecx.Analyzer
}

func newVoiceFixture(t *testing.T, responses map[string]string) *voiceFixture {
	t.Helper()
	f := &voiceFixture{
		source:     &testutil.MockSource{},
		recognizer: &testutil.MockRecognizer{Responses: responses},
		translator: &testutil.MockTranslator{
			TranslateFunc: func(ctx context.Context, text, source, target string) (string, error) {
				return "I want a refund, this is a scam", nil
			},
		},
	}

	analyzer, err := synapsecx.NewAnalyzer(context.Background(), synapsecx.Config{
		Source:     f.source,
		Recognizer: f.recognizer,
		Translator: f.translator,
	})
	require.NoError(t, err)
	f.analyzer = analyzer
	return f
}

func newTextAnalyzer(t *testing.T, cfg synapsecx.Config) *synapsecx.Analyzer {
	t.Helper()
	cfg.DisableVoice = true
	analyzer, err := synapsecx.NewAnalyzer(context.Background(), cfg)
	require.NoError(t, err)
	return analyzer
}

func TestAnalyzeText_JSONShape(t *testing.T) {
	analyzer := newTextAnalyzer(t, synapsecx.Config{})

	result := analyzer.AnalyzeText(context.Background(), "I am extremely angry but yeah right, that's just great...")

	raw, err := json.Marshal(result)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.ElementsMatch(t,
		[]string{"summary", "sentiment", "emotions", "tones", "polarity", "subjectivity", "intent"},
		keys(fields))

	assert.Equal(t, "I am extremely angry but yeah right, that's just great...", result.Summary)
	assert.Equal(t, "angry", result.Sentiment)
	assert.Equal(t, []string{"angry"}, result.Emotions)
	assert.Equal(t, []string{"sarcastic", "angry"}, result.Tones)
	assert.Equal(t, "general", result.Intent)
	assert.NotEmpty(t, result.RequestID)
}

func TestAnalyzeText_PoliteText(t *testing.T) {
	analyzer := newTextAnalyzer(t, synapsecx.Config{})

	result := analyzer.AnalyzeText(context.Background(), "Thank you so much, I really appreciate it!")

	assert.Equal(t, []string{"neutral"}, result.Emotions)
	assert.Equal(t, "polite", result.Tones[0])
	assert.Equal(t, 2, result.ToneSignals.Intensity("polite"))
}

func TestAnalyzeText_EstimatorFailure(t *testing.T) {
	estimator := &testutil.MockEstimator{
		EstimateFunc: func(ctx context.Context, text string) (polarity.Score, error) {
			return polarity.Score{}, errors.New("estimator offline")
		},
	}
	analyzer := newTextAnalyzer(t, synapsecx.Config{Estimator: estimator})

	result := analyzer.AnalyzeText(context.Background(), "I am so happy")

	assert.Zero(t, result.Polarity)
	assert.Zero(t, result.Subjectivity)
	assert.Equal(t, "happy", result.Sentiment)
}

func TestAnalyzeText_KeywordOutranksEqualPolarityBoost(t *testing.T) {
	analyzer := newTextAnalyzer(t, synapsecx.Config{
		Estimator: &testutil.MockEstimator{
			EstimateFunc: func(ctx context.Context, text string) (polarity.Score, error) {
				return polarity.Score{Polarity: -0.6, Subjectivity: 0.9}, nil
			},
		},
	})

	result := analyzer.AnalyzeText(context.Background(), "I am angry about the delay")

	assert.Equal(t, "angry", result.Sentiment)
	assert.Equal(t, []string{"angry", "sad"}, result.Emotions)
}

func TestAnalyzeConversation(t *testing.T) {
	analyzer := newTextAnalyzer(t, synapsecx.Config{Detector: &testutil.MockDetector{}})

	result := analyzer.AnalyzeConversation(context.Background(), "I hate this! This is unacceptable and frustrating.")

	assert.Equal(t, "I hate this! This is unacceptable and frustrating.", result.Text)
	assert.Equal(t, "angry", result.Emotion)
	assert.Equal(t, "negative", result.Sentiment)
	assert.Equal(t, "general inquiry", result.Intent)
	assert.Equal(t, "English", result.Language)

	raw, err := json.Marshal(result)
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.ElementsMatch(t, []string{"text", "language", "sentiment", "intent", "emotion"}, keys(fields))
}

func TestAnalyzeConversation_MalayalamScript(t *testing.T) {
	detector := &testutil.MockDetector{}
	analyzer := newTextAnalyzer(t, synapsecx.Config{Detector: detector})

	result := analyzer.AnalyzeConversation(context.Background(), "എനിക്ക് റീഫണ്ട് വേണം")

	assert.Equal(t, "Malayalam", result.Language)
	assert.Zero(t, detector.CallCount, "script heuristic answers before the detector")
}

func TestAnalyzeConversation_DetectorFailure(t *testing.T) {
	detector := &testutil.MockDetector{
		DetectFunc: func(ctx context.Context, text string) (string, error) {
			return "", errors.New("no features")
		},
	}
	analyzer := newTextAnalyzer(t, synapsecx.Config{Detector: detector})

	result := analyzer.AnalyzeConversation(context.Background(), "ok")

	assert.Equal(t, "Unknown", result.Language)
}

func TestAnalyzeDualVoiceConversation_Malayalam(t *testing.T) {
	f := newVoiceFixture(t, map[string]string{speech.HintMalayalam: "എനിക്ക് റീഫണ്ട് വേണം"})

	result := f.analyzer.AnalyzeDualVoiceConversation(context.Background())

	require.False(t, result.Failed())
	assert.Equal(t, "Malayalam", result.DetectedLanguage)
	assert.Equal(t, "എനിക്ക് റീഫണ്ട് വേണം", result.OriginalText)
	assert.Equal(t, "I want a refund, this is a scam", result.TranslatedText)
	assert.Equal(t, "fraud", result.Intent)

	require.Len(t, f.translator.Calls, 1)
	assert.Equal(t, "ml", f.translator.Calls[0].Source)
	assert.Equal(t, "en", f.translator.Calls[0].Target)
	assert.Equal(t, 1, f.analyzer.GetMetrics().Translations)
}

func TestAnalyzeDualVoiceConversation_English(t *testing.T) {
	f := newVoiceFixture(t, map[string]string{
		speech.HintMalayalam: "I hate this, this is unacceptable",
		speech.HintEnglish:   "I hate this, this is unacceptable",
	})

	result := f.analyzer.AnalyzeDualVoiceConversation(context.Background())

	require.False(t, result.Failed())
	assert.Equal(t, "English", result.DetectedLanguage)
	assert.Equal(t, result.OriginalText, result.TranslatedText)
	assert.Equal(t, "angry", result.Emotion)
	assert.Equal(t, "negative", result.Sentiment)
	assert.Zero(t, f.translator.CallCount, "English text is not translated")
}

func TestAnalyzeDualVoiceConversation_NoSpeech(t *testing.T) {
	estimator := &testutil.MockEstimator{}
	translator := &testutil.MockTranslator{}
	analyzer, err := synapsecx.NewAnalyzer(context.Background(), synapsecx.Config{
		Estimator:  estimator,
		Translator: translator,
		Recognizer: &testutil.MockRecognizer{},
		Source: &testutil.MockSource{CaptureFunc: func(ctx context.Context) (*audio.Clip, error) {
			return nil, audio.ErrNoSpeech
		}},
	})
	require.NoError(t, err)

	result := analyzer.AnalyzeDualVoiceConversation(context.Background())

	assert.True(t, result.Failed())
	assert.Equal(t, synapsecx.ErrNoSpeech, result.Error)
	assert.Zero(t, estimator.CallCount, "no classification without speech")
	assert.Zero(t, translator.CallCount)

	raw, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error": "No speech detected"}`, string(raw))

	metrics := analyzer.GetMetrics()
	assert.Equal(t, 1, metrics.VoiceAnalyses)
	assert.Equal(t, 1, metrics.NoSpeech)
	assert.Equal(t, float32(100), metrics.NoSpeechRate)
}

func TestAnalyzeDualVoiceConversation_TranslationFailureKeepsOriginal(t *testing.T) {
	f := newVoiceFixture(t, map[string]string{speech.HintMalayalam: "എനിക്ക് റീഫണ്ട് വേണം"})
	f.translator.TranslateFunc = func(ctx context.Context, text, source, target string) (string, error) {
		return "", errors.New("translation quota exceeded")
	}

	result := f.analyzer.AnalyzeDualVoiceConversation(context.Background())

	require.False(t, result.Failed())
	assert.Equal(t, result.OriginalText, result.TranslatedText)
	assert.Equal(t, "general inquiry", result.Intent)

	metrics := f.analyzer.GetMetrics()
	assert.Equal(t, 1, metrics.VoiceAnalyses)
	assert.Zero(t, metrics.Translations, "a failed translation is not counted")
}

func TestAnalyzeDualVoiceConversation_VoiceDisabled(t *testing.T) {
	analyzer := newTextAnalyzer(t, synapsecx.Config{})

	result := analyzer.AnalyzeDualVoiceConversation(context.Background())

	assert.Equal(t, synapsecx.ErrVoiceDisabled, result.Error)
}

func TestNewAnalyzer_MissingProviderKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := synapsecx.NewAnalyzer(context.Background(), synapsecx.Config{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create default recognizer")
}

func TestAnalyzer_ConcurrentUse(t *testing.T) {
	analyzer := newTextAnalyzer(t, synapsecx.Config{})
	want := analyzer.AnalyzeText(context.Background(), "I hate this scam, I am furious!")

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := analyzer.AnalyzeText(context.Background(), "I hate this scam, I am furious!")
			assert.Equal(t, want.Emotions, got.Emotions)
			assert.Equal(t, want.Tones, got.Tones)
		}()
	}
	wg.Wait()

	assert.Equal(t, 17, analyzer.GetMetrics().TextAnalyses)
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
