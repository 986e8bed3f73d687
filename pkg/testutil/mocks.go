package testutil

import (
	"context"
	"sync"

	"github.com/FrenchMajesty/synapsecx/pkg/audio"
	"github.com/FrenchMajesty/synapsecx/pkg/polarity"
)

// MockEstimator is a mock implementation of polarity.Estimator for testing
type MockEstimator struct {
	EstimateFunc func(ctx context.Context, text string) (polarity.Score, error)
	mu           sync.Mutex
	CallCount    int
	LastText     string
}

func (m *MockEstimator) Estimate(ctx context.Context, text string) (polarity.Score, error) {
	m.mu.Lock()
	m.CallCount++
	m.LastText = text
	m.mu.Unlock()

	if m.EstimateFunc != nil {
		return m.EstimateFunc(ctx, text)
	}
	return polarity.Score{}, nil
}

// MockDetector is a mock implementation of langid.Detector for testing
type MockDetector struct {
	DetectFunc func(ctx context.Context, text string) (string, error)
	mu         sync.Mutex
	CallCount  int
}

func (m *MockDetector) Detect(ctx context.Context, text string) (string, error) {
	m.mu.Lock()
	m.CallCount++
	m.mu.Unlock()

	if m.DetectFunc != nil {
		return m.DetectFunc(ctx, text)
	}
	// Default: everything reads as English
	return "en", nil
}

// TranslateCall records the arguments of one Translate call
type TranslateCall struct {
	Text   string
	Source string
	Target string
}

// MockTranslator is a mock implementation of translate.Translator for testing
type MockTranslator struct {
	TranslateFunc func(ctx context.Context, text, source, target string) (string, error)
	mu            sync.Mutex
	CallCount     int
	Calls         []TranslateCall
}

func (m *MockTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	m.mu.Lock()
	m.CallCount++
	m.Calls = append(m.Calls, TranslateCall{Text: text, Source: source, Target: target})
	m.mu.Unlock()

	if m.TranslateFunc != nil {
		return m.TranslateFunc(ctx, text, source, target)
	}
	// Default: echo the input
	return text, nil
}

// MockRecognizer is a mock implementation of speech.Recognizer for testing.
// Responses maps a hint to the transcript returned for it; Errors maps a hint to a failure.
type MockRecognizer struct {
	RecognizeFunc func(ctx context.Context, clip *audio.Clip, hint string) (string, error)
	Responses     map[string]string
	Errors        map[string]error

	mu        sync.Mutex
	CallCount int
	Hints     []string
}

func (m *MockRecognizer) Recognize(ctx context.Context, clip *audio.Clip, hint string) (string, error) {
	m.mu.Lock()
	m.CallCount++
	m.Hints = append(m.Hints, hint)
	m.mu.Unlock()

	if m.RecognizeFunc != nil {
		return m.RecognizeFunc(ctx, clip, hint)
	}
	if err, ok := m.Errors[hint]; ok {
		return "", err
	}
	return m.Responses[hint], nil
}

// MockSource is a mock implementation of speech.Source for testing
type MockSource struct {
	CaptureFunc func(ctx context.Context) (*audio.Clip, error)
	mu          sync.Mutex
	CallCount   int
}

func (m *MockSource) Capture(ctx context.Context) (*audio.Clip, error) {
	m.mu.Lock()
	m.CallCount++
	m.mu.Unlock()

	if m.CaptureFunc != nil {
		return m.CaptureFunc(ctx)
	}
	// Default: one second of low-level audio
	pcm := make([]float64, 16000)
	for i := range pcm {
		pcm[i] = 0.1
	}
	return &audio.Clip{PCM: pcm, SampleRate: 16000}, nil
}
