package adapters

import (
	"context"
	"fmt"

	"github.com/FrenchMajesty/synapsecx/internal/logging"
	"github.com/FrenchMajesty/synapsecx/pkg/adapters/gemini"
	"github.com/FrenchMajesty/synapsecx/pkg/adapters/openai"
	"github.com/FrenchMajesty/synapsecx/pkg/audio"
	"github.com/FrenchMajesty/synapsecx/pkg/langid"
)

// Recognizer transcribes a clip under a BCP-47 language hint
type Recognizer interface {
	Recognize(ctx context.Context, clip *audio.Clip, hint string) (string, error)
}

const defaultTranscriptionModel = "whisper-1"

// OpenAIRecognizer transcribes with the OpenAI transcription endpoint
type OpenAIRecognizer struct {
	client openai.TranscriptionClient
	model  string
}

// NewOpenAIRecognizer creates a recognizer using OPENAI_API_KEY unless apiKey is given
func NewOpenAIRecognizer(apiKey *string, model string, dumpRequests bool, logger logging.Logger) (*OpenAIRecognizer, error) {
	key, err := loadEnvVar(apiKey, EnvOpenAIKey)
	if err != nil {
		return nil, err
	}

	client := openai.NewClient(*key)
	client.Logger = logger
	client.DumpRequests = dumpRequests

	if model == "" {
		model = defaultTranscriptionModel
	}

	return &OpenAIRecognizer{client: client, model: model}, nil
}

// Recognize implements speech.Recognizer. The hint's base language is sent as the language
// parameter so the model transcribes in that language's script.
func (r *OpenAIRecognizer) Recognize(ctx context.Context, clip *audio.Clip, hint string) (string, error) {
	if clip.Empty() {
		return "", audio.ErrEmptyCapture
	}

	resp, err := r.client.Transcribe(ctx, openai.TranscriptionRequest{
		Model:    r.model,
		Audio:    clip.WAV(),
		Filename: "utterance.wav",
		Language: languageCode(hint),
	})
	if err != nil {
		return "", fmt.Errorf("failed to transcribe audio: %w", err)
	}

	return resp.Text, nil
}

// GeminiRecognizer transcribes with a Gemini multimodal model
type GeminiRecognizer struct {
	client interface {
		Transcribe(ctx context.Context, data []byte, mimeType, languageName string) (string, error)
	}
}

// NewGeminiRecognizer creates a recognizer using GEMINI_API_KEY unless apiKey is given
func NewGeminiRecognizer(ctx context.Context, apiKey *string, model string, logger logging.Logger) (*GeminiRecognizer, error) {
	key, err := loadEnvVar(apiKey, EnvGeminiKey)
	if err != nil {
		return nil, err
	}

	client, err := gemini.NewClient(ctx, *key, model, logger)
	if err != nil {
		return nil, err
	}

	return &GeminiRecognizer{client: client}, nil
}

// Recognize implements speech.Recognizer
func (r *GeminiRecognizer) Recognize(ctx context.Context, clip *audio.Clip, hint string) (string, error) {
	if clip.Empty() {
		return "", audio.ErrEmptyCapture
	}

	text, err := r.client.Transcribe(ctx, clip.WAV(), "audio/wav", langid.NameForCode(hint))
	if err != nil {
		return "", fmt.Errorf("failed to transcribe audio: %w", err)
	}

	return text, nil
}
