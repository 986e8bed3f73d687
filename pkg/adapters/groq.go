package adapters

import (
	"github.com/FrenchMajesty/synapsecx/internal/logging"
	"github.com/FrenchMajesty/synapsecx/pkg/adapters/openai"
)

// Groq serves an OpenAI-compatible API, so its adapters reuse the OpenAI client
const groqBaseURL = "https://api.groq.com/openai/v1"

const (
	defaultGroqTranscriptionModel = "whisper-large-v3-turbo"
	defaultGroqTranslationModel   = "llama-3.3-70b-versatile"
)

// NewGroqRecognizer creates a Whisper recognizer on Groq using GROQ_API_KEY unless apiKey is given
func NewGroqRecognizer(apiKey *string, model string, dumpRequests bool, logger logging.Logger) (*OpenAIRecognizer, error) {
	client, err := newGroqClient(apiKey, dumpRequests, logger)
	if err != nil {
		return nil, err
	}

	if model == "" {
		model = defaultGroqTranscriptionModel
	}

	return &OpenAIRecognizer{client: client, model: model}, nil
}

// NewGroqTranslator creates a chat translator on Groq using GROQ_API_KEY unless apiKey is given
func NewGroqTranslator(apiKey *string, model string, dumpRequests bool, logger logging.Logger) (*OpenAITranslator, error) {
	client, err := newGroqClient(apiKey, dumpRequests, logger)
	if err != nil {
		return nil, err
	}

	if model == "" {
		model = defaultGroqTranslationModel
	}

	return &OpenAITranslator{client: client, model: model}, nil
}

func newGroqClient(apiKey *string, dumpRequests bool, logger logging.Logger) (*openai.OpenAIClient, error) {
	key, err := loadEnvVar(apiKey, EnvGroqKey)
	if err != nil {
		return nil, err
	}

	client := openai.NewClient(*key)
	client.SetBaseURL(groqBaseURL)
	client.Logger = logger
	client.DumpRequests = dumpRequests

	return client, nil
}
