// Package adapters binds the speech and translation interfaces to hosted providers. API keys
// come from arguments or, when nil, from the environment.
package adapters

import (
	"context"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/FrenchMajesty/synapsecx/internal/logging"
)

// Providers
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderGoogle = "google"
	ProviderGroq   = "groq"
)

// Environment variables holding provider credentials
const (
	EnvOpenAIKey          = "OPENAI_API_KEY"
	EnvGeminiKey          = "GEMINI_API_KEY"
	EnvGoogleTranslateKey = "GOOGLE_TRANSLATE_API_KEY"
	EnvGroqKey            = "GROQ_API_KEY"
)

// ProviderOptions selects and configures a provider
type ProviderOptions struct {
	Provider string
	Model    string
	// APIKey overrides the provider's environment variable when set
	APIKey *string
	Logger logging.Logger
	// DumpRequests writes OpenAI request/response pairs to disk
	DumpRequests bool
}

// NewRecognizer creates the speech recognizer for opts.Provider (openai by default)
func NewRecognizer(ctx context.Context, opts ProviderOptions) (Recognizer, error) {
	switch strings.ToLower(opts.Provider) {
	case "", ProviderOpenAI:
		return NewOpenAIRecognizer(opts.APIKey, opts.Model, opts.DumpRequests, opts.Logger)
	case ProviderGemini:
		return NewGeminiRecognizer(ctx, opts.APIKey, opts.Model, opts.Logger)
	case ProviderGroq:
		return NewGroqRecognizer(opts.APIKey, opts.Model, opts.DumpRequests, opts.Logger)
	default:
		return nil, fmt.Errorf("unknown recognizer provider %q", opts.Provider)
	}
}

// NewTranslator creates the translator for opts.Provider (google by default)
func NewTranslator(ctx context.Context, opts ProviderOptions) (Translator, error) {
	switch strings.ToLower(opts.Provider) {
	case "", ProviderGoogle:
		return NewGoogleTranslator(ctx, opts.APIKey, opts.Logger)
	case ProviderOpenAI:
		return NewOpenAITranslator(opts.APIKey, opts.Model, opts.DumpRequests, opts.Logger)
	case ProviderGroq:
		return NewGroqTranslator(opts.APIKey, opts.Model, opts.DumpRequests, opts.Logger)
	default:
		return nil, fmt.Errorf("unknown translator provider %q", opts.Provider)
	}
}

// languageCode reduces a BCP-47 hint such as "ml-IN" to its base code "ml"
func languageCode(hint string) string {
	tag, err := language.Parse(hint)
	if err != nil {
		return ""
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return ""
	}
	return base.String()
}

// loadEnvVar loads an environment variable into a pointer if no value is provided
func loadEnvVar(target *string, envKey string) (*string, error) {
	if target == nil {
		envVar := os.Getenv(envKey)
		if envVar == "" {
			return nil, fmt.Errorf("%s environment variable not set and no value provided", envKey)
		}
		return &envVar, nil
	}
	return target, nil
}
