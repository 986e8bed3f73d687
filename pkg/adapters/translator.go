package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/FrenchMajesty/synapsecx/internal/logging"
	"github.com/FrenchMajesty/synapsecx/pkg/adapters/gtranslate"
	"github.com/FrenchMajesty/synapsecx/pkg/adapters/openai"
	"github.com/FrenchMajesty/synapsecx/pkg/langid"
)

// Translator translates text from source ("auto" to detect) to target
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// GoogleTranslator implements Translator with Google Cloud Translation
type GoogleTranslator struct {
	client interface {
		Translate(ctx context.Context, text, source, target string) (*gtranslate.Result, error)
	}
}

// NewGoogleTranslator creates a translator using GOOGLE_TRANSLATE_API_KEY unless apiKey is given
func NewGoogleTranslator(ctx context.Context, apiKey *string, logger logging.Logger) (*GoogleTranslator, error) {
	key, err := loadEnvVar(apiKey, EnvGoogleTranslateKey)
	if err != nil {
		return nil, err
	}

	client, err := gtranslate.NewClient(ctx, *key, logger)
	if err != nil {
		return nil, err
	}

	return &GoogleTranslator{client: client}, nil
}

// Translate implements Translator
func (t *GoogleTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	result, err := t.client.Translate(ctx, text, source, target)
	if err != nil {
		return "", fmt.Errorf("failed to translate text: %w", err)
	}
	return result.Text, nil
}

const defaultTranslationModel = "gpt-4.1-mini"
const translationSystemPrompt = `You are a translation engine for customer support transcripts.
Translate the user's message into %s.%s
Preserve tone, emphasis and punctuation. Return ONLY the translation, nothing else.`

// OpenAITranslator implements Translator with an OpenAI chat model
type OpenAITranslator struct {
	client openai.LanguageModelClient
	model  string
}

// NewOpenAITranslator creates a translator using OPENAI_API_KEY unless apiKey is given
func NewOpenAITranslator(apiKey *string, model string, dumpRequests bool, logger logging.Logger) (*OpenAITranslator, error) {
	key, err := loadEnvVar(apiKey, EnvOpenAIKey)
	if err != nil {
		return nil, err
	}

	client := openai.NewClient(*key)
	client.Logger = logger
	client.DumpRequests = dumpRequests

	if model == "" {
		model = defaultTranslationModel
	}

	return &OpenAITranslator{client: client, model: model}, nil
}

// Translate implements Translator
func (t *OpenAITranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	systemPrompt := fmt.Sprintf(translationSystemPrompt, langid.NameForCode(target), sourceClause(source))

	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatMessage{
			{
				Role:    openai.MessageRoleSystem,
				Content: &systemPrompt,
			},
			{
				Role:    openai.MessageRoleUser,
				Content: &text,
			},
		},
		MaxCompletionTokens: 1024,
	}

	resp, err := t.client.ChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to get translation response: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == nil {
		return "", fmt.Errorf("no translation in response")
	}

	return strings.TrimSpace(*resp.Choices[0].Message.Content), nil
}

func sourceClause(source string) string {
	if source == "" || source == "auto" {
		return ""
	}
	return fmt.Sprintf(" The message is written in %s.", langid.NameForCode(source))
}
