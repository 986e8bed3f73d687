// Package gemini transcribes audio through the Gemini multimodal API
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/FrenchMajesty/synapsecx/internal/logging"
)

const defaultModel = "gemini-2.5-flash"

// noSpeechMarker is what the model is told to answer for silent or unintelligible audio
const noSpeechMarker = "[no speech]"

const transcriptionPrompt = `Transcribe the speech in this audio clip verbatim.
The speaker is expected to speak %s. Write the transcript in that language's own script, without translating or transliterating it.
Reply with the transcript only. If the clip contains no intelligible speech, reply with exactly ` + noSpeechMarker + `.`

// ErrNoCandidates is returned when Gemini answers without any candidate content
var ErrNoCandidates = errors.New("no response candidates from Gemini")

// ContentGenerator is the part of the genai client the transcriber uses
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Client transcribes audio with a Gemini model
type Client struct {
	models ContentGenerator
	model  string
	logger logging.Logger
}

// NewClient creates a Gemini client. An empty apiKey falls back to Application Default Credentials.
func NewClient(ctx context.Context, apiKey, model string, logger logging.Logger) (*Client, error) {
	config := &genai.ClientConfig{Backend: genai.BackendGeminiAPI}
	if apiKey != "" {
		config.APIKey = apiKey
	}

	client, err := genai.NewClient(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return NewClientWithGenerator(client.Models, model, logger), nil
}

// NewClientWithGenerator wraps an existing generator, typically client.Models
func NewClientWithGenerator(models ContentGenerator, model string, logger logging.Logger) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		models: models,
		model:  model,
		logger: logging.OrNop(logger),
	}
}

// Model returns the model used for transcription
func (c *Client) Model() string {
	return c.model
}

// Transcribe sends the audio inline with a prompt naming the expected language. A clip the
// model reports as silent yields an empty transcript.
func (c *Client) Transcribe(ctx context.Context, data []byte, mimeType, languageName string) (string, error) {
	content := genai.NewContentFromParts([]*genai.Part{
		genai.NewPartFromText(fmt.Sprintf(transcriptionPrompt, languageName)),
		genai.NewPartFromBytes(data, mimeType),
	}, genai.RoleUser)

	config := &genai.GenerateContentConfig{Temperature: genai.Ptr[float32](0)}

	c.logger.Debug("Sending audio to Gemini", logging.Fields{
		"model":    c.model,
		"bytes":    len(data),
		"language": languageName,
	})

	resp, err := c.models.GenerateContent(ctx, c.model, []*genai.Content{content}, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content with Gemini: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrNoCandidates
	}

	var result strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			result.WriteString(part.Text)
		}
	}

	text := strings.TrimSpace(result.String())
	if strings.EqualFold(text, noSpeechMarker) {
		return "", nil
	}
	return text, nil
}
