package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/FrenchMajesty/synapsecx/internal/logging"
	"github.com/FrenchMajesty/synapsecx/internal/retry"
)

const openaiBaseURL = "https://api.openai.com/v1"

// Creates a new OpenAIClient
func NewClient(apiKey string) *OpenAIClient {
	client := &OpenAIClient{
		APIKey:      apiKey,
		HTTPClient:  http.DefaultClient,
		RetryConfig: retry.DefaultConfig(),
		BaseURL:     openaiBaseURL,
		DumpDir:     "debug_requests",
	}

	return client
}

var (
	_ LanguageModelClient = (*OpenAIClient)(nil)
	_ TranscriptionClient = (*OpenAIClient)(nil)
)

// Sends a chat completion request to OpenAI with retry logic
func (c *OpenAIClient) ChatCompletion(ctx context.Context, req ChatCompletionRequest) (*ChatCompletionResponse, error) {
	url := c.BaseURL + "/chat/completions"

	bodyBytes, err := c.createAndRunRetryableRequest(ctx, url, jsonEncoder(req), req.Model, req, "chat")
	if err != nil {
		return nil, err
	}

	var chatResp ChatCompletionResponse
	if err := json.Unmarshal(bodyBytes, &chatResp); err != nil {
		return nil, &APIError{
			Message: fmt.Sprintf("failed to parse chat completion response: %v", err),
			RawBody: json.RawMessage(bodyBytes),
		}
	}

	return &chatResp, nil
}

// Transcribe uploads audio to the transcription endpoint with retry logic
func (c *OpenAIClient) Transcribe(ctx context.Context, req TranscriptionRequest) (*TranscriptionResponse, error) {
	url := c.BaseURL + "/audio/transcriptions"

	bodyBytes, err := c.createAndRunRetryableRequest(ctx, url, multipartEncoder(req), req.Model, req, "transcription")
	if err != nil {
		return nil, err
	}

	var transcription TranscriptionResponse
	if err := json.Unmarshal(bodyBytes, &transcription); err != nil {
		return nil, &APIError{
			Message: fmt.Sprintf("failed to parse transcription response: %v", err),
			RawBody: json.RawMessage(bodyBytes),
		}
	}

	return &transcription, nil
}

// Sets the base URL for the OpenAI client
func (c *OpenAIClient) SetBaseURL(baseUrl string) {
	c.BaseURL = baseUrl
}

func (c *OpenAIClient) logger() logging.Logger {
	return logging.OrNop(c.Logger)
}
