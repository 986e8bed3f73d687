package openai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/FrenchMajesty/synapsecx/internal/retry"
)

func testClient(server *httptest.Server, maxRetries int) *OpenAIClient {
	return &OpenAIClient{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
		RetryConfig: retry.Config{
			MaxRetries:      maxRetries,
			BaseDelay:       time.Millisecond,
			MaxDelay:        time.Millisecond,
			BackoffMultiple: 1,
		},
	}
}

func chatRequest(prompt string) ChatCompletionRequest {
	return ChatCompletionRequest{
		Model:    "gpt-4.1-mini",
		Messages: []ChatMessage{{Role: MessageRoleUser, Content: &prompt}},
	}
}

func TestNewClient(t *testing.T) {
	apiKey := "test-api-key"
	client := NewClient(apiKey)

	if client == nil {
		t.Fatal("Expected non-nil client")
	}

	if client.APIKey != apiKey {
		t.Errorf("Expected APIKey %q, got %q", apiKey, client.APIKey)
	}

	if client.HTTPClient == nil {
		t.Error("Expected HTTPClient to be initialized")
	}

	if client.RetryConfig.MaxRetries == 0 {
		t.Error("Expected RetryConfig to be initialized with defaults")
	}

	if client.BaseURL != openaiBaseURL {
		t.Errorf("Expected BaseURL %q, got %q", openaiBaseURL, client.BaseURL)
	}
}

func TestChatCompletion_Success(t *testing.T) {
	responseContent := "I want a refund"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST request, got %s", r.Method)
		}
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Expected /chat/completions, got %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("Expected Authorization header with Bearer token")
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Expected Content-Type application/json")
		}

		var req ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if req.Model != "gpt-4.1-mini" || len(req.Messages) != 1 {
			t.Errorf("Unexpected request: %+v", req)
		}

		resp := ChatCompletionResponse{
			ID:     "test-id",
			Object: "chat.completion",
			Choices: []ChatCompletionChoice{
				{
					Message:      ChatMessage{Role: MessageRoleAssistant, Content: &responseContent},
					FinishReason: "stop",
				},
			},
			Usage: ChatCompletionUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	resp, err := testClient(server, 0).ChatCompletion(context.Background(), chatRequest("translate this"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if resp.ID != "test-id" {
		t.Errorf("Expected ID test-id, got %s", resp.ID)
	}
	if len(resp.Choices) != 1 || *resp.Choices[0].Message.Content != responseContent {
		t.Errorf("Unexpected choices: %+v", resp.Choices)
	}
	if resp.Usage.TotalTokens != 15 {
		t.Errorf("Expected 15 total tokens, got %d", resp.Usage.TotalTokens)
	}
}

func TestChatCompletion_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "Invalid API key"}}`))
	}))
	defer server.Close()

	_, err := testClient(server, 0).ChatCompletion(context.Background(), chatRequest("test"))

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", apiErr.StatusCode)
	}
	if !strings.Contains(string(apiErr.GetRawResponseBody()), "Invalid API key") {
		t.Errorf("Expected raw body to be captured, got %s", apiErr.RawBody)
	}
}

func TestChatCompletion_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{invalid json}`))
	}))
	defer server.Close()

	_, err := testClient(server, 0).ChatCompletion(context.Background(), chatRequest("test"))
	if err == nil {
		t.Fatal("Expected JSON parse error")
	}
	if !strings.Contains(err.Error(), "failed to parse chat completion response") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestChatCompletion_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	content := "ok"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(ChatCompletionResponse{
			Choices: []ChatCompletionChoice{{Message: ChatMessage{Role: MessageRoleAssistant, Content: &content}}},
		})
	}))
	defer server.Close()

	resp, err := testClient(server, 2).ChatCompletion(context.Background(), chatRequest("test"))
	if err != nil {
		t.Fatalf("Expected success after retries, got: %v", err)
	}
	if *resp.Choices[0].Message.Content != "ok" {
		t.Errorf("Unexpected content %q", *resp.Choices[0].Message.Content)
	}
	if calls.Load() != 3 {
		t.Errorf("Expected 3 calls, got %d", calls.Load())
	}
}

func TestChatCompletion_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	_, err := testClient(server, 3).ChatCompletion(context.Background(), chatRequest("test"))
	if err == nil {
		t.Fatal("Expected error")
	}
	if calls.Load() != 1 {
		t.Errorf("Expected a single call, got %d", calls.Load())
	}
}

func TestTranscribe_Multipart(t *testing.T) {
	audio := []byte("RIFF....WAVEfmt ")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio/transcriptions" {
			t.Errorf("Expected /audio/transcriptions, got %s", r.URL.Path)
		}
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			t.Errorf("Expected multipart content type, got %s", r.Header.Get("Content-Type"))
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("Failed to parse form: %v", err)
		}

		if got := r.FormValue("model"); got != "whisper-1" {
			t.Errorf("Expected model whisper-1, got %q", got)
		}
		if got := r.FormValue("language"); got != "ml" {
			t.Errorf("Expected language ml, got %q", got)
		}
		if got := r.FormValue("response_format"); got != "verbose_json" {
			t.Errorf("Expected verbose_json, got %q", got)
		}
		if _, ok := r.MultipartForm.Value["prompt"]; ok {
			t.Error("Expected empty prompt to be omitted")
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("Expected file part: %v", err)
		}
		defer file.Close()
		if header.Filename != "utterance.wav" {
			t.Errorf("Expected filename utterance.wav, got %q", header.Filename)
		}
		data, _ := io.ReadAll(file)
		if string(data) != string(audio) {
			t.Errorf("Audio bytes were not forwarded")
		}

		w.Write([]byte(`{"text": "എനിക്ക് റീഫണ്ട് വേണം", "language": "malayalam", "duration": 2.5}`))
	}))
	defer server.Close()

	resp, err := testClient(server, 0).Transcribe(context.Background(), TranscriptionRequest{
		Model:    "whisper-1",
		Audio:    audio,
		Filename: "utterance.wav",
		Language: "ml",
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.Text != "എനിക്ക് റീഫണ്ട് വേണം" {
		t.Errorf("Unexpected text %q", resp.Text)
	}
	if resp.Duration != 2.5 {
		t.Errorf("Expected duration 2.5, got %v", resp.Duration)
	}
}

func TestTranscribe_ResendsBodyOnRetry(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("attempt %d: failed to parse form: %v", calls.Load()+1, err)
		}
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"text": "hello"}`))
	}))
	defer server.Close()

	resp, err := testClient(server, 1).Transcribe(context.Background(), TranscriptionRequest{Model: "whisper-1", Audio: []byte("x")})
	if err != nil {
		t.Fatalf("Expected success, got: %v", err)
	}
	if resp.Text != "hello" {
		t.Errorf("Unexpected text %q", resp.Text)
	}
}

func TestIsRetryableError_NetworkError(t *testing.T) {
	client := NewClient("test-key")

	if !client.isRetryableError(http.ErrHandlerTimeout, 0, nil) {
		t.Error("Expected network error to be retryable")
	}
}

func TestIsRetryableError_StatusCodes(t *testing.T) {
	client := NewClient("test-key")

	testCases := []struct {
		name        string
		statusCode  int
		shouldRetry bool
	}{
		{"500 Internal Server Error", 500, true},
		{"502 Bad Gateway", 502, true},
		{"503 Service Unavailable", 503, true},
		{"429 Rate Limit", 429, true},
		{"400 Bad Request", 400, false},
		{"401 Unauthorized", 401, false},
		{"404 Not Found", 404, false},
		{"200 OK", 200, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := client.isRetryableError(nil, tc.statusCode, nil)
			if result != tc.shouldRetry {
				t.Errorf("Expected retry=%v for status %d, got %v", tc.shouldRetry, tc.statusCode, result)
			}
		})
	}
}

func TestIsRetryableError_FailedGeneration(t *testing.T) {
	client := NewClient("test-key")

	testCases := []struct {
		name         string
		responseBody string
		shouldRetry  bool
	}{
		{"failed_generation in error field", `{"error": {"message": "x", "failed_generation": "true"}}`, true},
		{"failed_generation in message", `{"error": {"message": "failed_generation occurred"}}`, true},
		{"failed_generation in body string", `{"status": "failed_generation detected"}`, true},
		{"normal response", `{"error": {"message": "Normal error"}}`, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := client.isRetryableError(nil, 200, []byte(tc.responseBody))
			if result != tc.shouldRetry {
				t.Errorf("Expected retry=%v, got %v", tc.shouldRetry, result)
			}
		})
	}
}

func TestBuildRetryableFn_InvalidRequestBody(t *testing.T) {
	client := NewClient("test-key")

	fn := client.buildRetryableFn(context.Background(), "http://example.com", jsonEncoder(make(chan int)), "m", nil, "test")
	attempt := fn(0)

	if attempt.Err == nil {
		t.Fatal("Expected error when marshaling invalid request body")
	}
	if !strings.Contains(attempt.Err.Error(), "failed to marshal") {
		t.Errorf("Expected marshal error, got: %v", attempt.Err)
	}
	if client.shouldRetry(context.Background())(attempt.Err, 0, nil) {
		t.Error("Expected marshal errors not to be retried")
	}
}

func TestBuildRetryableFn_ContextCancellation(t *testing.T) {
	client := NewClient("test-key")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fn := client.buildRetryableFn(ctx, "http://example.com", jsonEncoder(chatRequest("test")), "m", nil, "test")
	if fn(0).Err == nil {
		t.Error("Expected error due to canceled context")
	}
	if client.shouldRetry(ctx)(errors.New("canceled"), 0, nil) {
		t.Error("Expected no retry once the caller's context is done")
	}
}

func TestDumpRequests_WritesFile(t *testing.T) {
	content := "ok"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ChatCompletionResponse{
			ID:      "dump-id",
			Choices: []ChatCompletionChoice{{Message: ChatMessage{Role: MessageRoleAssistant, Content: &content}}},
		})
	}))
	defer server.Close()

	client := testClient(server, 0)
	client.DumpRequests = true
	client.DumpDir = t.TempDir()

	if _, err := client.ChatCompletion(context.Background(), chatRequest("test")); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	files, err := filepath.Glob(filepath.Join(client.DumpDir, "gpt-4.1-mini", "openai_chat_*.json"))
	if err != nil || len(files) != 1 {
		t.Fatalf("Expected one dump file, got %v (err %v)", files, err)
	}

	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatalf("Failed to read dump: %v", err)
	}
	var dumped map[string]any
	if err := json.Unmarshal(data, &dumped); err != nil {
		t.Fatalf("Dump is not JSON: %v", err)
	}
	if dumped["status"] != float64(200) {
		t.Errorf("Expected status 200 in dump, got %v", dumped["status"])
	}
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{
		Message:    "test error",
		StatusCode: 500,
		RawBody:    json.RawMessage(`{"error": "details"}`),
	}

	if err.Error() != "test error" {
		t.Errorf("Expected error message %q, got %q", "test error", err.Error())
	}
}

func TestSetBaseURL(t *testing.T) {
	client := NewClient("test-key")
	client.SetBaseURL("http://localhost:9999/v1")

	if client.BaseURL != "http://localhost:9999/v1" {
		t.Errorf("Unexpected base URL %q", client.BaseURL)
	}
}
