package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/FrenchMajesty/synapsecx/internal/logging"
	"github.com/FrenchMajesty/synapsecx/internal/retry"
)

// requestEncoder produces a fresh body and its content type for every attempt
type requestEncoder func() (io.Reader, string, error)

func jsonEncoder(requestBody any) requestEncoder {
	return func() (io.Reader, string, error) {
		body, err := json.Marshal(requestBody)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(body), "application/json", nil
	}
}

func multipartEncoder(req TranscriptionRequest) requestEncoder {
	return func() (io.Reader, string, error) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)

		filename := req.Filename
		if filename == "" {
			filename = "audio.wav"
		}
		part, err := w.CreateFormFile("file", filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(req.Audio); err != nil {
			return nil, "", err
		}

		fields := [][2]string{
			{"model", req.Model},
			{"response_format", "verbose_json"},
			{"language", req.Language},
			{"prompt", req.Prompt},
		}
		if req.Temperature != 0 {
			fields = append(fields, [2]string{"temperature", strconv.FormatFloat(float64(req.Temperature), 'f', -1, 32)})
		}
		for _, f := range fields {
			if f[1] == "" {
				continue
			}
			if err := w.WriteField(f[0], f[1]); err != nil {
				return nil, "", err
			}
		}

		if err := w.Close(); err != nil {
			return nil, "", err
		}
		return &buf, w.FormDataContentType(), nil
	}
}

// isRetryableError determines if an error should trigger a retry
func (c *OpenAIClient) isRetryableError(err error, statusCode int, responseBody []byte) bool {
	// Retry on network errors
	if err != nil {
		return true
	}

	// Retry on server errors (5xx)
	if statusCode >= 500 {
		return true
	}

	// Retry on rate limiting (429)
	if statusCode == 429 {
		return true
	}

	// Check for failed_generation in response body even with 200 OK
	if statusCode == 200 && responseBody != nil {
		var errorResp ErrorResponse
		if json.Unmarshal(responseBody, &errorResp) == nil {
			if errorResp.Error.FailedGeneration != "" ||
				strings.Contains(errorResp.Error.Message, "failed_generation") {
				return true
			}
		}

		if strings.Contains(string(responseBody), "failed_generation") {
			return true
		}
	}

	return false
}

// shouldRetry keeps encoding failures and caller cancellation out of the retry loop
func (c *OpenAIClient) shouldRetry(ctx context.Context) retry.ShouldRetry {
	return func(err error, statusCode int, body []byte) bool {
		if ctx.Err() != nil {
			return false
		}
		if _, ok := err.(*encodeError); ok {
			return false
		}
		if _, ok := err.(*APIError); ok {
			return c.isRetryableError(nil, statusCode, body)
		}
		return c.isRetryableError(err, statusCode, body)
	}
}

type encodeError struct {
	apiName string
	err     error
}

func (e *encodeError) Error() string {
	return fmt.Sprintf("failed to marshal %s request: %v", e.apiName, e.err)
}

func (e *encodeError) Unwrap() error {
	return e.err
}

// createAndRunRetryableRequest executes an HTTP request with retry logic
func (c *OpenAIClient) createAndRunRetryableRequest(ctx context.Context, url string, encode requestEncoder, model string, dump any, apiName string) ([]byte, error) {
	opts := retry.Options{
		Config:      c.RetryConfig,
		ShouldRetry: c.shouldRetry(ctx),
		Logf: func(format string, args ...any) {
			c.logger().Warn(fmt.Sprintf(format, args...))
		},
		Name: "OpenAI " + apiName,
	}

	return retry.Do(ctx, opts, c.buildRetryableFn(ctx, url, encode, model, dump, apiName))
}

// buildRetryableFn builds a retryable function for the given request encoder
func (c *OpenAIClient) buildRetryableFn(ctx context.Context, url string, encode requestEncoder, model string, dump any, apiName string) func(attempt int) retry.Attempt[[]byte] {
	return func(attempt int) retry.Attempt[[]byte] {
		body, contentType, err := encode()
		if err != nil {
			return retry.Attempt[[]byte]{Err: &encodeError{apiName: apiName, err: err}}
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
		if err != nil {
			return retry.Attempt[[]byte]{Err: fmt.Errorf("failed to create HTTP request: %w", err)}
		}
		httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)
		httpReq.Header.Set("Content-Type", contentType)

		resp, err := c.HTTPClient.Do(httpReq)
		if err != nil {
			return retry.Attempt[[]byte]{Err: err}
		}
		defer resp.Body.Close()

		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return retry.Attempt[[]byte]{
				StatusCode: resp.StatusCode,
				Err:        fmt.Errorf("failed to read %s response body: %w", apiName, err),
			}
		}

		if c.DumpRequests {
			c.saveResponseToFile(model, apiName, dump, bodyBytes, resp.StatusCode)
		}

		if resp.StatusCode != http.StatusOK {
			return retry.Attempt[[]byte]{
				StatusCode: resp.StatusCode,
				Body:       bodyBytes,
				Err: &APIError{
					Message:    fmt.Sprintf("openai %s API error %d", apiName, resp.StatusCode),
					StatusCode: resp.StatusCode,
					RawBody:    json.RawMessage(bodyBytes),
				},
			}
		}

		return retry.Attempt[[]byte]{Value: bodyBytes, StatusCode: resp.StatusCode, Body: bodyBytes}
	}
}

// saveResponseToFile saves the request/response to a file for debugging purposes
func (c *OpenAIClient) saveResponseToFile(model, apiName string, req any, bodyBytes []byte, statusCode int) {
	timestamp := time.Now().Format("20060102_150405")
	random := uuid.New().String()[:8]
	filename := fmt.Sprintf("openai_%s_%s_%s.json", apiName, timestamp, random)

	modelDir := filepath.Join(c.DumpDir, model)
	if err := os.MkdirAll(modelDir, 0755); err != nil {
		c.logger().Warn("Error creating dump directory", logging.Fields{"dir": modelDir, "error": err.Error()})
		return
	}

	var responseBody any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		responseBody = string(bodyBytes)
	}

	responseData := map[string]any{
		"request":  req,
		"response": responseBody,
		"status":   statusCode,
	}

	jsonData, err := json.MarshalIndent(responseData, "", "  ")
	if err != nil {
		c.logger().Warn("Error marshaling dump", logging.Fields{"error": err.Error()})
		return
	}

	path := filepath.Join(modelDir, filename)
	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		c.logger().Warn("Error writing dump", logging.Fields{"path": path, "error": err.Error()})
	}
}
