// Package gtranslate is a client for the Google Cloud Translation v2 API
package gtranslate

import (
	"context"
	"errors"
	"fmt"
	"html"

	"google.golang.org/api/option"
	translate "google.golang.org/api/translate/v2"

	"github.com/FrenchMajesty/synapsecx/internal/logging"
)

// autoDetect is the source code meaning "let the service detect the language"
const autoDetect = "auto"

// ErrNoTranslation is returned when the service answers without a translation
var ErrNoTranslation = errors.New("translation response contained no translations")

// Result is one translated text
type Result struct {
	Text           string
	DetectedSource string
}

// Client translates text with Google Cloud Translation
type Client struct {
	service *translate.Service
	logger  logging.Logger
}

// NewClient creates a client authenticated with apiKey. Extra options (endpoint, HTTP client)
// are passed through to the API service.
func NewClient(ctx context.Context, apiKey string, logger logging.Logger, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)

	service, err := translate.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create translate service: %w", err)
	}

	return &Client{
		service: service,
		logger:  logging.OrNop(logger),
	}, nil
}

// Translate translates text into target. A source of "" or "auto" lets the service detect it.
func (c *Client) Translate(ctx context.Context, text, source, target string) (*Result, error) {
	call := c.service.Translations.List([]string{text}, target).Format("text")
	if source != "" && source != autoDetect {
		call = call.Source(source)
	}

	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("google translate request failed: %w", err)
	}
	if len(resp.Translations) == 0 {
		return nil, ErrNoTranslation
	}

	first := resp.Translations[0]
	c.logger.Debug("Google translation completed", logging.Fields{
		"source":          source,
		"target":          target,
		"detected_source": first.DetectedSourceLanguage,
	})

	return &Result{
		Text:           html.UnescapeString(first.TranslatedText),
		DetectedSource: first.DetectedSourceLanguage,
	}, nil
}
