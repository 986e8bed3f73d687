package langid

import (
	"context"
	"errors"
	"fmt"

	"github.com/abadojack/whatlanggo"
)

// ErrUndetectable is returned when a detector cannot commit to any language
var ErrUndetectable = errors.New("language could not be detected")

// WhatlangDetector is the statistical fallback: trigram profiles from whatlanggo
type WhatlangDetector struct {
	// MinConfidence rejects detections below this confidence. Zero accepts any detection.
	MinConfidence float64
}

// NewWhatlangDetector returns a detector that accepts any detection whatlanggo makes
func NewWhatlangDetector() *WhatlangDetector {
	return &WhatlangDetector{}
}

// Detect returns the ISO 639-1 code of the most likely language of text
func (d *WhatlangDetector) Detect(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	info := whatlanggo.Detect(text)
	if info.Script == nil || info.Lang < 0 {
		return "", ErrUndetectable
	}
	if info.Confidence < d.MinConfidence {
		return "", fmt.Errorf("%w: confidence %.2f below %.2f", ErrUndetectable, info.Confidence, d.MinConfidence)
	}

	code := info.Lang.Iso6391()
	if code == "" {
		// languages without a two-letter code fall back to ISO 639-3
		code = info.Lang.Iso6393()
	}
	if code == "" {
		return "", ErrUndetectable
	}
	return code, nil
}
