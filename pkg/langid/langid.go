// Package langid names the language of a piece of text.
//
// Identification is a cascade: the script heuristic answers for languages with their own
// writing system, a statistical detector handles the rest, and anything neither can place is
// reported as Unknown.
package langid

import (
	"context"

	"github.com/FrenchMajesty/synapsecx/internal/logging"
)

// Detector is a statistical language detector. It returns a language code and may fail.
type Detector interface {
	Detect(ctx context.Context, text string) (string, error)
}

// Identifier runs the identification cascade
type Identifier struct {
	script   ScriptHeuristic
	detector Detector
	logger   logging.Logger
}

// NewIdentifier builds an Identifier. A nil detector uses whatlanggo; a nil logger discards.
func NewIdentifier(detector Detector, logger logging.Logger) *Identifier {
	if detector == nil {
		detector = NewWhatlangDetector()
	}
	return &Identifier{
		detector: detector,
		logger:   logging.OrNop(logger),
	}
}

// Identify returns a human-readable language name for text. It never fails: detector errors
// end the cascade at Unknown.
func (id *Identifier) Identify(ctx context.Context, text string) string {
	if tag, ok := id.script.Detect(text); ok {
		return Name(tag)
	}

	code, err := id.detector.Detect(ctx, text)
	if err != nil {
		id.logger.Debug("statistical language detection failed", logging.Fields{"error": err.Error()})
		return Unknown
	}

	return NameForCode(code)
}
