// Package translate normalizes recognized text into the working language before classification
package translate

import (
	"context"
	"strings"

	"github.com/FrenchMajesty/synapsecx/internal/logging"
)

// Language codes understood by every Translator
const (
	SourceAuto      = "auto"
	SourceMalayalam = "ml"
	TargetEnglish   = "en"
)

// MalayalamHint is the source hint that forces Malayalam as the translation source
const MalayalamHint = "Malayalam"

// Translator translates text from source to target. source may be SourceAuto.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// Gate routes text through a Translator on its way into the engine
type Gate struct {
	translator Translator
	logger     logging.Logger
}

// NewGate creates a Gate
func NewGate(translator Translator, logger logging.Logger) *Gate {
	return &Gate{
		translator: translator,
		logger:     logging.OrNop(logger),
	}
}

// ToWorkingLanguage translates text to English. Blank text is returned unchanged without calling
// the translator. When translation fails the original text is returned.
func (g *Gate) ToWorkingLanguage(ctx context.Context, text, sourceHint string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	source := SourceAuto
	if sourceHint == MalayalamHint {
		source = SourceMalayalam
	}

	translated, err := g.translator.Translate(ctx, text, source, TargetEnglish)
	if err != nil {
		g.logger.Warn("Translation failed, continuing with original text", logging.Fields{
			"source": source,
			"error":  err.Error(),
		})
		return text
	}

	g.logger.Info("English translation", logging.Fields{"text": translated})
	return translated
}
