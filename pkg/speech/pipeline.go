package speech

import (
	"context"
	"errors"

	"golang.org/x/text/language"

	"github.com/FrenchMajesty/synapsecx/internal/logging"
	"github.com/FrenchMajesty/synapsecx/pkg/audio"
	"github.com/FrenchMajesty/synapsecx/pkg/langid"
)

// ErrScriptMismatch marks a primary transcript that was not written in the expected script
var ErrScriptMismatch = errors.New("transcript is not in the expected script")

// ScriptChecker confirms that text is written in the script of a language
type ScriptChecker interface {
	Confirms(text string, want language.Tag) bool
}

// Pipeline runs the dual-hypothesis cascade over one capture
type Pipeline struct {
	source     Source
	recognizer Recognizer
	script     ScriptChecker
	logger     logging.Logger
}

// NewPipeline creates a pipeline. A nil script checker uses the langid script heuristic.
func NewPipeline(source Source, recognizer Recognizer, script ScriptChecker, logger logging.Logger) *Pipeline {
	if script == nil {
		script = langid.ScriptHeuristic{}
	}
	return &Pipeline{
		source:     source,
		recognizer: recognizer,
		script:     script,
		logger:     logging.OrNop(logger),
	}
}

// Run captures one utterance and resolves it to Malayalam, English or no speech. Recognition
// failures fall through to the next hypothesis and never surface as errors.
func (p *Pipeline) Run(ctx context.Context) Outcome {
	clip, err := p.source.Capture(ctx)
	if err != nil {
		p.logger.Debug("Capture produced no usable audio", logging.Fields{"error": err.Error()})
		return noSpeech(nil, err)
	}
	if clip.Empty() {
		p.logger.Debug("Capture produced no usable audio", logging.Fields{"error": audio.ErrEmptyCapture.Error()})
		return noSpeech(nil, audio.ErrEmptyCapture)
	}
	p.logger.Debug("Captured utterance", logging.Fields{"duration": clip.Duration().Seconds()})

	primary := p.tryPrimary(ctx, clip)
	if primary.Ok() {
		p.logger.Info("Detected Malayalam", logging.Fields{"text": primary.Text})
		return recognized(primary.Text, Malayalam, []Result{primary})
	}
	p.logger.Debug("Malayalam hypothesis rejected", logging.Fields{"reason": primary.Err.Error()})

	secondary := p.trySecondary(ctx, clip)
	if secondary.Ok() {
		p.logger.Info("Detected English", logging.Fields{"text": secondary.Text})
		return recognized(secondary.Text, English, []Result{primary, secondary})
	}
	p.logger.Debug("English hypothesis rejected", logging.Fields{"reason": secondary.Err.Error()})

	p.logger.Info("Could not identify the language or speech")
	return noSpeech([]Result{primary, secondary}, nil)
}

func (p *Pipeline) tryPrimary(ctx context.Context, clip *audio.Clip) Result {
	result := trimmed(p.recognizer.Recognize(ctx, clip, HintMalayalam))
	if !result.Ok() {
		return result
	}
	if !p.script.Confirms(result.Text, language.Malayalam) {
		return Result{Text: result.Text, Err: ErrScriptMismatch}
	}
	return result
}

func (p *Pipeline) trySecondary(ctx context.Context, clip *audio.Clip) Result {
	return trimmed(p.recognizer.Recognize(ctx, clip, HintEnglish))
}
