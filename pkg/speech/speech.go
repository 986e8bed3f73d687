// Package speech turns one captured utterance into text in one of two candidate languages.
//
// The utterance is captured once and recognized up to twice: first under the Malayalam hint,
// accepted only if the transcript is actually written in Malayalam script, then under the
// English hint, accepted if the transcript is non-empty. Recognizers routinely transliterate
// English speech when given a Malayalam hint, which is what the script check rejects.
package speech

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/text/language"

	"github.com/FrenchMajesty/synapsecx/pkg/audio"
)

// Recognition hints passed to the recognizer
const (
	HintMalayalam = "ml-IN"
	HintEnglish   = "en-IN"
)

// ErrEmptyTranscript is returned when a recognizer produced only whitespace
var ErrEmptyTranscript = errors.New("recognizer returned an empty transcript")

// Hypothesis is the language an utterance was recognized in
type Hypothesis int

const (
	Unknown Hypothesis = iota
	Malayalam
	English
)

// String returns the display name used in analysis results
func (h Hypothesis) String() string {
	switch h {
	case Malayalam:
		return "Malayalam"
	case English:
		return "English"
	default:
		return "Unknown"
	}
}

// Tag returns the language tag of the hypothesis
func (h Hypothesis) Tag() language.Tag {
	switch h {
	case Malayalam:
		return language.Malayalam
	case English:
		return language.English
	default:
		return language.Und
	}
}

// Source captures one utterance
type Source interface {
	Capture(ctx context.Context) (*audio.Clip, error)
}

// Recognizer transcribes a clip under a BCP-47 language hint
type Recognizer interface {
	Recognize(ctx context.Context, clip *audio.Clip, hint string) (string, error)
}

// Result is the outcome of one recognition attempt
type Result struct {
	Text string
	Err  error
}

// Ok reports whether the attempt produced text
func (r Result) Ok() bool {
	return r.Err == nil
}

// Outcome is the pipeline's answer for one utterance
type Outcome struct {
	Recognized bool
	Text       string
	Language   Hypothesis
	// Attempts holds the primary and, when it ran, the secondary recognition result
	Attempts []Result
	// CaptureErr is set when the capture itself failed
	CaptureErr error
}

// NoSpeech reports whether neither hypothesis produced accepted text
func (o Outcome) NoSpeech() bool {
	return !o.Recognized
}

func recognized(text string, lang Hypothesis, attempts []Result) Outcome {
	return Outcome{Recognized: true, Text: text, Language: lang, Attempts: attempts}
}

func noSpeech(attempts []Result, captureErr error) Outcome {
	return Outcome{Language: Unknown, Attempts: attempts, CaptureErr: captureErr}
}

func trimmed(text string, err error) Result {
	if err != nil {
		return Result{Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return Result{Err: ErrEmptyTranscript}
	}
	return Result{Text: text}
}
