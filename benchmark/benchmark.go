// Package benchmark evaluates the lexicons against a labelled corpus: agreement per field,
// predicted label distributions and per-text latency.
package benchmark

import (
	"context"
	"slices"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Scored fields
const (
	FieldSentiment = "sentiment"
	FieldIntent    = "intent"
	FieldEmotion   = "emotion"
	FieldTone      = "tone"
)

// Run analyzes every item and scores the predictions. Sentiment, intent and emotion come from
// the conversation analysis; tone is the top-ranked tone of the rich analysis.
func Run(ctx context.Context, analyzer Analyzer, dataset []DatasetItem) (BenchmarkMetrics, []Result) {
	metrics := BenchmarkMetrics{
		TotalTexts:   len(dataset),
		Agreement:    make(map[string]Agreement),
		Distribution: make(map[string]map[string]int),
	}
	results := make([]Result, 0, len(dataset))
	startTime := time.Now()

	for _, item := range dataset {
		if ctx.Err() != nil {
			break
		}

		itemStartTime := time.Now()
		conversation := analyzer.AnalyzeConversation(ctx, item.Text)
		rich := analyzer.AnalyzeText(ctx, item.Text)
		latency := time.Since(itemStartTime)

		topTone := ""
		if len(rich.Tones) > 0 {
			topTone = rich.Tones[0]
		}

		metrics.ProcessingTime = append(metrics.ProcessingTime, latency)
		metrics.score(FieldSentiment, item.ExpectedSentiment, conversation.Sentiment)
		metrics.score(FieldIntent, item.ExpectedIntent, conversation.Intent)
		metrics.score(FieldEmotion, item.ExpectedEmotion, conversation.Emotion)
		metrics.score(FieldTone, item.ExpectedTone, topTone)

		results = append(results, Result{
			Text:      item.Text,
			Sentiment: conversation.Sentiment,
			Intent:    conversation.Intent,
			Emotion:   conversation.Emotion,
			Emotions:  rich.Emotions,
			Tones:     rich.Tones,
			Language:  conversation.Language,
			Latency:   latency,
		})
	}

	metrics.TotalDuration = time.Since(startTime)
	metrics.Latency = latencyStats(metrics.ProcessingTime)

	for field, a := range metrics.Agreement {
		if a.Labelled > 0 {
			a.Rate = float64(a.Matched) / float64(a.Labelled)
		}
		metrics.Agreement[field] = a
	}

	return metrics, results
}

func (m *BenchmarkMetrics) score(field, expected, predicted string) {
	if m.Distribution[field] == nil {
		m.Distribution[field] = make(map[string]int)
	}
	m.Distribution[field][predicted]++

	if expected == "" {
		return
	}
	a := m.Agreement[field]
	a.Labelled++
	if expected == predicted {
		a.Matched++
	}
	m.Agreement[field] = a
}

func latencyStats(times []time.Duration) LatencyStats {
	if len(times) == 0 {
		return LatencyStats{}
	}

	sorted := make([]float64, len(times))
	for i, d := range times {
		sorted[i] = float64(d)
	}
	slices.Sort(sorted)

	return LatencyStats{
		Mean: time.Duration(stat.Mean(sorted, nil)),
		P50:  time.Duration(stat.Quantile(0.5, stat.Empirical, sorted, nil)),
		P95:  time.Duration(stat.Quantile(0.95, stat.Empirical, sorted, nil)),
		Max:  time.Duration(sorted[len(sorted)-1]),
	}
}
