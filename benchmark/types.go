package benchmark

import (
	"context"
	"time"

	"github.com/FrenchMajesty/synapsecx"
)

// Analyzer is the part of synapsecx.Analyzer the benchmark drives
type Analyzer interface {
	AnalyzeText(ctx context.Context, text string) synapsecx.TextAnalysis
	AnalyzeConversation(ctx context.Context, text string) synapsecx.ConversationAnalysis
}

// DatasetItem is one labelled row. Empty expectations are not scored.
type DatasetItem struct {
	Text              string
	ExpectedSentiment string
	ExpectedIntent    string
	ExpectedEmotion   string
	ExpectedTone      string
}

// Result is the analysis of one row
type Result struct {
	Text      string        `json:"text"`
	Sentiment string        `json:"sentiment"`
	Intent    string        `json:"intent"`
	Emotion   string        `json:"emotion"`
	Emotions  []string      `json:"emotions"`
	Tones     []string      `json:"tones"`
	Language  string        `json:"language"`
	Latency   time.Duration `json:"latency"`
}

// Agreement counts how many labelled rows the analyzer matched for one field
type Agreement struct {
	Labelled int     `json:"labelled"`
	Matched  int     `json:"matched"`
	Rate     float64 `json:"rate"`
}

// LatencyStats summarizes per-row processing time
type LatencyStats struct {
	Mean time.Duration `json:"mean"`
	P50  time.Duration `json:"p50"`
	P95  time.Duration `json:"p95"`
	Max  time.Duration `json:"max"`
}

type BenchmarkMetrics struct {
	// Overall metrics
	TotalDuration time.Duration `json:"total_duration"`
	TotalTexts    int           `json:"total_texts"`

	// Agreement with the dataset labels, keyed by field (sentiment, intent, emotion, tone)
	Agreement map[string]Agreement `json:"agreement"`

	// Distribution of predicted labels, keyed by field then label
	Distribution map[string]map[string]int `json:"distribution"`

	// Per-text metrics
	ProcessingTime []time.Duration `json:"processing_time"`
	Latency        LatencyStats    `json:"latency"`
}
