package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// SaveMetricsToFile saves the metrics to a JSON file in dir and returns its path
func SaveMetricsToFile(dir string, metrics BenchmarkMetrics) (string, error) {
	return saveJSON(dir, "metrics", metrics)
}

// SaveResultsToFile saves the per-text results to a JSON file in dir and returns its path
func SaveResultsToFile(dir string, results []Result) (string, error) {
	return saveJSON(dir, "results", results)
}

func saveJSON(dir, prefix string, v any) (string, error) {
	timestamp := time.Now().Format("20060102_150405")
	random := uuid.New().String()[:8]
	filename := filepath.Join(dir, fmt.Sprintf("%s_%s_%s.json", prefix, timestamp, random))

	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return "", err
	}

	return filename, nil
}
