package benchmark

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

const MAX_DATASET_SIZE = 500

// LoadDataset loads a labelled CSV. The header names the columns: "text" is required,
// "sentiment", "intent", "emotion" and "tone" are optional expectations. A limit of zero or
// less caps the dataset at MAX_DATASET_SIZE rows.
func LoadDataset(path string, limit int) ([]DatasetItem, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer file.Close()

	return ReadDataset(file, limit)
}

// ReadDataset parses a labelled CSV from r. See LoadDataset for the format.
func ReadDataset(r io.Reader, limit int) ([]DatasetItem, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("dataset file must have at least a header and one row")
	}

	columns := make(map[string]int)
	for i, name := range records[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["text"]; !ok {
		return nil, fmt.Errorf("dataset header has no text column")
	}

	field := func(record []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	// Skip header row (index 0), parse data rows
	dataset := make([]DatasetItem, 0, len(records)-1)
	for _, record := range records[1:] {
		text := field(record, "text")
		if text == "" {
			continue // Skip rows without text
		}
		dataset = append(dataset, DatasetItem{
			Text:              text,
			ExpectedSentiment: strings.ToLower(field(record, "sentiment")),
			ExpectedIntent:    strings.ToLower(field(record, "intent")),
			ExpectedEmotion:   strings.ToLower(field(record, "emotion")),
			ExpectedTone:      strings.ToLower(field(record, "tone")),
		})
	}

	return trimDataset(dataset, limit), nil
}

// trimDataset trims the dataset to the specified limit
func trimDataset(dataset []DatasetItem, limit int) []DatasetItem {
	if limit <= 0 {
		limit = MAX_DATASET_SIZE
	}
	if len(dataset) > limit {
		return dataset[:limit]
	}
	return dataset
}
