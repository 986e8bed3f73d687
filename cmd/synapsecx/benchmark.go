package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/FrenchMajesty/synapsecx/benchmark"
	"github.com/FrenchMajesty/synapsecx/internal/logging"
)

func newBenchmarkCmd() *cobra.Command {
	var (
		dataset string
		limit   int
		outDir  string
	)

	benchmarkCmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Evaluate the lexicons on a labelled CSV corpus",
		Long: `Benchmark runs every row of a CSV dataset through the conversation and text
analyses. The header must name a "text" column; "sentiment", "intent", "emotion"
and "tone" columns are scored when present. Metrics and per-row results are
written as JSON files to --out.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()
			logger := newLogger(v)

			items, err := benchmark.LoadDataset(dataset, limit)
			if err != nil {
				return err
			}
			logger.Info(fmt.Sprintf("Loaded %d texts from %s", len(items), dataset))

			analyzer, err := newAnalyzer(cmd.Context(), v, false)
			if err != nil {
				return err
			}

			metrics, results := benchmark.Run(cmd.Context(), analyzer, items)

			metricsFile, err := benchmark.SaveMetricsToFile(outDir, metrics)
			if err != nil {
				return fmt.Errorf("failed to save metrics: %w", err)
			}
			resultsFile, err := benchmark.SaveResultsToFile(outDir, results)
			if err != nil {
				return fmt.Errorf("failed to save results: %w", err)
			}
			logger.Info("Benchmark complete", logging.Fields{"metrics": metricsFile, "results": resultsFile})

			return writeOutput(cmd.OutOrStdout(), v.GetString("output"), summarize(metrics))
		},
	}

	benchmarkCmd.Flags().StringVar(&dataset, "dataset", "", "labelled CSV file")
	benchmarkCmd.Flags().IntVar(&limit, "limit", benchmark.MAX_DATASET_SIZE, "maximum number of rows to evaluate")
	benchmarkCmd.Flags().StringVar(&outDir, "out", ".", "directory for the metrics and results files")
	benchmarkCmd.MarkFlagRequired("dataset")

	return benchmarkCmd
}

// benchmarkSummary is the printed digest of a run; the full metrics go to file
type benchmarkSummary struct {
	Texts       int                `json:"texts" yaml:"texts"`
	Duration    string             `json:"duration" yaml:"duration"`
	Agreement   map[string]float64 `json:"agreement" yaml:"agreement"`
	MeanLatency string             `json:"mean_latency" yaml:"mean_latency"`
	P95Latency  string             `json:"p95_latency" yaml:"p95_latency"`
}

func summarize(metrics benchmark.BenchmarkMetrics) benchmarkSummary {
	agreement := make(map[string]float64, len(metrics.Agreement))
	for field, a := range metrics.Agreement {
		agreement[field] = a.Rate
	}
	return benchmarkSummary{
		Texts:       metrics.TotalTexts,
		Duration:    metrics.TotalDuration.String(),
		Agreement:   agreement,
		MeanLatency: metrics.Latency.Mean.String(),
		P95Latency:  metrics.Latency.P95.String(),
	}
}
