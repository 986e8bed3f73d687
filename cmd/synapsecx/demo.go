package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/FrenchMajesty/synapsecx"
)

// demoTexts is a quick self-test corpus covering each emotion and tone family
var demoTexts = []string{
	"I am extremely angry but yeah right, that's just great...",
	"Wow! I am so excited and thrilled!",
	"I feel sad and disappointed about this service.",
	"Thank you so much, I really appreciate it!",
	"I hate this! This is unacceptable and frustrating.",
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the sample sentences through the text analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := newAnalyzer(cmd.Context(), viper.GetViper(), false)
			if err != nil {
				return err
			}

			results := make([]synapsecx.TextAnalysis, 0, len(demoTexts))
			for _, text := range demoTexts {
				results = append(results, analyzer.AnalyzeText(cmd.Context(), text))
			}
			return writeOutput(cmd.OutOrStdout(), viper.GetString("output"), results)
		},
	}
}
