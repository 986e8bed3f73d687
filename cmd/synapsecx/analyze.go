package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newAnalyzeCmd() *cobra.Command {
	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Classify text",
	}

	analyzeCmd.AddCommand(&cobra.Command{
		Use:   "text <text>",
		Short: "Rank emotions and tones and score sentiment",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := newAnalyzer(cmd.Context(), viper.GetViper(), false)
			if err != nil {
				return err
			}
			result := analyzer.AnalyzeText(cmd.Context(), strings.Join(args, " "))
			return writeOutput(cmd.OutOrStdout(), viper.GetString("output"), result)
		},
	})

	analyzeCmd.AddCommand(&cobra.Command{
		Use:   "conversation <text>",
		Short: "Identify the language and resolve sentiment, intent and emotion",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer, err := newAnalyzer(cmd.Context(), viper.GetViper(), false)
			if err != nil {
				return err
			}
			result := analyzer.AnalyzeConversation(cmd.Context(), strings.Join(args, " "))
			return writeOutput(cmd.OutOrStdout(), viper.GetString("output"), result)
		},
	})

	return analyzeCmd
}
