package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newListenCmd() *cobra.Command {
	listenCmd := &cobra.Command{
		Use:   "listen",
		Short: "Capture one utterance in English or Malayalam and classify it",
		Long: `Listen records a short utterance from the microphone (or --input file) through
ffmpeg, recognizes it as Malayalam or English, translates Malayalam to English and
classifies the result.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.GetViper()
			timeout := v.GetDuration("audio.calibration") + v.GetDuration("audio.duration") + time.Minute
			ctx, cancel := commandContext(cmd, timeout)
			defer cancel()

			analyzer, err := newAnalyzer(ctx, v, true)
			if err != nil {
				return err
			}

			result := analyzer.AnalyzeDualVoiceConversation(ctx)
			if err := writeOutput(cmd.OutOrStdout(), v.GetString("output"), result); err != nil {
				return err
			}
			if result.Failed() {
				return fmt.Errorf("voice analysis failed: %s", result.Error)
			}
			return nil
		},
	}

	listenCmd.Flags().String("input", "", "audio file to analyze instead of the microphone")
	listenCmd.Flags().String("device", "", "capture device (default depends on the platform)")
	listenCmd.Flags().String("format", "", "ffmpeg input format such as pulse, alsa, avfoundation or dshow")
	listenCmd.Flags().Duration("duration", 0, "how long to listen after calibration")
	listenCmd.Flags().String("recognizer", "", "speech recognizer provider: openai, gemini or groq")
	listenCmd.Flags().String("translator", "", "translation provider: google, openai or groq")

	viper.BindPFlag("audio.input", listenCmd.Flags().Lookup("input"))
	viper.BindPFlag("audio.device", listenCmd.Flags().Lookup("device"))
	viper.BindPFlag("audio.format", listenCmd.Flags().Lookup("format"))
	viper.BindPFlag("audio.duration", listenCmd.Flags().Lookup("duration"))
	viper.BindPFlag("recognizer.provider", listenCmd.Flags().Lookup("recognizer"))
	viper.BindPFlag("translator.provider", listenCmd.Flags().Lookup("translator"))

	return listenCmd
}
