package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/FrenchMajesty/synapsecx"
	"github.com/FrenchMajesty/synapsecx/internal/logging"
	"github.com/FrenchMajesty/synapsecx/pkg/audio"
	"github.com/FrenchMajesty/synapsecx/pkg/lexicon"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "synapsecx",
	Short: "Lexical sentiment, emotion and intent analysis for customer conversations",
	Long: `SynapseCX classifies customer text and speech with auditable keyword lexicons.
Text is scored for sentiment, ranked emotions and tones, and intent. Speech is
recognized as Malayalam or English, translated to English when needed, and
classified the same way.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.synapsecx.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringP("output", "o", "json", "output format: json, yaml or text")
	rootCmd.PersistentFlags().String("lexicon", "", "YAML lexicon file overriding the built-in lexicons")
	rootCmd.PersistentFlags().Bool("dump-requests", false, "write provider requests and responses to debug_requests/")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("lexicon_file", rootCmd.PersistentFlags().Lookup("lexicon"))
	viper.BindPFlag("dump_requests", rootCmd.PersistentFlags().Lookup("dump-requests"))

	setDefaults(viper.GetViper())

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newListenCmd())
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newLexiconCmd())
	rootCmd.AddCommand(newBenchmarkCmd())
}

func setDefaults(v *viper.Viper) {
	audioDefaults := audio.DefaultConfig()

	v.SetDefault("output", "json")
	v.SetDefault("log.level", "info")
	v.SetDefault("recognizer.provider", synapsecx.DefaultRecognizerProvider)
	v.SetDefault("translator.provider", synapsecx.DefaultTranslatorProvider)
	v.SetDefault("audio.format", audioDefaults.Format)
	v.SetDefault("audio.device", audioDefaults.Device)
	v.SetDefault("audio.sample_rate", audioDefaults.SampleRate)
	v.SetDefault("audio.calibration", audioDefaults.Calibration)
	v.SetDefault("audio.duration", audioDefaults.Duration)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".synapsecx")
	}

	viper.SetEnvPrefix("SYNAPSECX")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("debug") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// newLogger logs to stderr so stdout carries only command output
func newLogger(v *viper.Viper) logging.Logger {
	logger := logging.NewLogger(os.Stderr, os.Stderr, term.IsTerminal(int(os.Stderr.Fd())))
	logger.SetLevel(logging.ParseLevel(v.GetString("log.level")))
	if v.GetBool("debug") {
		logger.SetLevel(logging.DebugLevel)
	}
	return logger
}

func loadLexicons(v *viper.Viper) (lexicon.Set, error) {
	path := v.GetString("lexicon_file")
	if path == "" {
		return lexicon.Default(), nil
	}
	return lexicon.Load(path)
}

// analyzerConfig builds the analyzer configuration from viper. Text-only commands pass
// voice=false so no provider credentials are required.
func analyzerConfig(v *viper.Viper, logger logging.Logger, voice bool) (synapsecx.Config, error) {
	lexicons, err := loadLexicons(v)
	if err != nil {
		return synapsecx.Config{}, err
	}

	cfg := synapsecx.Config{
		Lexicons:     lexicons,
		DisableVoice: !voice,
		Logger:       logger,
	}
	if !voice {
		return cfg, nil
	}

	cfg.RecognizerProvider = v.GetString("recognizer.provider")
	cfg.RecognizerModel = v.GetString("recognizer.model")
	cfg.TranslatorProvider = v.GetString("translator.provider")
	cfg.TranslatorModel = v.GetString("translator.model")
	cfg.DumpRequests = v.GetBool("dump_requests")

	cfg.Audio = audio.DefaultConfig()
	cfg.Audio.Format = v.GetString("audio.format")
	cfg.Audio.Device = v.GetString("audio.device")
	cfg.Audio.InputFile = v.GetString("audio.input")
	cfg.Audio.SampleRate = v.GetInt("audio.sample_rate")
	cfg.Audio.Calibration = v.GetDuration("audio.calibration")
	cfg.Audio.Duration = v.GetDuration("audio.duration")
	if ffmpeg := v.GetString("audio.ffmpeg"); ffmpeg != "" {
		cfg.Audio.FFmpegPath = ffmpeg
	}

	return cfg, nil
}

func newAnalyzer(ctx context.Context, v *viper.Viper, voice bool) (*synapsecx.Analyzer, error) {
	logger := newLogger(v)
	cfg, err := analyzerConfig(v, logger, voice)
	if err != nil {
		return nil, err
	}
	return synapsecx.NewAnalyzer(ctx, cfg)
}

// commandContext bounds a command by timeout when it is positive
func commandContext(cmd *cobra.Command, timeout time.Duration) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
