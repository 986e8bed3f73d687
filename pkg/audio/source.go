package audio

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/FrenchMajesty/synapsecx/internal/logging"
)

// Config holds capture configuration
type Config struct {
	// FFmpegPath is the ffmpeg binary, looked up in PATH by default
	FFmpegPath string
	// Format is the ffmpeg input device format (pulse, alsa, avfoundation, dshow)
	Format string
	// Device is the capture device name for Format
	Device string
	// InputFile, when set, replaces the live device with a recorded file
	InputFile string
	// SampleRate of the captured clip
	SampleRate int
	// Calibration is how much leading audio is treated as ambient noise
	Calibration time.Duration
	// Duration is how long to listen after calibration
	Duration time.Duration
	// Timeout bounds one ffmpeg invocation on top of the capture length
	Timeout time.Duration
	// Energy controls threshold derivation and trimming
	Energy EnergyGate
}

// DefaultConfig returns a configuration for the platform's default microphone
func DefaultConfig() Config {
	format, device := defaultDevice()
	return Config{
		FFmpegPath:  "ffmpeg",
		Format:      format,
		Device:      device,
		SampleRate:  16000,
		Calibration: time.Second,
		Duration:    6 * time.Second,
		Timeout:     10 * time.Second,
		Energy:      DefaultEnergyGate(),
	}
}

func defaultDevice() (string, string) {
	switch runtime.GOOS {
	case "darwin":
		return "avfoundation", ":0"
	case "windows":
		return "dshow", "audio=default"
	default:
		return "pulse", "default"
	}
}

func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.FFmpegPath == "" {
		c.FFmpegPath = def.FFmpegPath
	}
	if c.Format == "" && c.Device == "" {
		c.Format, c.Device = def.Format, def.Device
	}
	if c.SampleRate <= 0 {
		c.SampleRate = def.SampleRate
	}
	if c.Calibration < 0 {
		c.Calibration = 0
	}
	if c.Duration <= 0 {
		c.Duration = def.Duration
	}
	if c.Timeout <= 0 {
		c.Timeout = def.Timeout
	}
	if c.Energy.Frame <= 0 {
		c.Energy.Frame = def.Energy.Frame
	}
	if c.Energy.Ratio <= 0 {
		c.Energy.Ratio = def.Energy.Ratio
	}
	if c.Energy.MinThreshold <= 0 {
		c.Energy.MinThreshold = def.Energy.MinThreshold
	}
}

// Runner executes a command and returns its stdout
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// CommandSource captures one utterance per call by running ffmpeg
type CommandSource struct {
	config Config
	run    Runner
	logger logging.Logger
}

// NewCommandSource creates a source for config. Zero fields take their DefaultConfig values.
func NewCommandSource(config Config, logger logging.Logger) *CommandSource {
	config.applyDefaults()
	return &CommandSource{
		config: config,
		run:    runCommand,
		logger: logging.OrNop(logger),
	}
}

// WithRunner replaces the command runner, used to capture from something other than ffmpeg
func (s *CommandSource) WithRunner(run Runner) *CommandSource {
	s.run = run
	return s
}

// Config returns the effective configuration
func (s *CommandSource) Config() Config {
	return s.config
}

// Capture records calibration plus listening time, derives the speech threshold from the leading
// ambient audio and returns the trimmed utterance.
func (s *CommandSource) Capture(ctx context.Context) (*Clip, error) {
	if s.config.InputFile == "" {
		s.logger.Info("Listening (speak in English or Malayalam)...", logging.Fields{
			"device":   s.config.Device,
			"duration": s.config.Duration.String(),
		})
	}

	args := s.args()
	s.logger.Debug("Running ffmpeg capture", logging.Fields{
		"command": fmt.Sprintf("%s %s", s.config.FFmpegPath, strings.Join(args, " ")),
	})

	total := s.config.Calibration + s.config.Duration
	runCtx, cancel := context.WithTimeout(ctx, total+s.config.Timeout)
	defer cancel()

	start := time.Now()
	raw, err := s.run(runCtx, s.config.FFmpegPath, args...)
	if err != nil {
		return nil, fmt.Errorf("ffmpeg capture failed: %w", err)
	}

	clip := FromS16LE(raw, s.config.SampleRate)
	s.logger.Debug("Capture completed", logging.Fields{
		"samples":      len(clip.PCM),
		"duration":     clip.Duration().Seconds(),
		"capture_time": time.Since(start).Seconds(),
	})

	return s.Process(clip)
}

// Process splits the leading calibration window off clip, calibrates against it and trims the rest
func (s *CommandSource) Process(clip *Clip) (*Clip, error) {
	if clip.Empty() {
		return nil, ErrEmptyCapture
	}

	split := int(s.config.Calibration.Seconds() * float64(clip.SampleRate))
	if split >= len(clip.PCM) {
		return nil, ErrNoSpeech
	}

	profile := s.config.Energy.Calibrate(clip.Slice(0, split))
	s.logger.Debug("Calibrated ambient noise", logging.Fields{
		"noise_floor": profile.Floor,
		"threshold":   profile.Threshold,
	})

	return s.config.Energy.Trim(clip.Slice(split, len(clip.PCM)), profile)
}

func (s *CommandSource) args() []string {
	args := []string{"-hide_banner", "-loglevel", "error", "-nostdin"}
	if s.config.InputFile != "" {
		args = append(args, "-i", s.config.InputFile)
	} else {
		args = append(args, "-f", s.config.Format, "-i", s.config.Device)
	}

	total := s.config.Calibration + s.config.Duration
	return append(args,
		"-t", strconv.FormatFloat(total.Seconds(), 'f', 3, 64),
		"-vn",
		"-ac", "1",
		"-ar", strconv.Itoa(s.config.SampleRate),
		"-f", "s16le",
		"pipe:1",
	)
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	output, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%w, stderr: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, err
	}
	return output, nil
}
