package audio

import (
	"context"
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = 16000

func tone(d time.Duration, amplitude float64) []float64 {
	n := int(d.Seconds() * testRate)
	out := make([]float64, n)
	for i := range out {
		out[i] = amplitude * math.Sin(2*math.Pi*440*float64(i)/testRate)
	}
	return out
}

func toS16LE(pcm []float64) []byte {
	raw := make([]byte, 2*len(pcm))
	for i, s := range pcm {
		binary.LittleEndian.PutUint16(raw[2*i:], uint16(toInt16(s)))
	}
	return raw
}

func concat(parts ...[]float64) []float64 {
	var out []float64
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestClip_WAVHeader(t *testing.T) {
	clip := &Clip{PCM: []float64{0, 0.5, -0.5, 1}, SampleRate: testRate}
	wav := clip.WAV()

	require.Len(t, wav, 44+8)
	assert.Equal(t, "RIFF", string(wav[0:4]))
	assert.Equal(t, "WAVE", string(wav[8:12]))
	assert.Equal(t, uint32(36+8), binary.LittleEndian.Uint32(wav[4:8]))
	assert.Equal(t, uint32(testRate), binary.LittleEndian.Uint32(wav[24:28]))
	assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(wav[34:36]))
	assert.Equal(t, "data", string(wav[36:40]))
	assert.Equal(t, uint32(8), binary.LittleEndian.Uint32(wav[40:44]))
	assert.Equal(t, int16(math.MaxInt16), int16(binary.LittleEndian.Uint16(wav[50:52])))
}

func TestFromS16LE_RoundTrip(t *testing.T) {
	pcm := []float64{0, 0.25, -0.25, 0.999}
	clip := FromS16LE(toS16LE(pcm), testRate)

	require.Len(t, clip.PCM, len(pcm))
	for i := range pcm {
		assert.InDelta(t, pcm[i], clip.PCM[i], 1e-4)
	}
}

func TestFromS16LE_DropsOddByte(t *testing.T) {
	clip := FromS16LE([]byte{0, 0, 1}, testRate)
	assert.Len(t, clip.PCM, 1)
}

func TestClip_Duration(t *testing.T) {
	clip := &Clip{PCM: make([]float64, testRate/2), SampleRate: testRate}
	assert.Equal(t, 500*time.Millisecond, clip.Duration())

	var nilClip *Clip
	assert.Zero(t, nilClip.Duration())
	assert.True(t, nilClip.Empty())
}

func TestFrameRMS(t *testing.T) {
	clip := &Clip{PCM: []float64{1, -1, 1, -1, 0.5}, SampleRate: testRate}
	rms := FrameRMS(clip, 2)

	require.Len(t, rms, 3)
	assert.InDelta(t, 1.0, rms[0], 1e-9)
	assert.InDelta(t, 1.0, rms[1], 1e-9)
	assert.InDelta(t, 0.5, rms[2], 1e-9)
	assert.Nil(t, FrameRMS(&Clip{}, 2))
}

func TestEnergyGate_Calibrate(t *testing.T) {
	gate := DefaultEnergyGate()

	t.Run("quiet room uses the minimum threshold", func(t *testing.T) {
		profile := gate.Calibrate(&Clip{PCM: make([]float64, testRate), SampleRate: testRate})
		assert.Zero(t, profile.Floor)
		assert.Equal(t, gate.MinThreshold, profile.Threshold)
	})

	t.Run("noisy room raises the threshold", func(t *testing.T) {
		profile := gate.Calibrate(&Clip{PCM: tone(time.Second, 0.1), SampleRate: testRate})
		assert.InDelta(t, 0.1/math.Sqrt2, profile.Floor, 1e-3)
		assert.Greater(t, profile.Threshold, profile.Floor)
	})

	t.Run("empty ambient sample", func(t *testing.T) {
		profile := gate.Calibrate(&Clip{SampleRate: testRate})
		assert.Equal(t, gate.MinThreshold, profile.Threshold)
	})
}

func TestEnergyGate_Trim(t *testing.T) {
	gate := DefaultEnergyGate()
	gate.Padding = 0
	profile := NoiseProfile{Threshold: 0.05}

	clip := &Clip{
		PCM:        concat(make([]float64, testRate/2), tone(time.Second, 0.5), make([]float64, testRate/2)),
		SampleRate: testRate,
	}

	trimmed, err := gate.Trim(clip, profile)
	require.NoError(t, err)
	assert.InDelta(t, time.Second.Seconds(), trimmed.Duration().Seconds(), 0.05)

	_, err = gate.Trim(&Clip{PCM: make([]float64, testRate), SampleRate: testRate}, profile)
	assert.ErrorIs(t, err, ErrNoSpeech)

	_, err = gate.Trim(&Clip{SampleRate: testRate}, profile)
	assert.ErrorIs(t, err, ErrEmptyCapture)
}

func fakeRunner(pcm []float64, err error, gotArgs *[]string) Runner {
	return func(ctx context.Context, name string, args ...string) ([]byte, error) {
		if gotArgs != nil {
			*gotArgs = append([]string{name}, args...)
		}
		if err != nil {
			return nil, err
		}
		return toS16LE(pcm), nil
	}
}

func TestCommandSource_Capture(t *testing.T) {
	config := DefaultConfig()
	config.Format, config.Device = "pulse", "default"

	t.Run("speech after ambient noise", func(t *testing.T) {
		var args []string
		pcm := concat(tone(time.Second, 0.01), tone(2*time.Second, 0.4))
		source := NewCommandSource(config, nil).WithRunner(fakeRunner(pcm, nil, &args))

		clip, err := source.Capture(context.Background())
		require.NoError(t, err)
		assert.InDelta(t, 2.0, clip.Duration().Seconds(), 0.05)

		joined := strings.Join(args, " ")
		assert.Contains(t, joined, "ffmpeg")
		assert.Contains(t, joined, "-f pulse -i default")
		assert.Contains(t, joined, "-t 7.000")
		assert.Contains(t, joined, "-ar 16000")
		assert.Contains(t, joined, "-f s16le pipe:1")
	})

	t.Run("silence", func(t *testing.T) {
		pcm := make([]float64, 3*testRate)
		source := NewCommandSource(config, nil).WithRunner(fakeRunner(pcm, nil, nil))

		_, err := source.Capture(context.Background())
		assert.ErrorIs(t, err, ErrNoSpeech)
	})

	t.Run("no output", func(t *testing.T) {
		source := NewCommandSource(config, nil).WithRunner(fakeRunner(nil, nil, nil))

		_, err := source.Capture(context.Background())
		assert.ErrorIs(t, err, ErrEmptyCapture)
	})

	t.Run("ffmpeg failure is wrapped", func(t *testing.T) {
		boom := errors.New("device busy")
		source := NewCommandSource(config, nil).WithRunner(fakeRunner(nil, boom, nil))

		_, err := source.Capture(context.Background())
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "ffmpeg capture failed")
	})

	t.Run("input file replaces the device", func(t *testing.T) {
		var args []string
		fileConfig := config
		fileConfig.InputFile = "call.wav"
		pcm := concat(make([]float64, testRate), tone(time.Second, 0.3))
		source := NewCommandSource(fileConfig, nil).WithRunner(fakeRunner(pcm, nil, &args))

		_, err := source.Capture(context.Background())
		require.NoError(t, err)
		assert.Contains(t, strings.Join(args, " "), "-i call.wav")
		assert.NotContains(t, strings.Join(args, " "), "pulse")
	})
}

func TestNewCommandSource_AppliesDefaults(t *testing.T) {
	source := NewCommandSource(Config{Device: "hw:1", Format: "alsa"}, nil)
	config := source.Config()

	assert.Equal(t, "ffmpeg", config.FFmpegPath)
	assert.Equal(t, "hw:1", config.Device)
	assert.Equal(t, 16000, config.SampleRate)
	assert.Equal(t, 6*time.Second, config.Duration)
	assert.Equal(t, DefaultEnergyGate().Ratio, config.Energy.Ratio)
}
