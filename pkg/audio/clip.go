// Package audio captures short utterances for speech recognition. Capture shells out to ffmpeg,
// calibrates a speech threshold against the leading ambient noise and trims the clip to the
// region that carries speech energy.
package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"time"
)

var (
	// ErrEmptyCapture is returned when the capture produced no samples at all
	ErrEmptyCapture = errors.New("audio capture produced no samples")
	// ErrNoSpeech is returned when no frame of the capture rises above the calibrated threshold
	ErrNoSpeech = errors.New("no speech detected in audio capture")
)

// Clip is mono PCM audio normalized to [-1, 1]
type Clip struct {
	PCM        []float64
	SampleRate int
}

// Duration of the clip
func (c *Clip) Duration() time.Duration {
	if c == nil || c.SampleRate <= 0 {
		return 0
	}
	return time.Duration(len(c.PCM)) * time.Second / time.Duration(c.SampleRate)
}

// Empty reports whether the clip carries no samples
func (c *Clip) Empty() bool {
	return c == nil || len(c.PCM) == 0
}

// Slice returns the samples in [start, end) as a new clip sharing the backing array
func (c *Clip) Slice(start, end int) *Clip {
	start = max(0, min(start, len(c.PCM)))
	end = max(start, min(end, len(c.PCM)))
	return &Clip{PCM: c.PCM[start:end], SampleRate: c.SampleRate}
}

// WAV encodes the clip as a 16-bit PCM mono RIFF/WAVE file
func (c *Clip) WAV() []byte {
	const (
		bitsPerSample = 16
		channels      = 1
		headerSize    = 44
	)

	dataSize := len(c.PCM) * bitsPerSample / 8
	buf := bytes.NewBuffer(make([]byte, 0, headerSize+dataSize))

	write := func(v any) { _ = binary.Write(buf, binary.LittleEndian, v) }

	buf.WriteString("RIFF")
	write(uint32(headerSize - 8 + dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	write(uint32(16))
	write(uint16(1)) // PCM
	write(uint16(channels))
	write(uint32(c.SampleRate))
	write(uint32(c.SampleRate * channels * bitsPerSample / 8))
	write(uint16(channels * bitsPerSample / 8))
	write(uint16(bitsPerSample))

	buf.WriteString("data")
	write(uint32(dataSize))
	for _, s := range c.PCM {
		write(toInt16(s))
	}

	return buf.Bytes()
}

// FromS16LE decodes raw signed 16-bit little-endian mono PCM. A trailing odd byte is dropped.
func FromS16LE(raw []byte, sampleRate int) *Clip {
	pcm := make([]float64, len(raw)/2)
	for i := range pcm {
		v := int16(binary.LittleEndian.Uint16(raw[2*i:]))
		pcm[i] = float64(v) / math.MaxInt16
	}
	return &Clip{PCM: pcm, SampleRate: sampleRate}
}

func toInt16(s float64) int16 {
	s = math.Max(-1, math.Min(1, s))
	return int16(math.Round(s * math.MaxInt16))
}
