package audio

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// EnergyGate controls how the speech threshold is derived from ambient noise
type EnergyGate struct {
	// Frame is the analysis window for energy measurements
	Frame time.Duration
	// Ratio multiplies the ambient noise floor to get the speech threshold
	Ratio float64
	// MinThreshold is the lowest threshold ever used, in normalized RMS
	MinThreshold float64
	// Padding is kept around the detected speech region when trimming
	Padding time.Duration
}

// DefaultEnergyGate returns the gate used by DefaultConfig
func DefaultEnergyGate() EnergyGate {
	return EnergyGate{
		Frame:        20 * time.Millisecond,
		Ratio:        1.5,
		MinThreshold: 0.01,
		Padding:      200 * time.Millisecond,
	}
}

// NoiseProfile is the outcome of ambient calibration
type NoiseProfile struct {
	// Floor is the mean frame RMS of the ambient sample
	Floor float64
	// Spread is the standard deviation of the ambient frame RMS values
	Spread float64
	// Threshold is the RMS a frame must exceed to count as speech
	Threshold float64
}

// Calibrate measures the ambient noise in clip and derives the speech threshold
func (g EnergyGate) Calibrate(ambient *Clip) NoiseProfile {
	energies := FrameRMS(ambient, g.frameSize(ambient.SampleRate))
	if len(energies) == 0 {
		return NoiseProfile{Threshold: g.MinThreshold}
	}

	floor, spread := stat.MeanStdDev(energies, nil)
	if len(energies) < 2 {
		spread = 0
	}
	return NoiseProfile{
		Floor:     floor,
		Spread:    spread,
		Threshold: math.Max(g.MinThreshold, (floor+spread)*g.Ratio),
	}
}

// Trim cuts clip down to the frames above the profile threshold, plus padding on both sides.
// It returns ErrEmptyCapture for an empty clip and ErrNoSpeech when no frame qualifies.
func (g EnergyGate) Trim(clip *Clip, profile NoiseProfile) (*Clip, error) {
	if clip.Empty() {
		return nil, ErrEmptyCapture
	}

	size := g.frameSize(clip.SampleRate)
	energies := FrameRMS(clip, size)

	first, last := -1, -1
	for i, e := range energies {
		if e > profile.Threshold {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return nil, ErrNoSpeech
	}

	pad := int(g.Padding.Seconds() * float64(clip.SampleRate))
	return clip.Slice(first*size-pad, (last+1)*size+pad), nil
}

func (g EnergyGate) frameSize(sampleRate int) int {
	return max(1, int(g.Frame.Seconds()*float64(sampleRate)))
}

// FrameRMS splits clip into consecutive frames of size samples and returns the RMS of each.
// A trailing partial frame is measured on its own.
func FrameRMS(clip *Clip, size int) []float64 {
	if clip.Empty() || size <= 0 {
		return nil
	}

	out := make([]float64, 0, (len(clip.PCM)+size-1)/size)
	for start := 0; start < len(clip.PCM); start += size {
		frame := clip.PCM[start:min(start+size, len(clip.PCM))]
		out = append(out, math.Sqrt(floats.Dot(frame, frame)/float64(len(frame))))
	}
	return out
}
