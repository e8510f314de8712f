package audio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/InfoInnovator/fourier-transform-visualization/internal/signal"
)

const (
	// SampleRate is the fixed output rate for audition and export.
	SampleRate = 44100

	channelCount = 2
	bitDepth     = 16

	// auditionBaseHz maps component frequency 1.0 onto a 110 Hz
	// fundamental, so the default unit sine is an audible A2.
	auditionBaseHz = 110.0

	// peakTarget leaves headroom below full scale after normalization.
	peakTarget = 0.8
)

// RenderPCM evaluates the composed signal at audio rate for the given
// duration and returns interleaved stereo 16-bit samples, peak
// normalized. A signal that is silent (or all non-finite) renders as
// silence.
func RenderPCM(components []signal.Component, d time.Duration) []int16 {
	frames := int(float64(SampleRate) * d.Seconds())
	if frames <= 0 {
		return nil
	}

	mono := make([]float64, frames)
	peak := 0.0
	for i := range mono {
		t := float64(i) / SampleRate
		x := 2 * math.Pi * auditionBaseHz * t
		sum := 0.0
		for _, c := range components {
			sum += c.Eval(x)
		}
		if math.IsNaN(sum) || math.IsInf(sum, 0) {
			sum = 0
		}
		mono[i] = sum
		if a := math.Abs(sum); a > peak {
			peak = a
		}
	}

	gain := 0.0
	if peak > 0 {
		gain = peakTarget / peak
	}

	pcm := make([]int16, frames*channelCount)
	for i, v := range mono {
		s := int16(v * gain * 32767)
		pcm[i*2] = s
		pcm[i*2+1] = s
	}
	return pcm
}

// pcmBytes converts interleaved int16 samples to the little-endian byte
// stream the audio device consumes.
func pcmBytes(pcm []int16) []byte {
	raw := make([]byte, len(pcm)*2)
	for i, s := range pcm {
		binary.LittleEndian.PutUint16(raw[i*2:], uint16(s))
	}
	return raw
}
