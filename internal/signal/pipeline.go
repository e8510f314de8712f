package signal

import "math/cmplx"

// Result carries both series produced by one compute pass. Time is the
// synthesized signal; Spectrum pairs each FFT bin's real part with the
// corresponding time-axis position, which is how the plots share an x
// axis. Bins holds the full complex output for callers that want
// magnitudes instead.
type Result struct {
	Time     []Sample
	Spectrum []Sample
	Bins     []complex128
}

// Magnitudes returns the spectrum as |X_k| against the same x positions.
func (r Result) Magnitudes() []Sample {
	out := make([]Sample, len(r.Bins))
	for k, bin := range r.Bins {
		out[k] = Sample{X: r.Spectrum[k].X, Y: cmplx.Abs(bin)}
	}
	return out
}

// Compute runs the synthesize-promote-transform pipeline for one redraw.
// The component slice is only read. On ErrNotPowerOfTwo the time series
// is still returned so the caller can plot it alongside the error.
func Compute(components []Component, sampleCount int, domainRange float64) (Result, error) {
	time := Synthesize(components, sampleCount, domainRange)

	data := make([]complex128, len(time))
	for i, s := range time {
		data[i] = complex(s.Y, 0)
	}
	if err := FFT(data); err != nil {
		return Result{Time: time}, err
	}

	spectrum := make([]Sample, len(data))
	for k, bin := range data {
		spectrum[k] = Sample{X: time[k].X, Y: real(bin)}
	}
	return Result{Time: time, Spectrum: spectrum, Bins: data}, nil
}
