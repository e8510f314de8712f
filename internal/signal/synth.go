package signal

// Sample is one plottable point of a series.
type Sample struct {
	X float64
	Y float64
}

// Synthesize samples the sum of components over [0, domainRange).
// Positions are i*step with step = domainRange/sampleCount, computed by
// multiplication so the realized length is exactly sampleCount and does
// not drift with accumulated rounding. An empty component list yields a
// flat zero line; sampleCount <= 0 or domainRange <= 0 yields nil.
func Synthesize(components []Component, sampleCount int, domainRange float64) []Sample {
	if sampleCount <= 0 || domainRange <= 0 {
		return nil
	}

	step := domainRange / float64(sampleCount)
	out := make([]Sample, sampleCount)
	for i := range out {
		x := float64(i) * step
		sum := 0.0
		for _, c := range components {
			sum += c.Eval(x)
		}
		out[i] = Sample{X: x, Y: sum}
	}
	return out
}
