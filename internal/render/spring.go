package render

import (
	"github.com/charmbracelet/harmonica"

	"github.com/InfoInnovator/fourier-transform-visualization/internal/signal"
)

// SpringSeries eases a sample series toward a moving target with a
// damped spring per point, so plot updates glide instead of jumping.
type SpringSeries struct {
	spring harmonica.Spring
	target []signal.Sample
	pos    []float64
	vel    []float64
}

// NewSpringSeries creates a spring field stepped at fps.
func NewSpringSeries(fps int, frequency, damping float64) *SpringSeries {
	return &SpringSeries{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// SetTarget replaces the series the springs settle toward. A length
// change resets the field to the new targets immediately.
func (s *SpringSeries) SetTarget(series []signal.Sample) {
	s.target = series
	if len(s.pos) != len(series) {
		s.pos = make([]float64, len(series))
		s.vel = make([]float64, len(series))
		for i, smp := range series {
			s.pos[i] = smp.Y
		}
	}
}

// Step advances every spring one frame and returns the eased series.
func (s *SpringSeries) Step() []signal.Sample {
	out := make([]signal.Sample, len(s.target))
	for i, smp := range s.target {
		s.pos[i], s.vel[i] = s.spring.Update(s.pos[i], s.vel[i], smp.Y)
		out[i] = signal.Sample{X: smp.X, Y: s.pos[i]}
	}
	return out
}

// Settled reports whether every spring is close enough to its target to
// stop animating.
func (s *SpringSeries) Settled() bool {
	for i, smp := range s.target {
		d := s.pos[i] - smp.Y
		if d > 1e-3 || d < -1e-3 || s.vel[i] > 1e-3 || s.vel[i] < -1e-3 {
			return false
		}
	}
	return true
}
