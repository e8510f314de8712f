package signal

import "math"

// Kind selects the elementary periodic function of a component.
type Kind uint8

const (
	Sine Kind = iota
	Cosine
)

func (k Kind) String() string {
	switch k {
	case Sine:
		return "Sin"
	case Cosine:
		return "Cos"
	}
	return "unknown"
}

// Toggle returns the other kind. The set is closed, so this is the
// whole cycle.
func (k Kind) Toggle() Kind {
	if k == Sine {
		return Cosine
	}
	return Sine
}

// Component is one periodic term of a composed signal. Frequency scales
// the sampled position before evaluation (angular scaling, not Hz);
// Offset is added after amplitude scaling.
type Component struct {
	Kind      Kind
	Amplitude float64
	Frequency float64
	Offset    float64
}

// New returns a component with the default parameters a freshly added
// table row gets: a unit sine with no shift.
func New() Component {
	return Component{Kind: Sine, Amplitude: 1.0, Frequency: 1.0, Offset: 0.0}
}

// Eval evaluates the component at position x.
func (c Component) Eval(x float64) float64 {
	var f func(float64) float64
	switch c.Kind {
	case Cosine:
		f = math.Cos
	default:
		f = math.Sin
	}
	return f(x*c.Frequency)*c.Amplitude + c.Offset
}
