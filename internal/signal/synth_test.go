package signal

import (
	"math"
	"testing"
)

func TestSynthesizeLength(t *testing.T) {
	got := Synthesize(nil, 1000, 3.14)
	if len(got) != 999 && len(got) != 1000 {
		t.Fatalf("expected 999 or 1000 samples, got %d", len(got))
	}
	// Deterministic position generation pins it to exactly the count.
	if len(got) != 1000 {
		t.Errorf("expected exactly 1000 samples, got %d", len(got))
	}
	for i, s := range got {
		if s.X >= 3.14 {
			t.Fatalf("sample %d position %v outside [0, 3.14)", i, s.X)
		}
	}
}

func TestSynthesizeEmptyComponents(t *testing.T) {
	for _, s := range Synthesize(nil, 64, 2.0) {
		if s.Y != 0 {
			t.Fatalf("empty component list should synthesize zeros, got %v at x=%v", s.Y, s.X)
		}
	}
}

func TestSynthesizeInvalidParams(t *testing.T) {
	cases := []struct {
		name  string
		count int
		rng   float64
	}{
		{"zero count", 0, 3.14},
		{"negative count", -5, 3.14},
		{"zero range", 64, 0},
		{"negative range", 64, -1.5},
	}
	comps := []Component{New()}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Synthesize(comps, tc.count, tc.rng); got != nil {
				t.Errorf("expected nil, got %d samples", len(got))
			}
		})
	}
}

func TestSynthesizeSingleSine(t *testing.T) {
	comps := []Component{{Kind: Sine, Amplitude: 2.0, Frequency: 3.0, Offset: 0.5}}
	got := Synthesize(comps, 128, 2.0)
	if len(got) != 128 {
		t.Fatalf("expected 128 samples, got %d", len(got))
	}
	for i, s := range got {
		want := 2.0*math.Sin(s.X*3.0) + 0.5
		if math.Abs(s.Y-want) > 1e-12 {
			t.Fatalf("sample %d: got %v, want %v", i, s.Y, want)
		}
	}
}

func TestSynthesizeCosineDispatch(t *testing.T) {
	comps := []Component{{Kind: Cosine, Amplitude: 1.0, Frequency: 1.0}}
	got := Synthesize(comps, 16, 1.0)
	if got[0].Y != 1.0 {
		t.Errorf("cos(0) should be 1, got %v", got[0].Y)
	}
}

func TestSynthesizeSuperposition(t *testing.T) {
	a := Component{Kind: Sine, Amplitude: 1.5, Frequency: 2.0, Offset: 0.25}
	b := Component{Kind: Cosine, Amplitude: 0.75, Frequency: 5.0, Offset: -1.0}

	onlyA := Synthesize([]Component{a}, 256, 3.14)
	onlyB := Synthesize([]Component{b}, 256, 3.14)
	both := Synthesize([]Component{a, b}, 256, 3.14)

	for i := range both {
		want := onlyA[i].Y + onlyB[i].Y
		if math.Abs(both[i].Y-want) > 1e-12 {
			t.Fatalf("superposition broken at sample %d: got %v, want %v", i, both[i].Y, want)
		}
	}
}

func TestComponentDefaults(t *testing.T) {
	c := New()
	if c.Kind != Sine || c.Amplitude != 1.0 || c.Frequency != 1.0 || c.Offset != 0.0 {
		t.Errorf("unexpected defaults: %+v", c)
	}
}

func TestKindString(t *testing.T) {
	if Sine.String() != "Sin" || Cosine.String() != "Cos" {
		t.Errorf("got %q and %q", Sine.String(), Cosine.String())
	}
	if Sine.Toggle() != Cosine || Cosine.Toggle() != Sine {
		t.Error("Toggle should swap kinds")
	}
}

func BenchmarkSynthesize1024(b *testing.B) {
	comps := []Component{
		{Kind: Sine, Amplitude: 1.0, Frequency: 1.0},
		{Kind: Cosine, Amplitude: 0.5, Frequency: 4.0},
		{Kind: Sine, Amplitude: 0.25, Frequency: 16.0, Offset: 0.1},
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Synthesize(comps, 1024, 3.14)
	}
}
