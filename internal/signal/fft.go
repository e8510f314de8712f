package signal

import (
	"errors"
	"math"
)

// ErrNotPowerOfTwo is returned when a transform is asked for a length
// the radix-2 decomposition cannot halve down to 1.
var ErrNotPowerOfTwo = errors.New("signal: transform length must be a power of two")

// FFT performs an in-place radix-2 Cooley-Tukey FFT on data.
// len(data) must be a power of two; lengths 0 and 1 are their own
// transform. Output is in standard DFT bin order: bins 0..n/2-1 are the
// ascending positive frequencies, the upper half wraps to the negative
// side of the spectrum.
func FFT(data []complex128) error {
	n := len(data)
	if n <= 1 {
		return nil
	}
	if n&(n-1) != 0 {
		return ErrNotPowerOfTwo
	}

	// Bit-reversal permutation
	j := 0
	for i := 1; i < n; i++ {
		bit := n >> 1
		for j&bit != 0 {
			j ^= bit
			bit >>= 1
		}
		j ^= bit
		if i < j {
			data[i], data[j] = data[j], data[i]
		}
	}

	// Butterfly passes, smallest blocks first
	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		angleStep := -2.0 * math.Pi / float64(size)
		for i := 0; i < n; i += size {
			for k := 0; k < half; k++ {
				angle := angleStep * float64(k)
				w := complex(math.Cos(angle), math.Sin(angle))
				a := i + k
				b := a + half
				t := w * data[b]
				data[b] = data[a] - t
				data[a] += t
			}
		}
	}
	return nil
}

// Transform is the non-destructive form of FFT: it leaves samples
// untouched and returns the transformed copy.
func Transform(samples []complex128) ([]complex128, error) {
	out := make([]complex128, len(samples))
	copy(out, samples)
	if err := FFT(out); err != nil {
		return nil, err
	}
	return out, nil
}
