package testutil

import (
	"math/rand"
)

// DeterministicNoise32 generates uniform values in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise32(seed int64, amplitude float32, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float32()*2 - 1) * amplitude
	}
	return out
}

// DeterministicNoise generates float64 noise with a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Ramp returns [start, start+step, start+2*step, ...] of the given length.
func Ramp[T ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64](start, step T, length int) []T {
	out := make([]T, length)
	v := start
	for i := range out {
		out[i] = v
		v += step
	}
	return out
}
