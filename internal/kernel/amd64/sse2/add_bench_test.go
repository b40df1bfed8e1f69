//go:build amd64 && !purego

package sse2

import (
	"testing"

	"github.com/cwbudde/algo-simdvec/internal/kernel/generic"
)

func BenchmarkAddFloat32x4(b *testing.B) {
	dst := [4]float32{1, 2, 3, 4}
	src := [4]float32{1e-9, 1e-9, 1e-9, 1e-9}
	b.SetBytes(32)
	for i := 0; i < b.N; i++ {
		AddFloat32x4(&dst, &src)
	}
}

func BenchmarkAddFloat32x4Generic(b *testing.B) {
	dst := [4]float32{1, 2, 3, 4}
	src := [4]float32{1e-9, 1e-9, 1e-9, 1e-9}
	b.SetBytes(32)
	for i := 0; i < b.N; i++ {
		generic.AddFloat32x4(&dst, &src)
	}
}
