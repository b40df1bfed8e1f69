//go:build amd64 && !purego

package vec

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-simdvec/internal/kernel/amd64/sse2"
)

const float32x4Kernel = "sse2"

const float32x4Level = cpu.SIMDSSE2

func addFloat32x4(dst, src *[4]float32) {
	sse2.AddFloat32x4(dst, src)
}

func loadAlignedFloat32x4(dst *[4]float32, src *float32) {
	sse2.LoadFloat32x4Aligned(dst, src)
}

func storeAlignedFloat32x4(dst *float32, src *[4]float32) {
	sse2.StoreFloat32x4Aligned(dst, src)
}
