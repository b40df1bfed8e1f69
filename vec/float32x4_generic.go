//go:build purego || !amd64

package vec

import (
	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/cwbudde/algo-simdvec/internal/kernel/generic"
)

const float32x4Kernel = "generic"

const float32x4Level = cpu.SIMDNone

func addFloat32x4(dst, src *[4]float32) {
	generic.AddFloat32x4(dst, src)
}

func loadAlignedFloat32x4(dst *[4]float32, src *float32) {
	generic.LoadFloat32x4(dst, src)
}

func storeAlignedFloat32x4(dst *float32, src *[4]float32) {
	generic.StoreFloat32x4(dst, src)
}
