//go:build amd64 && !purego

package sse2

// AddFloat32x4 performs in-place element-wise addition: dst[i] += src[i].
// Uses a single ADDPS on unaligned loads of both operands.
func AddFloat32x4(dst, src *[4]float32) {
	addFloat32x4SSE(dst, src)
}

// LoadFloat32x4Aligned copies four elements starting at src into dst using
// the aligned MOVAPS form. src must be 16-byte aligned; the CPU faults otherwise.
func LoadFloat32x4Aligned(dst *[4]float32, src *float32) {
	loadAlignedFloat32x4SSE(dst, src)
}

// StoreFloat32x4Aligned copies the four elements of src to dst using the
// aligned MOVAPS form. dst must be 16-byte aligned; the CPU faults otherwise.
func StoreFloat32x4Aligned(dst *float32, src *[4]float32) {
	storeAlignedFloat32x4SSE(dst, src)
}

// Assembly function declarations (implemented in add_amd64.s)

//go:noescape
func addFloat32x4SSE(dst, src *[4]float32)

//go:noescape
func loadAlignedFloat32x4SSE(dst *[4]float32, src *float32)

//go:noescape
func storeAlignedFloat32x4SSE(dst *float32, src *[4]float32)
