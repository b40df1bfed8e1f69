// Package generic holds the pure Go kernels behind the fixed-width vector
// types. They are the reference every SIMD kernel is tested against.
package generic

import "unsafe"

// AddFloat32x4 performs in-place element-wise addition: dst[i] += src[i].
func AddFloat32x4(dst, src *[4]float32) {
	dst[0] += src[0]
	dst[1] += src[1]
	dst[2] += src[2]
	dst[3] += src[3]
}

// LoadFloat32x4 copies four elements starting at src into dst.
// The caller guarantees src addresses at least four elements.
func LoadFloat32x4(dst *[4]float32, src *float32) {
	*dst = *(*[4]float32)(unsafe.Pointer(src))
}

// StoreFloat32x4 copies the four elements of src to dst.
// The caller guarantees dst addresses at least four writable elements.
func StoreFloat32x4(dst *float32, src *[4]float32) {
	*(*[4]float32)(unsafe.Pointer(dst)) = *src
}
