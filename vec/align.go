package vec

import "unsafe"

// simdAlign is the alignment in bytes required by the aligned 128-bit forms.
const simdAlign = 16

// AlignedFloat32s returns a zeroed slice of length n whose first element is
// 16-byte aligned. The slice's capacity equals its length so appends
// reallocate rather than silently extend into padding.
func AlignedFloat32s(n int) []float32 {
	if n <= 0 {
		return nil
	}
	const pad = simdAlign/4 - 1
	buf := make([]float32, n+pad)
	off := 0
	if rem := uintptr(unsafe.Pointer(&buf[0])) % simdAlign; rem != 0 {
		off = int((simdAlign - rem) / 4)
	}
	return buf[off : off+n : off+n]
}

// IsAligned reports whether s is non-empty and its first element lies on a
// 16-byte boundary.
func IsAligned(s []float32) bool {
	return len(s) > 0 && uintptr(unsafe.Pointer(&s[0]))%simdAlign == 0
}
