package vec

// Float32x4 is the 4-wide float32 vector backed by a 128-bit SIMD kernel.
//
// It honors the same contract as Fixed[float32, [4]float32] and produces
// bit-identical results; only the kernel differs. See the package
// documentation for how the kernel is chosen.
type Float32x4 struct {
	data [4]float32
}

// LoadFloat32x4 returns a vector holding src[0:4]. Any alignment is accepted.
// Returns an error wrapping ErrLengthMismatch if len(src) < 4.
func LoadFloat32x4(src []float32) (Float32x4, error) {
	var v Float32x4
	if err := checkLen("vec: load float32x4", len(src), 4); err != nil {
		return v, err
	}
	v.data = [4]float32(src[:4])
	return v, nil
}

// LoadFloat32x4Aligned is LoadFloat32x4 restricted to buffers whose first
// element is 16-byte aligned, matching the aligned SIMD load form. It returns
// an error wrapping ErrAlignment for a misaligned src.
func LoadFloat32x4Aligned(src []float32) (Float32x4, error) {
	var v Float32x4
	if err := checkLen("vec: load float32x4", len(src), 4); err != nil {
		return v, err
	}
	if err := checkAligned("vec: load float32x4", &src[0]); err != nil {
		return v, err
	}
	loadAlignedFloat32x4(&v.data, &src[0])
	return v, nil
}

// Float32x4FromArray returns a vector holding a copy of a.
func Float32x4FromArray(a [4]float32) Float32x4 {
	return Float32x4{data: a}
}

// Add performs in-place element-wise addition: v[i] += other[i], in a single
// SIMD instruction where available. It returns v to allow chaining.
func (v *Float32x4) Add(other Float32x4) *Float32x4 {
	addFloat32x4(&v.data, &other.data)
	return v
}

// Store writes the four elements to dst[:4]. Any alignment is accepted.
// Returns an error wrapping ErrLengthMismatch if len(dst) < 4.
func (v Float32x4) Store(dst []float32) error {
	if err := checkLen("vec: store float32x4", len(dst), 4); err != nil {
		return err
	}
	*(*[4]float32)(dst) = v.data
	return nil
}

// StoreAligned is Store restricted to 16-byte aligned destinations.
// Nothing is written when an error is returned.
func (v Float32x4) StoreAligned(dst []float32) error {
	if err := checkLen("vec: store float32x4", len(dst), 4); err != nil {
		return err
	}
	if err := checkAligned("vec: store float32x4", &dst[0]); err != nil {
		return err
	}
	storeAlignedFloat32x4(&dst[0], &v.data)
	return nil
}

// Array returns a copy of the elements.
func (v Float32x4) Array() [4]float32 {
	return v.data
}

// Len returns 4.
func (v Float32x4) Len() int {
	return 4
}

// At returns element i. It panics if i is out of range.
func (v Float32x4) At(i int) float32 {
	return v.data[i]
}
