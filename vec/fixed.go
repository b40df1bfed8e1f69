package vec

// Fixed is a vector of exactly len(A) elements of type T, stored inline.
//
// The zero value is a vector of zeros. Fixed has value semantics: copying it
// copies the elements, and it never retains a reference to the slices it was
// loaded from or stored to.
type Fixed[T Number, A Array[T]] struct {
	data A
}

// Load returns a vector holding the first len(A) elements of src.
// Elements beyond the width are ignored. Returns an error wrapping
// ErrLengthMismatch if src is too short.
//
// The element type is inferred from src:
//
//	v, err := vec.Load[[4]float64](samples)
//
// An untyped nil carries no element type, so name it explicitly:
// vec.Load[[4]float64, float64](nil) or vec.Load[[4]float64]([]float64(nil)).
func Load[A Array[T], T Number](src []T) (Fixed[T, A], error) {
	var v Fixed[T, A]
	n := len(v.data)
	if err := checkLen("vec: load", len(src), n); err != nil {
		return v, err
	}
	for i := 0; i < n; i++ {
		v.data[i] = src[i]
	}
	return v, nil
}

// FromArray returns a vector holding a copy of a.
// The element type must be given explicitly: vec.FromArray[int16](arr).
func FromArray[T Number, A Array[T]](a A) Fixed[T, A] {
	return Fixed[T, A]{data: a}
}

// Add performs in-place element-wise addition: v[i] += other[i].
// It returns v to allow chaining. Integer lanes wrap on overflow.
func (v *Fixed[T, A]) Add(other Fixed[T, A]) *Fixed[T, A] {
	for i := 0; i < len(v.data); i++ {
		v.data[i] += other.data[i]
	}
	return v
}

// Store writes the vector's elements to dst[:Len()], leaving the rest of dst
// untouched. Returns an error wrapping ErrLengthMismatch, without writing
// anything, if dst is too short.
func (v Fixed[T, A]) Store(dst []T) error {
	n := len(v.data)
	if err := checkLen("vec: store", len(dst), n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		dst[i] = v.data[i]
	}
	return nil
}

// Array returns a copy of the elements.
func (v Fixed[T, A]) Array() A {
	return v.data
}

// Len returns the vector width.
func (v Fixed[T, A]) Len() int {
	return len(v.data)
}

// At returns element i. It panics if i is out of range.
func (v Fixed[T, A]) At(i int) T {
	return v.data[i]
}
