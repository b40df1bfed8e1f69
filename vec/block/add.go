package block

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-simdvec/vec"
)

const width = 4

// AddFloat32 performs element-wise addition: dst[i] = a[i] + b[i].
// Chunks of four use vec.Float32x4.
func AddFloat32(dst, a, b []float32) error {
	if err := checkLengths(len(dst), len(a), len(b)); err != nil {
		return err
	}

	n := len(dst) &^ (width - 1)
	for i := 0; i < n; i += width {
		va := vec.Float32x4FromArray([4]float32(a[i : i+width]))
		va.Add(vec.Float32x4FromArray([4]float32(b[i : i+width])))
		*(*[4]float32)(dst[i : i+width]) = va.Array()
	}
	for i := n; i < len(dst); i++ {
		dst[i] = a[i] + b[i]
	}
	return nil
}

// AddInPlaceFloat32 performs in-place element-wise addition: dst[i] += src[i].
func AddInPlaceFloat32(dst, src []float32) error {
	return AddFloat32(dst, dst, src)
}

// AddFloat64 performs element-wise addition: dst[i] = a[i] + b[i].
func AddFloat64(dst, a, b []float64) error {
	if err := checkLengths(len(dst), len(a), len(b)); err != nil {
		return err
	}
	if len(dst) == 0 {
		return nil
	}
	vecmath.AddBlock(dst, a, b)
	return nil
}

// Add performs element-wise addition for any numeric element type:
// dst[i] = a[i] + b[i]. Chunks of four use vec.Fixed.
func Add[T vec.Number](dst, a, b []T) error {
	if err := checkLengths(len(dst), len(a), len(b)); err != nil {
		return err
	}

	n := len(dst) &^ (width - 1)
	for i := 0; i < n; i += width {
		va := vec.FromArray[T]([4]T(a[i : i+width]))
		va.Add(vec.FromArray[T]([4]T(b[i : i+width])))
		*(*[4]T)(dst[i : i+width]) = va.Array()
	}
	for i := n; i < len(dst); i++ {
		dst[i] = a[i] + b[i]
	}
	return nil
}

func checkLengths(dst, a, b int) error {
	if dst != a || dst != b {
		return fmt.Errorf("block: dst=%d a=%d b=%d: %w", dst, a, b, vec.ErrLengthMismatch)
	}
	return nil
}
