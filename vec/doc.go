// Package vec provides fixed-width numeric vectors with element-wise
// load, accumulate and store operations.
//
// The width is part of the type: a [Fixed] is parameterized by its element
// type and by an array type that carries the length, so a mismatched
// (element type, width) pair is a compile error rather than a runtime one.
//
//	a, _ := vec.Load[[8]int32](src)
//	b := vec.FromArray[int32]([8]int32{1, 1, 1, 1, 1, 1, 1, 1})
//	a.Add(b)
//	_ = a.Store(dst)
//
// # Specialization
//
// [Float32x4] has the same contract as Fixed[float32, [4]float32] but is
// backed by a 128-bit SIMD kernel. The kernel is selected by build
// constraints, not at run time:
//
//   - amd64: SSE (ADDPS, MOVUPS/MOVAPS)
//   - purego tag or other architectures: pure Go scalar loop
//
// Both paths produce bit-identical results for every input, including NaN
// and infinities, since each lane is a single IEEE-754 addition.
//
// # Bounded views
//
// Load and Store take slices and fail with [ErrLengthMismatch] when the
// slice is shorter than the vector. [FromArray] and Array move whole arrays
// and cannot fail. The aligned forms on [Float32x4] additionally require a
// 16-byte aligned buffer and fail with [ErrAlignment] otherwise; use
// [AlignedFloat32s] to obtain one.
//
// Vectors are plain values with no shared state. Distinct goroutines may use
// distinct vectors concurrently.
package vec
