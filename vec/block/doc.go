// Package block applies the fixed-width vector kernels to slices of any
// length.
//
// Full 4-element chunks go through the vector types of package vec; the
// remaining 0-3 elements are added with a scalar loop. float64 blocks are
// delegated to algo-vecmath, which selects AVX2 or NEON at run time.
//
// All functions require equal slice lengths and return an error wrapping
// vec.ErrLengthMismatch otherwise. dst may alias a, b or src exactly; partial
// overlap is not supported.
package block
