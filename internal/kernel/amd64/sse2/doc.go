// Package sse2 contains the 128-bit SSE kernels for the 4-wide float32 vector.
//
// SSE and SSE2 are part of the x86-64 baseline, so these kernels need no
// runtime feature check on amd64. They are compiled out under the purego tag.
package sse2
