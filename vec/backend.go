package vec

import "github.com/cwbudde/algo-vecmath/cpu"

// BackendInfo describes the kernel compiled in for Float32x4.
type BackendInfo struct {
	// Kernel is "sse2" or "generic".
	Kernel string

	// SIMDLevel is the instruction set the kernel requires.
	SIMDLevel cpu.SIMDLevel

	// Features are the CPU features detected at run time.
	Features cpu.Features

	// Supported reports whether Features permit SIMDLevel. The kernel is
	// fixed at build time; this is informational.
	Supported bool
}

// Backend reports the Float32x4 kernel and the detected CPU features.
func Backend() BackendInfo {
	features := cpu.DetectFeatures()
	return BackendInfo{
		Kernel:    float32x4Kernel,
		SIMDLevel: float32x4Level,
		Features:  features,
		Supported: supports(features, float32x4Level),
	}
}

func supports(features cpu.Features, level cpu.SIMDLevel) bool {
	if features.ForceGeneric {
		return level == cpu.SIMDNone
	}
	switch level {
	case cpu.SIMDNone:
		return true
	case cpu.SIMDSSE2:
		return features.HasSSE2
	default:
		return false
	}
}
