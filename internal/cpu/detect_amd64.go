//go:build amd64

package cpu

import "golang.org/x/sys/cpu"

// detectFeaturesImpl reads the x86 feature flags via CPUID.
// SSE2 is part of the x86-64 baseline.
func detectFeaturesImpl() Features {
	return Features{
		HasSSE2:   cpu.X86.HasSSE2,
		HasAVX2:   cpu.X86.HasAVX2,
		HasAVX512: cpu.X86.HasAVX512,
	}
}
