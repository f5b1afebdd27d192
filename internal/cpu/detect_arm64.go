//go:build arm64

package cpu

import "golang.org/x/sys/cpu"

// detectFeaturesImpl reads the arm64 feature flags.
// NEON is mandatory on ARMv8.
func detectFeaturesImpl() Features {
	return Features{
		HasNEON: cpu.ARM64.HasASIMD,
	}
}
