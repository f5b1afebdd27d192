// Package cpu describes the processor the scan kernels run on.
//
// The parallel scans size their worker pools and chunk grain from the values
// reported here. Detection runs lazily on the first call to DetectFeatures and
// is cached; tests may override it with SetForcedFeatures.
package cpu

import (
	"runtime"
	"sync"
	"unsafe"

	vmcpu "github.com/cwbudde/algo-vecmath/cpu"
	"golang.org/x/sys/cpu"
)

// Features describes CPU capabilities relevant to parallel scan scheduling.
type Features struct {
	// Parallelism
	NumCPU   int // logical CPUs visible to the process
	MaxProcs int // runtime.GOMAXPROCS(0) at detection time

	// CacheLineSize is the cache line size in bytes assumed by x/sys/cpu.
	CacheLineSize int

	// x86/amd64 SIMD features
	HasSSE2   bool
	HasAVX2   bool
	HasAVX512 bool

	// ARM SIMD features
	HasNEON bool

	// Runtime information
	Architecture string // runtime.GOARCH
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the features of the current system.
//
// Detection is performed once and cached. Safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
		detectedFeatures.NumCPU = runtime.NumCPU()
		detectedFeatures.MaxProcs = runtime.GOMAXPROCS(0)
		detectedFeatures.CacheLineSize = int(unsafe.Sizeof(cpu.CacheLinePad{}))
		detectedFeatures.Architecture = runtime.GOARCH
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// Workers returns the number of goroutines a parallel region should use.
// Never less than 1.
func (f Features) Workers() int {
	if f.MaxProcs > 0 {
		return f.MaxProcs
	}
	if f.NumCPU > 0 {
		return f.NumCPU
	}
	return 1
}

// LineElems returns how many elements of elemSize bytes fit in one cache line.
// Never less than 1.
func (f Features) LineElems(elemSize int) int {
	line := f.CacheLineSize
	if line <= 0 {
		line = 64
	}
	if elemSize <= 0 || elemSize >= line {
		return 1
	}
	return line / elemSize
}

// VectorLevel names the vector kernel tier algo-vecmath dispatches to on this
// machine. Used for reporting only.
func VectorLevel() string {
	f := vmcpu.DetectFeatures()
	switch {
	case f.ForceGeneric:
		return "generic"
	case f.HasAVX2:
		return "avx2"
	case f.HasSSE2:
		return "sse2"
	case f.HasNEON:
		return "neon"
	default:
		return "generic"
	}
}

// SetForcedFeatures overrides detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}
