// Package cpu provides CPU feature detection for selecting vectorized
// inner-product kernels.
//
// Detection is performed lazily on the first call to DetectFeatures and
// the result is cached for subsequent calls.
package cpu

import "sync"

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	// x86/amd64 SIMD features
	HasSSE2 bool // Streaming SIMD Extensions 2 (baseline for amd64)
	HasAVX  bool // Advanced Vector Extensions
	HasAVX2 bool // Advanced Vector Extensions 2

	// ARM SIMD features
	HasNEON bool // ARM Advanced SIMD (NEON)

	// Runtime information
	Architecture string // runtime.GOARCH (e.g., "amd64", "arm64")
}

// HasSIMD reports whether any vector extension is available.
func (f Features) HasSIMD() bool {
	return f.HasSSE2 || f.HasAVX || f.HasAVX2 || f.HasNEON
}

var (
	detectedFeatures Features
	detectOnce       sync.Once

	// forcedFeatures overrides hardware detection, for testing.
	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current
// system. Thread-safe; detection runs once and is cached.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	return detectedFeatures
}

// SetForcedFeatures overrides CPU feature detection with the specified
// features. Intended for testing only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetForcedFeatures clears any forced features.
// Intended for testing only.
func ResetForcedFeatures() {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forcedFeatures = nil
}
