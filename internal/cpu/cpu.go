// Package cpu reports which vector instruction sets the resize kernels may
// use on the running processor. Results are probed once and cached; tests
// can substitute their own feature set.
package cpu

import "sync"

// Features lists the instruction sets the kernel backends care about.
type Features struct {
	HasSSE41 bool
	HasAVX2  bool
	HasNEON  bool

	// ForceGeneric makes every vector backend unavailable.
	ForceGeneric bool

	// Architecture is runtime.GOARCH.
	Architecture string
}

var (
	probeOnce sync.Once
	probed    Features
	probeMu   sync.Mutex

	overrideMu sync.RWMutex
	override   *Features
)

// DetectFeatures returns the forced feature set if one is installed, or the
// cached result of probing the hardware. Safe for concurrent use.
func DetectFeatures() Features {
	overrideMu.RLock()
	f := override
	overrideMu.RUnlock()
	if f != nil {
		return *f
	}

	probeMu.Lock()
	defer probeMu.Unlock()
	probeOnce.Do(func() { probed = detectFeaturesImpl() })
	return probed
}

// SetForcedFeatures makes DetectFeatures return f until ResetDetection.
func SetForcedFeatures(f Features) {
	overrideMu.Lock()
	override = &f
	overrideMu.Unlock()
}

// ResetDetection drops any forced features and the cached probe.
func ResetDetection() {
	overrideMu.Lock()
	override = nil
	overrideMu.Unlock()

	probeMu.Lock()
	probeOnce = sync.Once{}
	probed = Features{}
	probeMu.Unlock()
}
