//go:build !amd64 && !arm64

package cpu

import "runtime"

// detectFeaturesImpl reports no vector features on other architectures
// (wasm, riscv64, ...), so only the scalar kernels are selected.
func detectFeaturesImpl() Features {
	return Features{Architecture: runtime.GOARCH}
}
