//go:build amd64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl reads CPUID through x/sys/cpu.
func detectFeaturesImpl() Features {
	return Features{
		HasSSE41:     cpu.X86.HasSSE41,
		HasAVX2:      cpu.X86.HasAVX2,
		Architecture: runtime.GOARCH,
	}
}
