// Package simd defines the CPU-extension tag consulted by the resize and
// alpha engines when they pick their row kernels.
//
// An Extension is a plain value. Each engine holds its own copy, resolved
// once when it is configured, so engines on different goroutines never share
// dispatch state.
package simd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-resize/internal/cpu"
)

// Extension identifies a vector instruction level.
type Extension uint8

const (
	// None selects the portable scalar kernels. It is valid on every CPU.
	None Extension = iota

	// SSE41 selects the 2-row x86-64 kernels.
	SSE41

	// AVX2 selects the 4-row x86-64 kernels.
	AVX2

	// NEON selects the 2-row ARM64 kernels.
	NEON
)

// NoSIMDEnv is the environment variable that forces None when set to a true value.
const NoSIMDEnv = "ALGO_RESIZE_NO_SIMD"

// ErrUnknownExtension is returned by ParseExtension for unrecognised names.
var ErrUnknownExtension = errors.New("simd: unknown extension")

// ErrUnsupportedExtension is returned by engines asked to use an extension the
// running CPU does not support.
var ErrUnsupportedExtension = errors.New("simd: extension not supported by this CPU")

// Extensions lists every tag, lowest first.
var Extensions = []Extension{None, SSE41, AVX2, NEON}

// String returns a human-readable name for the extension.
func (e Extension) String() string {
	switch e {
	case None:
		return "none"
	case SSE41:
		return "sse4.1"
	case AVX2:
		return "avx2"
	case NEON:
		return "neon"
	default:
		return "unknown"
	}
}

// ParseExtension maps a name such as "avx2" or "sse4.1" to its tag.
func ParseExtension(name string) (Extension, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "scalar", "generic":
		return None, nil
	case "sse4.1", "sse41", "sse4":
		return SSE41, nil
	case "avx2":
		return AVX2, nil
	case "neon":
		return NEON, nil
	default:
		return None, fmt.Errorf("%w: %q", ErrUnknownExtension, name)
	}
}

// RowBatch returns how many rows the kernels of e process together.
func (e Extension) RowBatch() int {
	switch e {
	case AVX2:
		return 4
	case SSE41, NEON:
		return 2
	default:
		return 1
	}
}

// Includes reports whether kernels written for other may run wherever e is
// available. Every extension includes None, and AVX2 includes SSE4.1.
func (e Extension) Includes(other Extension) bool {
	switch other {
	case None:
		return true
	case e:
		return true
	case SSE41:
		return e == AVX2
	default:
		return false
	}
}

// Supported reports whether the running CPU can execute kernels for e.
func (e Extension) Supported() bool {
	return supportedBy(cpu.DetectFeatures(), e)
}

// Detect returns the best extension supported by the running CPU, or None
// when the NoSIMDEnv variable is set.
func Detect() Extension {
	if noSIMD() {
		return None
	}
	f := cpu.DetectFeatures()
	for _, e := range []Extension{AVX2, NEON, SSE41} {
		if supportedBy(f, e) {
			return e
		}
	}
	return None
}

func supportedBy(f cpu.Features, e Extension) bool {
	if f.ForceGeneric {
		return e == None
	}
	switch e {
	case None:
		return true
	case SSE41:
		return f.HasSSE41
	case AVX2:
		return f.HasAVX2
	case NEON:
		return f.HasNEON
	default:
		return false
	}
}

func noSIMD() bool {
	val := os.Getenv(NoSIMDEnv)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
