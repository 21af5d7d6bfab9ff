//go:build amd64 && !purego

// Package avx2 registers the 4-row kernels selected for AVX2-capable CPUs.
package avx2

import (
	"github.com/cwbudde/algo-resize/imaging/simd"
	"github.com/cwbudde/algo-resize/internal/arch/registry"
)

func init() {
	buildAlphaTables()

	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		Extension: simd.AVX2,
		Priority:  20,
		RowBatch:  4,

		HorizU8:  horizU8,
		HorizU16: horizU16,
		HorizF32: horizF32,

		VertU8:  vertU8,
		VertU16: vertU16,
		VertF32: vertF32,

		MulAlphaU8: mulAlphaU8,
		DivAlphaU8: divAlphaU8,
	})
}
