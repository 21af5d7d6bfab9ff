//go:build arm64 && !purego

// Package neon registers the 2-row kernels selected for ARM64 Advanced SIMD.
package neon

import (
	"github.com/cwbudde/algo-resize/imaging/simd"
	"github.com/cwbudde/algo-resize/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		Extension: simd.NEON,
		Priority:  15,
		RowBatch:  2,

		HorizU8:  horizU8,
		HorizU16: horizU16,
		HorizF32: horizF32,
		VertF32:  vertF32,

		MulAlphaU16: mulAlphaU16,
		DivAlphaU16: divAlphaU16,
	})
}
