//go:build amd64 && !purego

// Package sse4 registers the 2-row kernels selected for SSE4.1-capable CPUs.
package sse4

import (
	"github.com/cwbudde/algo-resize/imaging/simd"
	"github.com/cwbudde/algo-resize/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse4.1",
		Extension: simd.SSE41,
		Priority:  10,
		RowBatch:  2,

		HorizU8: horizU8,
		VertU8:  vertU8,

		MulAlphaU8: mulAlphaU8,
		DivAlphaU8: divAlphaU8,
	})
}
