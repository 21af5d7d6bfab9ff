// Package generic registers the scalar baseline kernels. Every other
// backend must reproduce their integer results bit for bit.
package generic

import (
	"github.com/cwbudde/algo-resize/imaging/simd"
	"github.com/cwbudde/algo-resize/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		Extension: simd.None,
		Priority:  0,
		RowBatch:  1,

		HorizU8:  HorizU8,
		HorizU16: HorizU16,
		HorizI32: HorizI32,
		HorizF32: HorizF32,

		VertU8:  VertU8,
		VertU16: VertU16,
		VertI32: VertI32,
		VertF32: VertF32,

		MulAlphaU8:  MulAlphaU8,
		DivAlphaU8:  DivAlphaU8,
		MulAlphaU16: MulAlphaU16,
		DivAlphaU16: DivAlphaU16,
	})
}
