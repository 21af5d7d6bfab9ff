//go:build amd64 && !purego

package sse4

import (
	"github.com/cwbudde/algo-resize/imaging/filter"
	"github.com/cwbudde/algo-resize/internal/arch/generic"
)

// horizU8 walks two rows at once so each weight run is loaded once per pair.
func horizU8(dst, src [][]uint8, cn int, t *filter.FixedTable) {
	n := len(src) &^ 1
	for r := 0; r < n; r += 2 {
		horizU8x2(dst[r], dst[r+1], src[r], src[r+1], cn, t)
	}
	if n < len(src) {
		generic.HorizU8(dst[n:], src[n:], cn, t)
	}
}

func horizU8x2(d0, d1, s0, s1 []uint8, cn int, t *filter.FixedTable) {
	half := int32(1) << (t.Precision - 1)
	for x, b := range t.Bounds {
		w := t.Row(x)
		for c := range cn {
			acc0, acc1 := half, half
			off := b.Start*cn + c
			for k, wk := range w {
				i := off + k*cn
				acc0 += int32(s0[i]) * wk
				acc1 += int32(s1[i]) * wk
			}
			d0[x*cn+c] = generic.ClampU8(acc0 >> t.Precision)
			d1[x*cn+c] = generic.ClampU8(acc1 >> t.Precision)
		}
	}
}

// vertU8 accumulates two columns per step.
func vertU8(dst []uint8, src [][]uint8, w []int32, precision uint) {
	half := int32(1) << (precision - 1)
	n := len(dst) &^ 1
	for x := 0; x < n; x += 2 {
		acc0, acc1 := half, half
		for k, wk := range w {
			row := src[k][x : x+2 : x+2]
			acc0 += int32(row[0]) * wk
			acc1 += int32(row[1]) * wk
		}
		dst[x] = generic.ClampU8(acc0 >> precision)
		dst[x+1] = generic.ClampU8(acc1 >> precision)
	}
	if n < len(dst) {
		acc := half
		for k, wk := range w {
			acc += int32(src[k][n]) * wk
		}
		dst[n] = generic.ClampU8(acc >> precision)
	}
}

// mulAlphaU8 handles two pixels per step.
func mulAlphaU8(dst, src []uint8, cn int) {
	step := 2 * cn
	n := len(src) / step * step
	last := cn - 1
	for i := 0; i < n; i += step {
		a0 := uint32(src[i+last])
		a1 := uint32(src[i+cn+last])
		for c := range last {
			dst[i+c] = generic.MulU8(src[i+c], a0)
			dst[i+cn+c] = generic.MulU8(src[i+cn+c], a1)
		}
		dst[i+last] = src[i+last]
		dst[i+cn+last] = src[i+cn+last]
	}
	generic.MulAlphaU8(dst[n:], src[n:], cn)
}

// divAlphaU8 handles two pixels per step.
func divAlphaU8(dst, src []uint8, cn int) {
	step := 2 * cn
	n := len(src) / step * step
	last := cn - 1
	for i := 0; i < n; i += step {
		a0 := uint32(src[i+last])
		a1 := uint32(src[i+cn+last])
		for c := range last {
			dst[i+c] = generic.DivU8(src[i+c], a0)
			dst[i+cn+c] = generic.DivU8(src[i+cn+c], a1)
		}
		dst[i+last] = src[i+last]
		dst[i+cn+last] = src[i+cn+last]
	}
	generic.DivAlphaU8(dst[n:], src[n:], cn)
}
