//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-resize/imaging/filter"
	"github.com/cwbudde/algo-resize/internal/arch/generic"
	"github.com/cwbudde/algo-resize/internal/scratch"
)

var pool = scratch.NewPool()

func horizU8(dst, src [][]uint8, cn int, t *filter.FixedTable) {
	n := len(src) &^ 1
	half := int32(1) << (t.Precision - 1)
	for r := 0; r < n; r += 2 {
		s0, s1 := src[r], src[r+1]
		d0, d1 := dst[r], dst[r+1]
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
	if n < len(src) {
		generic.HorizU8(dst[n:], src[n:], cn, t)
	}
}

func horizU16(dst, src [][]uint16, cn int, t *filter.FixedTable) {
	n := len(src) &^ 1
	half := int64(1) << (t.Precision - 1)
	for r := 0; r < n; r += 2 {
		s0, s1 := src[r], src[r+1]
		d0, d1 := dst[r], dst[r+1]
		for x, b := range t.Bounds {
			w := t.Row(x)
			for c := range cn {
				acc0, acc1 := half, half
				off := b.Start*cn + c
				for k, wk := range w {
					i := off + k*cn
					acc0 += int64(s0[i]) * int64(wk)
					acc1 += int64(s1[i]) * int64(wk)
				}
				d0[x*cn+c] = generic.ClampU16(acc0 >> t.Precision)
				d1[x*cn+c] = generic.ClampU16(acc1 >> t.Precision)
			}
		}
	}
	if n < len(src) {
		generic.HorizU16(dst[n:], src[n:], cn, t)
	}
}

func horizF32(dst, src [][]float32, t *filter.Table) {
	buf := pool.Get(0)
	defer pool.Put(buf)

	for r, s := range src {
		wide := scratch.Float64s(buf, len(s))
		for i, v := range s {
			wide[i] = float64(v)
		}
		d := dst[r]
		for x, b := range t.Bounds {
			d[x] = float32(vecmath.DotProduct(wide[b.Start:b.Start+b.Size], t.Row(x)))
		}
	}
}

func vertF32(dst []float32, src [][]float32, w []float64) {
	accBuf := pool.Get(0)
	rowBuf := pool.Get(0)
	defer pool.Put(accBuf)
	defer pool.Put(rowBuf)

	acc := scratch.Float64s(accBuf, len(dst))
	row := scratch.Float64s(rowBuf, len(dst))
	for k, wk := range w {
		for i, v := range src[k][:len(dst)] {
			row[i] = float64(v)
		}
		if k == 0 {
			vecmath.ScaleBlock(acc, row, wk)
			continue
		}
		vecmath.ScaleBlockInPlace(row, wk)
		vecmath.AddBlockInPlace(acc, row)
	}
	for i, v := range acc {
		dst[i] = float32(v)
	}
}

// mulAlphaU16 handles two pixels per step.
func mulAlphaU16(dst, src []uint16, cn int) {
	step := 2 * cn
	n := len(src) / step * step
	last := cn - 1
	for i := 0; i < n; i += step {
		a0 := uint64(src[i+last])
		a1 := uint64(src[i+cn+last])
		for c := range last {
			dst[i+c] = generic.MulU16(src[i+c], a0)
			dst[i+cn+c] = generic.MulU16(src[i+cn+c], a1)
		}
		dst[i+last] = src[i+last]
		dst[i+cn+last] = src[i+cn+last]
	}
	generic.MulAlphaU16(dst[n:], src[n:], cn)
}

// divAlphaU16 handles two pixels per step.
func divAlphaU16(dst, src []uint16, cn int) {
	step := 2 * cn
	n := len(src) / step * step
	last := cn - 1
	for i := 0; i < n; i += step {
		a0 := uint64(src[i+last])
		a1 := uint64(src[i+cn+last])
		for c := range last {
			dst[i+c] = generic.DivU16(src[i+c], a0)
			dst[i+cn+c] = generic.DivU16(src[i+cn+c], a1)
		}
		dst[i+last] = src[i+last]
		dst[i+cn+last] = src[i+cn+last]
	}
	generic.DivAlphaU16(dst[n:], src[n:], cn)
}
