//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-resize/imaging/filter"
	"github.com/cwbudde/algo-resize/internal/scratch"
)

var pool = scratch.NewPool()

// horizF32 widens each row once and evaluates every destination sample as a
// vecmath dot product over its weight run.
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

// vertF32 accumulates whole rows with vecmath block operations.
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
