//go:build amd64 && !purego

package avx2

import (
	"github.com/cwbudde/algo-resize/imaging/filter"
	"github.com/cwbudde/algo-resize/internal/arch/generic"
)

// horizU8 is a 4-row kernel: each weight is loaded once and applied to the
// same column of four rows.
func horizU8(dst, src [][]uint8, cn int, t *filter.FixedTable) {
	n := len(src) &^ 3
	for r := 0; r < n; r += 4 {
		horizU8x4((*[4][]uint8)(dst[r:r+4]), (*[4][]uint8)(src[r:r+4]), cn, t)
	}
	if n < len(src) {
		generic.HorizU8(dst[n:], src[n:], cn, t)
	}
}

func horizU8x4(d, s *[4][]uint8, cn int, t *filter.FixedTable) {
	half := int32(1) << (t.Precision - 1)
	for x, b := range t.Bounds {
		w := t.Row(x)
		for c := range cn {
			a0, a1, a2, a3 := half, half, half, half
			off := b.Start*cn + c
			for k, wk := range w {
				i := off + k*cn
				a0 += int32(s[0][i]) * wk
				a1 += int32(s[1][i]) * wk
				a2 += int32(s[2][i]) * wk
				a3 += int32(s[3][i]) * wk
			}
			o := x*cn + c
			d[0][o] = generic.ClampU8(a0 >> t.Precision)
			d[1][o] = generic.ClampU8(a1 >> t.Precision)
			d[2][o] = generic.ClampU8(a2 >> t.Precision)
			d[3][o] = generic.ClampU8(a3 >> t.Precision)
		}
	}
}

func horizU16(dst, src [][]uint16, cn int, t *filter.FixedTable) {
	n := len(src) &^ 3
	for r := 0; r < n; r += 4 {
		horizU16x4((*[4][]uint16)(dst[r:r+4]), (*[4][]uint16)(src[r:r+4]), cn, t)
	}
	if n < len(src) {
		generic.HorizU16(dst[n:], src[n:], cn, t)
	}
}

func horizU16x4(d, s *[4][]uint16, cn int, t *filter.FixedTable) {
	half := int64(1) << (t.Precision - 1)
	for x, b := range t.Bounds {
		w := t.Row(x)
		for c := range cn {
			a0, a1, a2, a3 := half, half, half, half
			off := b.Start*cn + c
			for k, wk := range w {
				i := off + k*cn
				w64 := int64(wk)
				a0 += int64(s[0][i]) * w64
				a1 += int64(s[1][i]) * w64
				a2 += int64(s[2][i]) * w64
				a3 += int64(s[3][i]) * w64
			}
			o := x*cn + c
			d[0][o] = generic.ClampU16(a0 >> t.Precision)
			d[1][o] = generic.ClampU16(a1 >> t.Precision)
			d[2][o] = generic.ClampU16(a2 >> t.Precision)
			d[3][o] = generic.ClampU16(a3 >> t.Precision)
		}
	}
}

// vertU8 accumulates four adjacent columns per step.
func vertU8(dst []uint8, src [][]uint8, w []int32, precision uint) {
	half := int32(1) << (precision - 1)
	n := len(dst) &^ 3
	for x := 0; x < n; x += 4 {
		a0, a1, a2, a3 := half, half, half, half
		for k, wk := range w {
			row := src[k][x : x+4 : x+4]
			a0 += int32(row[0]) * wk
			a1 += int32(row[1]) * wk
			a2 += int32(row[2]) * wk
			a3 += int32(row[3]) * wk
		}
		dst[x] = generic.ClampU8(a0 >> precision)
		dst[x+1] = generic.ClampU8(a1 >> precision)
		dst[x+2] = generic.ClampU8(a2 >> precision)
		dst[x+3] = generic.ClampU8(a3 >> precision)
	}
	if n < len(dst) {
		tail := make([][]uint8, len(src))
		for k, row := range src {
			tail[k] = row[n:]
		}
		generic.VertU8(dst[n:], tail, w, precision)
	}
}

func vertU16(dst []uint16, src [][]uint16, w []int32, precision uint) {
	half := int64(1) << (precision - 1)
	n := len(dst) &^ 3
	for x := 0; x < n; x += 4 {
		a0, a1, a2, a3 := half, half, half, half
		for k, wk := range w {
			row := src[k][x : x+4 : x+4]
			w64 := int64(wk)
			a0 += int64(row[0]) * w64
			a1 += int64(row[1]) * w64
			a2 += int64(row[2]) * w64
			a3 += int64(row[3]) * w64
		}
		dst[x] = generic.ClampU16(a0 >> precision)
		dst[x+1] = generic.ClampU16(a1 >> precision)
		dst[x+2] = generic.ClampU16(a2 >> precision)
		dst[x+3] = generic.ClampU16(a3 >> precision)
	}
	if n < len(dst) {
		tail := make([][]uint16, len(src))
		for k, row := range src {
			tail[k] = row[n:]
		}
		generic.VertU16(dst[n:], tail, w, precision)
	}
}
