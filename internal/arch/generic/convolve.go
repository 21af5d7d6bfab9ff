package generic

import (
	"math"

	"github.com/cwbudde/algo-resize/imaging/filter"
)

// HorizU8 resamples 8-bit rows with 32-bit fixed-point accumulation.
func HorizU8(dst, src [][]uint8, cn int, t *filter.FixedTable) {
	half := int32(1) << (t.Precision - 1)
	for r, s := range src {
		d := dst[r]
		for x, b := range t.Bounds {
			w := t.Row(x)
			for c := range cn {
				acc := half
				off := b.Start*cn + c
				for k, wk := range w {
					acc += int32(s[off+k*cn]) * wk
				}
				d[x*cn+c] = ClampU8(acc >> t.Precision)
			}
		}
	}
}

// HorizU16 resamples 16-bit rows with 64-bit fixed-point accumulation.
func HorizU16(dst, src [][]uint16, cn int, t *filter.FixedTable) {
	half := int64(1) << (t.Precision - 1)
	for r, s := range src {
		d := dst[r]
		for x, b := range t.Bounds {
			w := t.Row(x)
			for c := range cn {
				acc := half
				off := b.Start*cn + c
				for k, wk := range w {
					acc += int64(s[off+k*cn]) * int64(wk)
				}
				d[x*cn+c] = ClampU16(acc >> t.Precision)
			}
		}
	}
}

// HorizI32 resamples single-component int32 rows.
func HorizI32(dst, src [][]int32, t *filter.Table) {
	for r, s := range src {
		d := dst[r]
		for x, b := range t.Bounds {
			acc := 0.0
			for k, wk := range t.Row(x) {
				acc += float64(s[b.Start+k]) * wk
			}
			d[x] = RoundI32(acc)
		}
	}
}

// HorizF32 resamples single-component float32 rows.
func HorizF32(dst, src [][]float32, t *filter.Table) {
	for r, s := range src {
		d := dst[r]
		for x, b := range t.Bounds {
			acc := 0.0
			for k, wk := range t.Row(x) {
				acc += float64(s[b.Start+k]) * wk
			}
			d[x] = float32(acc)
		}
	}
}

// VertU8 writes the weighted sum of the 8-bit rows in src to dst.
func VertU8(dst []uint8, src [][]uint8, w []int32, precision uint) {
	half := int32(1) << (precision - 1)
	for x := range dst {
		acc := half
		for k, wk := range w {
			acc += int32(src[k][x]) * wk
		}
		dst[x] = ClampU8(acc >> precision)
	}
}

// VertU16 writes the weighted sum of the 16-bit rows in src to dst.
func VertU16(dst []uint16, src [][]uint16, w []int32, precision uint) {
	half := int64(1) << (precision - 1)
	for x := range dst {
		acc := half
		for k, wk := range w {
			acc += int64(src[k][x]) * int64(wk)
		}
		dst[x] = ClampU16(acc >> precision)
	}
}

// VertI32 writes the weighted sum of the int32 rows in src to dst.
func VertI32(dst []int32, src [][]int32, w []float64) {
	for x := range dst {
		acc := 0.0
		for k, wk := range w {
			acc += float64(src[k][x]) * wk
		}
		dst[x] = RoundI32(acc)
	}
}

// VertF32 writes the weighted sum of the float32 rows in src to dst.
func VertF32(dst []float32, src [][]float32, w []float64) {
	for x := range dst {
		acc := 0.0
		for k, wk := range w {
			acc += float64(src[k][x]) * wk
		}
		dst[x] = float32(acc)
	}
}

// ClampU8 narrows a descaled accumulator to [0, 255].
func ClampU8(v int32) uint8 {
	return uint8(min(max(v, 0), math.MaxUint8))
}

// ClampU16 narrows a descaled accumulator to [0, 65535].
func ClampU16(v int64) uint16 {
	return uint16(min(max(v, 0), math.MaxUint16))
}

// RoundI32 rounds half away from zero and saturates to the int32 range.
func RoundI32(v float64) int32 {
	v = math.Round(v)
	switch {
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	case math.IsNaN(v):
		return 0
	}
	return int32(v)
}
