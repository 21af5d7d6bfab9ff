package filter

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Bound is the contiguous source run feeding one destination index.
type Bound struct {
	Start int
	Size  int
}

// Table holds the normalised weights mapping one axis of srcLen pixels onto
// dstLen pixels. Weights is flat with a stride of Window; entries past a
// row's Size are zero.
type Table struct {
	SrcLen  int
	Bounds  []Bound
	Window  int
	Weights []float64

	identity bool
}

// NewTable builds the coefficient table for resampling srcLen pixels to
// dstLen pixels with f. Equal lengths produce the identity table regardless
// of the filter. Source indices outside [0, srcLen) are clamped to the edge.
func NewTable(srcLen, dstLen int, f Filter) *Table {
	if srcLen <= 0 || dstLen <= 0 {
		panic(fmt.Sprintf("filter: axis lengths must be positive: %d -> %d", srcLen, dstLen))
	}
	if srcLen == dstLen {
		return identityTable(srcLen)
	}

	scale := float64(srcLen) / float64(dstLen)
	fscale := math.Max(scale, 1)
	support := f.Support * fscale
	window := int(math.Ceil(support))*2 + 1

	t := &Table{
		SrcLen:  srcLen,
		Bounds:  make([]Bound, dstLen),
		Window:  window,
		Weights: make([]float64, dstLen*window),
	}

	last := srcLen - 1
	for d := range dstLen {
		s := (float64(d)+0.5)*scale - 0.5
		x0 := int(math.Ceil(s - support))
		x1 := int(math.Floor(s + support))

		lo := clampIndex(x0, last)
		hi := clampIndex(x1, last)
		ws := t.Weights[d*window : d*window+window]

		if hi >= lo && hi-lo < window {
			for x := x0; x <= x1; x++ {
				ws[clampIndex(x, last)-lo] += f.Weight((float64(x) - s) / fscale)
			}
		}
		start, size := trim(ws[:max(hi-lo+1, 0)])
		run := ws[start : start+size]

		sum := 0.0
		if size > 0 {
			sum = vecmath.Sum(run)
		}
		if size == 0 || sum == 0 {
			clear(ws)
			ws[0] = 1
			t.Bounds[d] = Bound{Start: clampIndex(int(math.Round(s)), last), Size: 1}
			continue
		}

		if start > 0 {
			copy(ws, run)
			clear(ws[size:])
		}
		vecmath.ScaleBlockInPlace(ws[:size], 1/sum)
		t.Bounds[d] = Bound{Start: lo + start, Size: size}
	}

	t.shrinkWindow()
	return t
}

func identityTable(n int) *Table {
	t := &Table{
		SrcLen:   n,
		Bounds:   make([]Bound, n),
		Window:   1,
		Weights:  make([]float64, n),
		identity: true,
	}
	for i := range n {
		t.Bounds[i] = Bound{Start: i, Size: 1}
		t.Weights[i] = 1
	}
	return t
}

// Len returns the destination length.
func (t *Table) Len() int { return len(t.Bounds) }

// Row returns the weights of destination index i.
func (t *Table) Row(i int) []float64 {
	off := i * t.Window
	return t.Weights[off : off+t.Bounds[i].Size]
}

// IsIdentity reports whether the table maps every index onto itself with
// a unit weight.
func (t *Table) IsIdentity() bool { return t.identity }

// Span returns the half-open range of source indices referenced by any
// destination index.
func (t *Table) Span() (start, end int) {
	start = t.SrcLen
	for _, b := range t.Bounds {
		start = min(start, b.Start)
		end = max(end, b.Start+b.Size)
	}
	return start, end
}

// shrinkWindow repacks the weights with the smallest stride that holds the
// longest run.
func (t *Table) shrinkWindow() {
	window := 1
	for _, b := range t.Bounds {
		window = max(window, b.Size)
	}
	if window == t.Window {
		return
	}
	packed := make([]float64, len(t.Bounds)*window)
	for i, b := range t.Bounds {
		copy(packed[i*window:], t.Weights[i*t.Window:i*t.Window+b.Size])
	}
	t.Window = window
	t.Weights = packed
}

// FixedTable is a Table with weights scaled to integers summing to
// 1<<Precision.
type FixedTable struct {
	Bounds    []Bound
	Window    int
	Weights   []int32
	Precision uint
}

// Fixed converts the table to fixed point. Each row's rounding remainder
// is added to its largest-magnitude weight so rows sum exactly to
// 1<<precision.
func (t *Table) Fixed(precision uint) *FixedTable {
	if precision == 0 || precision > 30 {
		panic(fmt.Sprintf("filter: fixed-point precision out of range: %d", precision))
	}
	one := int64(1) << precision
	ft := &FixedTable{
		Bounds:    t.Bounds,
		Window:    t.Window,
		Weights:   make([]int32, len(t.Weights)),
		Precision: precision,
	}

	for i, b := range t.Bounds {
		off := i * t.Window
		src := t.Weights[off : off+b.Size]
		dst := ft.Weights[off : off+b.Size]

		var total int64
		largest := 0
		for j, w := range src {
			v := int64(math.Round(w * float64(one)))
			dst[j] = int32(v)
			total += v
			if math.Abs(w) > math.Abs(src[largest]) {
				largest = j
			}
		}
		dst[largest] += int32(one - total)
	}
	return ft
}

// Len returns the destination length.
func (ft *FixedTable) Len() int { return len(ft.Bounds) }

// Row returns the fixed-point weights of destination index i.
func (ft *FixedTable) Row(i int) []int32 {
	off := i * ft.Window
	return ft.Weights[off : off+ft.Bounds[i].Size]
}

func trim(ws []float64) (start, size int) {
	end := len(ws)
	for start < end && ws[start] == 0 {
		start++
	}
	for end > start && ws[end-1] == 0 {
		end--
	}
	return start, end - start
}

func clampIndex(x, last int) int {
	return min(max(x, 0), last)
}
