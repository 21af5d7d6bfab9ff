package view

import (
	"fmt"
	"iter"
	"math"
	"unsafe"

	"github.com/cwbudde/algo-resize/imaging/pixel"
)

// ratioEpsilon is the tolerance below which two aspect ratios are equal.
const ratioEpsilon = 1e-7

// View is a read-only window over externally owned pixel memory. It keeps
// one slice per row, each spanning the full stored width, plus a crop box
// that tells consumers which region is active. The crop box is metadata: it
// never narrows the rows themselves.
//
// A View does not own its memory. The owner must keep the buffer alive and
// unmodified for as long as the view is used.
type View[P pixel.Pixel] struct {
	width  int
	height int
	crop   CropBox
	rows   [][]P
}

// New builds a view over a raw byte buffer holding width*height pixels in
// row-major order without padding. It panics if the buffer is too small or
// not aligned for the component type of P.
func New[P pixel.Pixel](width, height int, buf []byte) View[P] {
	return FromPixels(width, height, castBuffer[P](width, height, buf))
}

// FromPixels builds a view over an already typed pixel slice. It panics if
// the slice holds fewer than width*height pixels.
func FromPixels[P pixel.Pixel](width, height int, pixels []P) View[P] {
	return View[P]{
		width:  width,
		height: height,
		crop:   fullFrame(width, height),
		rows:   splitRows(width, height, pixels),
	}
}

// NewStrided builds a view over a buffer whose rows start every stride
// bytes. It is meant for foreign buffers with row padding.
func NewStrided[P pixel.Pixel](width, height, stride int, buf []byte) View[P] {
	return View[P]{
		width:  width,
		height: height,
		crop:   fullFrame(width, height),
		rows:   stridedRows[P](width, height, stride, buf),
	}
}

// Width returns the stored width in pixels.
func (v View[P]) Width() int { return v.width }

// Height returns the stored height in pixels.
func (v View[P]) Height() int { return v.height }

// CropBox returns the active region.
func (v View[P]) CropBox() CropBox { return v.crop }

// SetCropBox replaces the active region. It panics with ErrCropEmpty or
// ErrCropOutOfBounds if the box does not describe a region of the view.
func (v *View[P]) SetCropBox(box CropBox) {
	mustValidate(box, v.width, v.height)
	v.crop = box
}

// SetCropBoxToFitDstSize selects the largest region of the view that has the
// aspect ratio of a dstWidth x dstHeight destination, so resizing it does not
// distort the image. A nil centering crops evenly from both sides; otherwise
// each fraction is clamped to [0, 1] and decides how much of the removed
// margin is taken from the left (top) side.
func (v *View[P]) SetCropBoxToFitDstSize(dstWidth, dstHeight int, centering *Centering) {
	if dstWidth <= 0 || dstHeight <= 0 {
		panic(fmt.Sprintf("view: destination size must be positive: %dx%d", dstWidth, dstHeight))
	}

	c := DefaultCentering
	if centering != nil {
		c = centering.clamped()
	}

	width := float64(v.width)
	height := float64(v.height)
	imageRatio := width / height
	requiredRatio := float64(dstWidth) / float64(dstHeight)

	cropWidth, cropHeight := width, height
	switch {
	case math.Abs(imageRatio-requiredRatio) < ratioEpsilon:
	case imageRatio > requiredRatio:
		cropWidth = requiredRatio * height
	default:
		cropHeight = width / requiredRatio
	}

	left := min(int(math.Round((width-cropWidth)*c.X)), v.width-1)
	top := min(int(math.Round((height-cropHeight)*c.Y)), v.height-1)

	v.SetCropBox(CropBox{
		Left:   left,
		Top:    top,
		Width:  max(1, min(int(math.Round(cropWidth)), v.width-left)),
		Height: max(1, min(int(math.Round(cropHeight)), v.height-top)),
	})
}

// Row returns row y spanning the full stored width.
func (v View[P]) Row(y int) []P { return v.rows[y] }

// IterRows yields the rows from start to the bottom of the view.
func (v View[P]) IterRows(start int) iter.Seq[[]P] {
	return iterRows(v.rows, start)
}

// Iter4Rows yields consecutive groups of four rows from [start, end). Rows
// left over at the end of the range are not yielded; callers finish them
// with IterRows.
func (v View[P]) Iter4Rows(start, end int) iter.Seq[[4][]P] {
	return iter4Rows(v.rows, start, end)
}

// Iter2Rows yields consecutive pairs of rows from [start, end). A trailing
// odd row is not yielded.
func (v View[P]) Iter2Rows(start, end int) iter.Seq[[2][]P] {
	return iter2Rows(v.rows, start, end)
}

// IterRowsWithStep yields up to maxCount rows located at y, y+step,
// y+2*step and so on, truncated towards zero. Positions at or past the
// bottom of the view end the sequence.
func (v View[P]) IterRowsWithStep(y, step float64, maxCount int) iter.Seq[[]P] {
	if step <= 0 {
		panic(fmt.Sprintf("view: row step must be positive: %v", step))
	}
	steps := (float64(v.height) - y) / step
	count := min(int(math.Ceil(math.Max(steps, 0))), max(maxCount, 0))

	return func(yield func([]P) bool) {
		last := len(v.rows) - 1
		for i := range count {
			idx := int(y + float64(i)*step)
			if idx > last {
				idx = last
			}
			if idx < 0 {
				idx = 0
			}
			if !yield(v.rows[idx]) {
				return
			}
		}
	}
}

// MutView is a writable window over externally owned pixel memory. Unlike
// View, cropping a MutView physically narrows its rows so writes can never
// leave the target rectangle.
type MutView[P pixel.Pixel] struct {
	width  int
	height int
	rows   [][]P
}

// NewMut builds a mutable view over a raw byte buffer. Preconditions match New.
func NewMut[P pixel.Pixel](width, height int, buf []byte) MutView[P] {
	return MutFromPixels(width, height, castBuffer[P](width, height, buf))
}

// MutFromPixels builds a mutable view over a typed pixel slice.
func MutFromPixels[P pixel.Pixel](width, height int, pixels []P) MutView[P] {
	return MutView[P]{
		width:  width,
		height: height,
		rows:   splitRows(width, height, pixels),
	}
}

// NewMutStrided builds a mutable view over a buffer whose rows start every
// stride bytes.
func NewMutStrided[P pixel.Pixel](width, height, stride int, buf []byte) MutView[P] {
	return MutView[P]{
		width:  width,
		height: height,
		rows:   stridedRows[P](width, height, stride, buf),
	}
}

// Width returns the width in pixels.
func (m MutView[P]) Width() int { return m.width }

// Height returns the height in pixels.
func (m MutView[P]) Height() int { return m.height }

// Row returns row y.
func (m MutView[P]) Row(y int) []P { return m.rows[y] }

// IterRows yields the rows from start to the bottom of the view.
func (m MutView[P]) IterRows(start int) iter.Seq[[]P] {
	return iterRows(m.rows, start)
}

// Iter4Rows yields consecutive groups of four rows from [start, end).
func (m MutView[P]) Iter4Rows(start, end int) iter.Seq[[4][]P] {
	return iter4Rows(m.rows, start, end)
}

// Iter2Rows yields consecutive pairs of rows from [start, end).
func (m MutView[P]) Iter2Rows(start, end int) iter.Seq[[2][]P] {
	return iter2Rows(m.rows, start, end)
}

// Crop consumes m and returns a view of box only: rows outside the box are
// dropped and the remaining rows are narrowed to its columns. m is empty
// afterwards. It panics with ErrCropEmpty or ErrCropOutOfBounds.
func (m *MutView[P]) Crop(box CropBox) MutView[P] {
	mustValidate(box, m.width, m.height)

	rows := make([][]P, box.Height)
	for i := range rows {
		row := m.rows[box.Top+i]
		rows[i] = row[box.Left:box.Right():box.Right()]
	}
	*m = MutView[P]{}

	return MutView[P]{width: box.Width, height: box.Height, rows: rows}
}

// IntoView consumes m and returns a read-only view of the same memory with
// the crop box reset to the full frame. m is empty afterwards.
func (m *MutView[P]) IntoView() View[P] {
	v := View[P]{
		width:  m.width,
		height: m.height,
		crop:   fullFrame(m.width, m.height),
		rows:   m.rows,
	}
	*m = MutView[P]{}
	return v
}

// Overlaps reports whether any memory of a may also be reachable through b.
// The check compares address ranges and is conservative for interleaved
// strided views.
func Overlaps[A, B pixel.Pixel](a View[A], b MutView[B]) bool {
	aLo, aHi := addrRange(a.rows)
	bLo, bHi := addrRange(b.rows)
	if aLo == aHi || bLo == bHi {
		return false
	}
	return aLo < bHi && bLo < aHi
}

func addrRange[P pixel.Pixel](rows [][]P) (lo, hi uintptr) {
	size := uintptr(pixel.SizeOf[P]())
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		start := uintptr(unsafe.Pointer(unsafe.SliceData(row)))
		end := start + uintptr(len(row))*size
		if i == 0 || start < lo {
			lo = start
		}
		if end > hi {
			hi = end
		}
	}
	return lo, hi
}

func checkDims(width, height int) {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("view: dimensions must be positive: %dx%d", width, height))
	}
}

func castBuffer[P pixel.Pixel](width, height int, buf []byte) []P {
	checkDims(width, height)

	size := pixel.SizeOf[P]()
	if need := width * height * size; len(buf) < need {
		panic(fmt.Sprintf("view: buffer of %d bytes is smaller than %dx%d %s (%d bytes)",
			len(buf), width, height, pixel.Name[P](), need))
	}

	ptr := unsafe.Pointer(unsafe.SliceData(buf))
	if uintptr(ptr)%uintptr(pixel.AlignOf[P]()) != 0 {
		panic(fmt.Sprintf("view: buffer is not aligned for %s", pixel.Name[P]()))
	}

	return unsafe.Slice((*P)(ptr), len(buf)/size)
}

func splitRows[P pixel.Pixel](width, height int, pixels []P) [][]P {
	checkDims(width, height)
	if len(pixels) < width*height {
		panic(fmt.Sprintf("view: %d pixels is less than %dx%d", len(pixels), width, height))
	}

	rows := make([][]P, height)
	for y := range rows {
		start := y * width
		rows[y] = pixels[start : start+width : start+width]
	}
	return rows
}

func stridedRows[P pixel.Pixel](width, height, stride int, buf []byte) [][]P {
	checkDims(width, height)

	size := pixel.SizeOf[P]()
	if stride < width*size || stride%pixel.AlignOf[P]() != 0 {
		panic(fmt.Sprintf("view: invalid stride %d for %d %s pixels", stride, width, pixel.Name[P]()))
	}
	if need := (height-1)*stride + width*size; len(buf) < need {
		panic(fmt.Sprintf("view: strided buffer of %d bytes is smaller than %d", len(buf), need))
	}

	ptr := unsafe.Pointer(unsafe.SliceData(buf))
	if uintptr(ptr)%uintptr(pixel.AlignOf[P]()) != 0 {
		panic(fmt.Sprintf("view: buffer is not aligned for %s", pixel.Name[P]()))
	}

	rows := make([][]P, height)
	for y := range rows {
		rows[y] = unsafe.Slice((*P)(unsafe.Add(ptr, y*stride)), width)
	}
	return rows
}

func iterRows[P any](rows [][]P, start int) iter.Seq[[]P] {
	return func(yield func([]P) bool) {
		for y := max(start, 0); y < len(rows); y++ {
			if !yield(rows[y]) {
				return
			}
		}
	}
}

func iter4Rows[P any](rows [][]P, start, end int) iter.Seq[[4][]P] {
	return func(yield func([4][]P) bool) {
		end = min(end, len(rows))
		for y := max(start, 0); y+4 <= end; y += 4 {
			if !yield([4][]P{rows[y], rows[y+1], rows[y+2], rows[y+3]}) {
				return
			}
		}
	}
}

func iter2Rows[P any](rows [][]P, start, end int) iter.Seq[[2][]P] {
	return func(yield func([2][]P) bool) {
		end = min(end, len(rows))
		for y := max(start, 0); y+2 <= end; y += 2 {
			if !yield([2][]P{rows[y], rows[y+1]}) {
				return
			}
		}
	}
}
