package resize

import (
	"github.com/cwbudde/algo-resize/imaging/pixel"
	"github.com/cwbudde/algo-resize/imaging/view"
	"github.com/cwbudde/algo-resize/internal/logging"
	"github.com/cwbudde/algo-resize/internal/scratch"
)

// Resize fills dst with the crop box of src resampled to dst's size.
//
// src and dst must not share memory. Resize panics on overlap; crop and
// dimension invariants are already enforced by the views.
func Resize[P pixel.Pixel](r *Resizer, src view.View[P], dst view.MutView[P]) {
	if view.Overlaps(src, dst) {
		panic("resize: source and destination overlap")
	}
	box := src.CropBox()

	if logging.Enabled() {
		logging.Get().Debug("resize",
			"format", pixel.Name[P](),
			"algorithm", r.alg.String(),
			"ext", r.ext,
			"src", box,
			"dst_width", dst.Width(),
			"dst_height", dst.Height())
	}

	if box.Width == dst.Width() && box.Height == dst.Height() {
		copyCrop(src, box, dst)
		return
	}

	switch r.alg.kind {
	case KindNearest:
		resizeNearest(src, box, dst)
	case KindSuperSampling:
		superSample(r, src, box, dst)
	default:
		convolve(r, src, box, dst)
	}
}

func copyCrop[P pixel.Pixel](src view.View[P], box view.CropBox, dst view.MutView[P]) {
	y := box.Top
	for row := range dst.IterRows(0) {
		copy(row, src.Row(y)[box.Left:box.Right()])
		y++
	}
}

// resizeNearest point-samples pixel centres: source column
// left + trunc((x+0.5)*step), and rows from IterRowsWithStep.
func resizeNearest[P pixel.Pixel](src view.View[P], box view.CropBox, dst view.MutView[P]) {
	dw, dh := dst.Width(), dst.Height()

	xstep := float64(box.Width) / float64(dw)
	cols := make([]int, dw)
	for x := range cols {
		cols[x] = box.Left + min(int((float64(x)+0.5)*xstep), box.Width-1)
	}

	ystep := float64(box.Height) / float64(dh)
	y := 0
	for row := range src.IterRowsWithStep(float64(box.Top)+ystep/2, ystep, dh) {
		d := dst.Row(y)
		for x, sx := range cols {
			d[x] = row[sx]
		}
		y++
	}
}

// superSample point-samples the crop box down to multiplicity times the
// destination size before convolving.
func superSample[P pixel.Pixel](r *Resizer, src view.View[P], box view.CropBox, dst view.MutView[P]) {
	m := r.alg.multiplicity
	sw := min(box.Width, dst.Width()*m)
	sh := min(box.Height, dst.Height()*m)
	if sw == box.Width && sh == box.Height {
		convolve(r, src, box, dst)
		return
	}

	buf := r.pool.Get(sw * sh * pixel.SizeOf[P]())
	defer r.pool.Put(buf)

	tmp := view.MutFromPixels(sw, sh, scratch.Pixels[P](buf, sw*sh))
	resizeNearest(src, box, tmp)

	reduced := tmp.IntoView()
	convolve(r, reduced, reduced.CropBox(), dst)
}
