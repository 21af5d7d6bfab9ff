package resize

import (
	"github.com/cwbudde/algo-resize/imaging/filter"
	"github.com/cwbudde/algo-resize/imaging/pixel"
	"github.com/cwbudde/algo-resize/imaging/view"
	"github.com/cwbudde/algo-resize/internal/arch/registry"
	"github.com/cwbudde/algo-resize/internal/scratch"
)

const (
	precisionU8  = 14
	precisionU16 = 22
)

// convolve runs the separable two-pass resample of box into dst.
func convolve[P pixel.Pixel](r *Resizer, src view.View[P], box view.CropBox, dst view.MutView[P]) {
	f := r.alg.filter
	dw, dh := dst.Width(), dst.Height()
	ht := filter.NewTable(box.Width, dw, f)
	vt := filter.NewTable(box.Height, dh, f)

	if vt.IsIdentity() {
		horizontalPass(r.ops, src, box, box.Top, box.Bottom(), rowsOf(dst), ht)
		return
	}

	start, end := vt.Span()
	var rows [][]P
	if ht.IsIdentity() {
		rows = make([][]P, end-start)
		for i := range rows {
			rows[i] = src.Row(box.Top + start + i)[box.Left:box.Right()]
		}
	} else {
		buf := r.pool.Get(dw * (end - start) * pixel.SizeOf[P]())
		defer r.pool.Put(buf)

		tmp := view.MutFromPixels(dw, end-start, scratch.Pixels[P](buf, dw*(end-start)))
		rows = rowsOf(tmp)
		horizontalPass(r.ops, src, box, box.Top+start, box.Top+end, rows, ht)
	}

	verticalPass(r.ops, rows, start, vt, dst)
}

func rowsOf[P pixel.Pixel](m view.MutView[P]) [][]P {
	rows := make([][]P, 0, m.Height())
	for row := range m.IterRows(0) {
		rows = append(rows, row)
	}
	return rows
}

// horizontalPass resamples source rows [start, end) of the crop box into
// dst, one batch of ops.RowBatch rows at a time.
func horizontalPass[P pixel.Pixel](ops *registry.Ops, src view.View[P], box view.CropBox, start, end int, dst [][]P, t *filter.Table) {
	run := horizontalKernel[P](ops, t)
	cropped := make([][]P, 0, 4)

	y := start
	emit := func(batch [][]P) {
		cropped = cropped[:0]
		for _, row := range batch {
			cropped = append(cropped, row[box.Left:box.Right()])
		}
		first := y - start
		run(dst[first:first+len(batch)], cropped)
		y += len(batch)
	}

	switch ops.RowBatch {
	case 4:
		for rows := range src.Iter4Rows(start, end) {
			emit(rows[:])
		}
	case 2:
		for rows := range src.Iter2Rows(start, end) {
			emit(rows[:])
		}
	}
	for row := range src.IterRows(y) {
		if y >= end {
			break
		}
		emit([][]P{row})
	}
}

// horizontalKernel binds the component-typed kernel for P once per call.
func horizontalKernel[P pixel.Pixel](ops *registry.Ops, t *filter.Table) func(dst, src [][]P) {
	cn := pixel.CountOf[P]()
	switch pixel.KindOf[P]() {
	case pixel.KindU8:
		ft := t.Fixed(precisionU8)
		var d, s [][]uint8
		return func(dst, src [][]P) {
			d, s = components(d, dst), components(s, src)
			ops.HorizU8(d, s, cn, ft)
		}
	case pixel.KindU16:
		ft := t.Fixed(precisionU16)
		var d, s [][]uint16
		return func(dst, src [][]P) {
			d, s = components(d, dst), components(s, src)
			ops.HorizU16(d, s, cn, ft)
		}
	case pixel.KindI32:
		var d, s [][]int32
		return func(dst, src [][]P) {
			d, s = components(d, dst), components(s, src)
			ops.HorizI32(d, s, t)
		}
	default:
		var d, s [][]float32
		return func(dst, src [][]P) {
			d, s = components(d, dst), components(s, src)
			ops.HorizF32(d, s, t)
		}
	}
}

// verticalPass reduces the intermediate rows, which hold source rows
// starting at index offset of the crop box, into dst.
func verticalPass[P pixel.Pixel](ops *registry.Ops, rows [][]P, offset int, t *filter.Table, dst view.MutView[P]) {
	switch pixel.KindOf[P]() {
	case pixel.KindU8:
		ft := t.Fixed(precisionU8)
		src := components[uint8](nil, rows)
		for y := range dst.Height() {
			b := ft.Bounds[y]
			ops.VertU8(pixel.Components[uint8](dst.Row(y)), src[b.Start-offset:b.Start-offset+b.Size], ft.Row(y), ft.Precision)
		}
	case pixel.KindU16:
		ft := t.Fixed(precisionU16)
		src := components[uint16](nil, rows)
		for y := range dst.Height() {
			b := ft.Bounds[y]
			ops.VertU16(pixel.Components[uint16](dst.Row(y)), src[b.Start-offset:b.Start-offset+b.Size], ft.Row(y), ft.Precision)
		}
	case pixel.KindI32:
		src := components[int32](nil, rows)
		for y := range dst.Height() {
			b := t.Bounds[y]
			ops.VertI32(pixel.Components[int32](dst.Row(y)), src[b.Start-offset:b.Start-offset+b.Size], t.Row(y))
		}
	default:
		src := components[float32](nil, rows)
		for y := range dst.Height() {
			b := t.Bounds[y]
			ops.VertF32(pixel.Components[float32](dst.Row(y)), src[b.Start-offset:b.Start-offset+b.Size], t.Row(y))
		}
	}
}

// components reinterprets every row as its component slice, reusing buf.
func components[C pixel.Component, P pixel.Pixel](buf [][]C, rows [][]P) [][]C {
	buf = buf[:0]
	for _, row := range rows {
		buf = append(buf, pixel.Components[C](row))
	}
	return buf
}
