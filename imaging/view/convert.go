package view

import (
	"fmt"

	"github.com/cwbudde/algo-resize/imaging/pixel"
)

// ChangeComponentType copies src into dst converting every component from
// the representation of S to that of D. Both formats must have the same
// number of components and both views the same dimensions; violations
// panic. Equal representations are copied unchanged, 8-bit values are
// widened exactly (x257) and 16-bit values narrowed to their high byte.
//
// src is read through its crop box, so the crop size must match dst.
func ChangeComponentType[S, D pixel.Pixel](src View[S], dst MutView[D]) {
	crop := src.crop
	if crop.Width != dst.width || crop.Height != dst.height {
		panic(fmt.Sprintf("view: size mismatch: source %dx%d, destination %dx%d",
			crop.Width, crop.Height, dst.width, dst.height))
	}
	if pixel.CountOf[S]() != pixel.CountOf[D]() {
		panic(fmt.Sprintf("view: cannot convert %s to %s: component counts differ",
			pixel.Name[S](), pixel.Name[D]()))
	}

	from, to := pixel.KindOf[S](), pixel.KindOf[D]()
	switch {
	case from == to:
		for y, d := range dst.rows {
			s := src.rows[crop.Top+y][crop.Left:crop.Right()]
			copy(pixel.Bytes(d), pixel.Bytes(s))
		}
	case from == pixel.KindU8 && to == pixel.KindU16:
		convertRows(src, dst, pixel.U8ToU16)
	case from == pixel.KindU16 && to == pixel.KindU8:
		convertRows(src, dst, pixel.U16ToU8)
	default:
		panic(fmt.Sprintf("view: unsupported component conversion %s -> %s", from, to))
	}
}

func convertRows[S, D pixel.Pixel, CS, CD pixel.Component](src View[S], dst MutView[D], conv func(CS) CD) {
	crop := src.crop
	for y, d := range dst.rows {
		s := pixel.Components[CS](src.rows[crop.Top+y][crop.Left:crop.Right()])
		dc := pixel.Components[CD](d)
		for i, v := range s {
			dc[i] = conv(v)
		}
	}
}
