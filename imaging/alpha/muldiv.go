package alpha

import (
	"fmt"

	"github.com/cwbudde/algo-resize/imaging/pixel"
	"github.com/cwbudde/algo-resize/imaging/simd"
	"github.com/cwbudde/algo-resize/imaging/view"
	"github.com/cwbudde/algo-resize/internal/arch/registry"
	"github.com/cwbudde/algo-resize/internal/logging"
)

// MulDiv premultiplies and un-premultiplies alpha with the kernels of one
// CPU extension. Construct it with New. A MulDiv may be used from several
// goroutines as long as its extension is not changed concurrently.
type MulDiv struct {
	ext simd.Extension
	ops *registry.Ops
}

// New returns a MulDiv configured by opts.
func New(opts ...Option) *MulDiv {
	cfg := ApplyOptions(opts...)
	m := &MulDiv{}
	m.setExtension(cfg.Extension)
	return m
}

// CPUExtension returns the active extension.
func (m *MulDiv) CPUExtension() simd.Extension { return m.ext }

// SetCPUExtension switches to ext. It fails with
// simd.ErrUnsupportedExtension if the running CPU cannot execute it.
func (m *MulDiv) SetCPUExtension(ext simd.Extension) error {
	if !ext.Supported() {
		return fmt.Errorf("%w: %s", simd.ErrUnsupportedExtension, ext)
	}
	m.setExtension(ext)
	return nil
}

// ForceCPUExtension switches to ext without checking the CPU. Running
// kernels the hardware lacks is a fault, not an error; the caller vouches
// for ext.
func (m *MulDiv) ForceCPUExtension(ext simd.Extension) {
	m.setExtension(ext)
}

func (m *MulDiv) setExtension(ext simd.Extension) {
	m.ext = ext
	m.ops = registry.Global.Resolve(ext)
	logging.Get().Debug("alpha: kernels resolved", "ext", ext, "backends", m.ops.Backends)
}

// Multiply writes the premultiplied form of src's crop box to dst, which
// must have the crop box's dimensions and must not overlap src.
func Multiply[P pixel.AlphaPixel](m *MulDiv, src view.View[P], dst view.MutView[P]) {
	convert(src, dst, m.ops.MulAlphaU8, m.ops.MulAlphaU16)
}

// MultiplyInPlace premultiplies every pixel of img.
func MultiplyInPlace[P pixel.AlphaPixel](m *MulDiv, img view.MutView[P]) {
	convertInPlace(img, m.ops.MulAlphaU8, m.ops.MulAlphaU16)
}

// Divide writes the straight form of src's crop box to dst, which must have
// the crop box's dimensions and must not overlap src.
func Divide[P pixel.AlphaPixel](m *MulDiv, src view.View[P], dst view.MutView[P]) {
	convert(src, dst, m.ops.DivAlphaU8, m.ops.DivAlphaU16)
}

// DivideInPlace un-premultiplies every pixel of img.
func DivideInPlace[P pixel.AlphaPixel](m *MulDiv, img view.MutView[P]) {
	convertInPlace(img, m.ops.DivAlphaU8, m.ops.DivAlphaU16)
}

func convert[P pixel.AlphaPixel](src view.View[P], dst view.MutView[P], u8 registry.AlphaU8Fn, u16 registry.AlphaU16Fn) {
	box := src.CropBox()
	if box.Width != dst.Width() || box.Height != dst.Height() {
		panic(fmt.Sprintf("alpha: source %dx%d does not match destination %dx%d",
			box.Width, box.Height, dst.Width(), dst.Height()))
	}
	if view.Overlaps(src, dst) {
		panic("alpha: source and destination overlap")
	}

	cn := pixel.CountOf[P]()
	switch pixel.KindOf[P]() {
	case pixel.KindU8:
		for y := range box.Height {
			s := src.Row(box.Top + y)[box.Left:box.Right()]
			u8(pixel.Components[uint8](dst.Row(y)), pixel.Components[uint8](s), cn)
		}
	case pixel.KindU16:
		for y := range box.Height {
			s := src.Row(box.Top + y)[box.Left:box.Right()]
			u16(pixel.Components[uint16](dst.Row(y)), pixel.Components[uint16](s), cn)
		}
	}
}

func convertInPlace[P pixel.AlphaPixel](img view.MutView[P], u8 registry.AlphaU8Fn, u16 registry.AlphaU16Fn) {
	cn := pixel.CountOf[P]()
	switch pixel.KindOf[P]() {
	case pixel.KindU8:
		for row := range img.IterRows(0) {
			c := pixel.Components[uint8](row)
			u8(c, c, cn)
		}
	case pixel.KindU16:
		for row := range img.IterRows(0) {
			c := pixel.Components[uint16](row)
			u16(c, c, cn)
		}
	}
}
