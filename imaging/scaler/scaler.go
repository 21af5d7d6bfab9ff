// Package scaler adapts the resize and alpha engines to the
// golang.org/x/image/draw Scaler interface.
//
// Scale takes the engine path when op is draw.Src, no masks are set, and
// both images are *image.RGBA or *image.NRGBA, or both are *image.Gray.
// Straight-alpha sources are premultiplied into a scratch image first, and
// straight-alpha destinations are divided after resizing. Every other call
// is passed to a fallback draw.Scaler.
package scaler

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/cwbudde/algo-resize/imaging/alpha"
	"github.com/cwbudde/algo-resize/imaging/buffer"
	"github.com/cwbudde/algo-resize/imaging/pixel"
	"github.com/cwbudde/algo-resize/imaging/resize"
	"github.com/cwbudde/algo-resize/imaging/simd"
	"github.com/cwbudde/algo-resize/imaging/view"
	"github.com/cwbudde/algo-resize/internal/logging"
)

var _ draw.Scaler = (*Scaler)(nil)

// Config holds the settings New starts from.
type Config struct {
	Algorithm resize.Algorithm
	Extension simd.Extension
	Fallback  draw.Scaler
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns Lanczos3 on the detected extension with
// draw.CatmullRom as the fallback.
func DefaultConfig() Config {
	return Config{
		Algorithm: resize.Default(),
		Extension: simd.Detect(),
		Fallback:  draw.CatmullRom,
	}
}

// WithAlgorithm sets the resampling algorithm of the engine path.
func WithAlgorithm(alg resize.Algorithm) Option {
	return func(cfg *Config) {
		if alg.Filter().Weight != nil {
			cfg.Algorithm = alg
		}
	}
}

// WithCPUExtension selects the kernels of ext. Extensions the CPU does not
// support are ignored.
func WithCPUExtension(ext simd.Extension) Option {
	return func(cfg *Config) {
		if ext.Supported() {
			cfg.Extension = ext
		}
	}
}

// WithFallback sets the scaler used for calls the engines cannot serve.
func WithFallback(s draw.Scaler) Option {
	return func(cfg *Config) {
		if s != nil {
			cfg.Fallback = s
		}
	}
}

// Scaler is a draw.Scaler backed by the resize engine.
type Scaler struct {
	resizer  *resize.Resizer
	muldiv   *alpha.MulDiv
	fallback draw.Scaler
}

// New returns a Scaler configured by opts.
func New(opts ...Option) *Scaler {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Scaler{
		resizer: resize.New(
			resize.WithAlgorithm(cfg.Algorithm),
			resize.WithCPUExtension(cfg.Extension),
		),
		muldiv:   alpha.New(alpha.WithCPUExtension(cfg.Extension)),
		fallback: cfg.Fallback,
	}
}

// Scale implements draw.Scaler.
func (s *Scaler) Scale(dst draw.Image, dr image.Rectangle, src image.Image, sr image.Rectangle, op draw.Op, opts *draw.Options) {
	if s.scale(dst, dr, src, sr, op, opts) {
		return
	}
	logging.Get().Debug("scaler: fallback",
		"dst", typeName(dst), "src", typeName(src), "op", op)
	s.fallback.Scale(dst, dr, src, sr, op, opts)
}

func (s *Scaler) scale(dst draw.Image, dr image.Rectangle, src image.Image, sr image.Rectangle, op draw.Op, opts *draw.Options) bool {
	if op != draw.Src || (opts != nil && (opts.DstMask != nil || opts.SrcMask != nil)) {
		return false
	}
	if dr.Empty() || sr.Empty() || !dr.In(dst.Bounds()) || !sr.In(src.Bounds()) {
		return false
	}

	switch d := dst.(type) {
	case *image.RGBA:
		return s.scaleToRGBA(rgbaMut(d.Pix, d.Stride, d.Rect, dr), src, sr, false)
	case *image.NRGBA:
		return s.scaleToRGBA(rgbaMut(d.Pix, d.Stride, d.Rect, dr), src, sr, true)
	case *image.Gray:
		g, ok := src.(*image.Gray)
		if !ok {
			return false
		}
		sv := cropped(view.NewStrided[pixel.U8](g.Rect.Dx(), g.Rect.Dy(), g.Stride, g.Pix), g.Rect, sr)
		dv := croppedMut(view.NewMutStrided[pixel.U8](d.Rect.Dx(), d.Rect.Dy(), d.Stride, d.Pix), d.Rect, dr)
		if view.Overlaps(sv, dv) {
			return false
		}
		resize.Resize(s.resizer, sv, dv)
		return true
	}
	return false
}

func (s *Scaler) scaleToRGBA(dv view.MutView[pixel.U8x4], src image.Image, sr image.Rectangle, straightDst bool) bool {
	var sv view.View[pixel.U8x4]
	switch img := src.(type) {
	case *image.RGBA:
		sv = cropped(view.NewStrided[pixel.U8x4](img.Rect.Dx(), img.Rect.Dy(), img.Stride, img.Pix), img.Rect, sr)
		if view.Overlaps(sv, dv) {
			return false
		}
	case *image.NRGBA:
		straight := cropped(view.NewStrided[pixel.U8x4](img.Rect.Dx(), img.Rect.Dy(), img.Stride, img.Pix), img.Rect, sr)
		premul := buffer.New[pixel.U8x4](sr.Dx(), sr.Dy())
		alpha.Multiply(s.muldiv, straight, premul.MutView())
		sv = premul.View()
	default:
		return false
	}

	if straightDst {
		out := buffer.New[pixel.U8x4](dv.Width(), dv.Height())
		resize.Resize(s.resizer, sv, out.MutView())
		alpha.Divide(s.muldiv, out.View(), dv)
		return true
	}
	resize.Resize(s.resizer, sv, dv)
	return true
}

func rgbaMut(pix []uint8, stride int, bounds, r image.Rectangle) view.MutView[pixel.U8x4] {
	return croppedMut(view.NewMutStrided[pixel.U8x4](bounds.Dx(), bounds.Dy(), stride, pix), bounds, r)
}

func cropped[P pixel.Pixel](v view.View[P], bounds, r image.Rectangle) view.View[P] {
	v.SetCropBox(boxOf(bounds, r))
	return v
}

func croppedMut[P pixel.Pixel](m view.MutView[P], bounds, r image.Rectangle) view.MutView[P] {
	return m.Crop(boxOf(bounds, r))
}

func boxOf(bounds, r image.Rectangle) view.CropBox {
	r = r.Sub(bounds.Min)
	return view.CropBox{Left: r.Min.X, Top: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

func typeName(img image.Image) string {
	switch img.(type) {
	case *image.RGBA:
		return "RGBA"
	case *image.NRGBA:
		return "NRGBA"
	case *image.Gray:
		return "Gray"
	case *image.RGBA64:
		return "RGBA64"
	case *image.YCbCr:
		return "YCbCr"
	default:
		return "other"
	}
}
