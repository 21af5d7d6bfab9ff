// Package buffer provides an owned pixel container that hands out views
// over its own memory. The engines never allocate persistent pixel storage;
// Image is the convenience owner for callers that do not already have one.
package buffer

import (
	"fmt"
	"unsafe"

	"github.com/cwbudde/algo-resize/imaging/pixel"
	"github.com/cwbudde/algo-resize/imaging/view"
)

// Image owns the memory of a width x height raster of P pixels.
type Image[P pixel.Pixel] struct {
	width  int
	height int
	pixels []P
}

// New returns a zero-filled image.
func New[P pixel.Pixel](width, height int) *Image[P] {
	checkDims(width, height)
	return &Image[P]{
		width:  width,
		height: height,
		pixels: make([]P, width*height),
	}
}

// FromBytes wraps buf without copying. buf must hold at least
// width*height pixels and be aligned for the component type of P.
func FromBytes[P pixel.Pixel](width, height int, buf []byte) *Image[P] {
	checkDims(width, height)

	size := pixel.SizeOf[P]()
	if len(buf) < width*height*size {
		panic(fmt.Sprintf("buffer: %d bytes is smaller than %dx%d %s", len(buf), width, height, pixel.Name[P]()))
	}
	ptr := unsafe.Pointer(unsafe.SliceData(buf))
	if uintptr(ptr)%uintptr(pixel.AlignOf[P]()) != 0 {
		panic(fmt.Sprintf("buffer: bytes are not aligned for %s", pixel.Name[P]()))
	}

	return &Image[P]{
		width:  width,
		height: height,
		pixels: unsafe.Slice((*P)(ptr), width*height),
	}
}

// FromPixels wraps pixels without copying.
func FromPixels[P pixel.Pixel](width, height int, pixels []P) *Image[P] {
	checkDims(width, height)
	if len(pixels) < width*height {
		panic(fmt.Sprintf("buffer: %d pixels is less than %dx%d", len(pixels), width, height))
	}
	return &Image[P]{width: width, height: height, pixels: pixels[:width*height]}
}

// Copy returns a deep copy that owns new memory.
func (img *Image[P]) Copy() *Image[P] {
	pixels := make([]P, len(img.pixels))
	copy(pixels, img.pixels)
	return &Image[P]{width: img.width, height: img.height, pixels: pixels}
}

// Width returns the image width in pixels.
func (img *Image[P]) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *Image[P]) Height() int { return img.height }

// Pixels returns the backing pixel slice.
func (img *Image[P]) Pixels() []P { return img.pixels }

// Bytes returns the backing memory as host-order bytes.
func (img *Image[P]) Bytes() []byte { return pixel.Bytes(img.pixels) }

// View returns a read-only view over the whole image.
func (img *Image[P]) View() view.View[P] {
	return view.FromPixels(img.width, img.height, img.pixels)
}

// MutView returns a writable view over the whole image.
func (img *Image[P]) MutView() view.MutView[P] {
	return view.MutFromPixels(img.width, img.height, img.pixels)
}

func checkDims(width, height int) {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("buffer: dimensions must be positive: %dx%d", width, height))
	}
}
