package pixel

import (
	"fmt"
	"unsafe"
)

// Kind identifies the representation of a single pixel component.
type Kind uint8

const (
	KindU8 Kind = iota
	KindU16
	KindI32
	KindF32
)

// Size returns the component size in bytes.
func (k Kind) Size() int {
	switch k {
	case KindU8:
		return 1
	case KindU16:
		return 2
	case KindI32, KindF32:
		return 4
	default:
		return 0
	}
}

// String returns a human-readable name for the component kind.
func (k Kind) String() string {
	switch k {
	case KindU8:
		return "u8"
	case KindU16:
		return "u16"
	case KindI32:
		return "i32"
	case KindF32:
		return "f32"
	default:
		return "unknown"
	}
}

// Component is the set of scalar types a pixel may be made of.
type Component interface {
	~uint8 | ~uint16 | ~int32 | ~float32
}

// Pixel is implemented by every pixel format of this package. The methods
// are declared on value receivers of zero-size-overhead array types, so the
// format is a compile-time fact and a zero value answers both questions.
type Pixel interface {
	comparable

	// Kind reports the component representation.
	Kind() Kind

	// Count reports the number of components per pixel.
	Count() int
}

// AlphaPixel is the set of formats whose last component is an alpha channel.
type AlphaPixel interface {
	U8x2 | U8x4 | U16x2 | U16x4

	Pixel
}

// U8 is one byte per pixel (e.g. L8).
type U8 [1]uint8

// U8x2 is two bytes per pixel (e.g. LA8).
type U8x2 [2]uint8

// U8x3 is three bytes per pixel (e.g. RGB8).
type U8x3 [3]uint8

// U8x4 is four bytes per pixel (RGBA8, RGBx8, CMYK8 and other).
type U8x4 [4]uint8

// U16 is one uint16 component per pixel (e.g. L16).
type U16 [1]uint16

// U16x2 is two uint16 components per pixel (e.g. LA16).
type U16x2 [2]uint16

// U16x3 is three uint16 components per pixel (e.g. RGB16).
type U16x3 [3]uint16

// U16x4 is four uint16 components per pixel (e.g. RGBA16).
type U16x4 [4]uint16

// I32 is one int32 component per pixel.
type I32 [1]int32

// F32 is one float32 component per pixel.
type F32 [1]float32

func (U8) Kind() Kind    { return KindU8 }
func (U8x2) Kind() Kind  { return KindU8 }
func (U8x3) Kind() Kind  { return KindU8 }
func (U8x4) Kind() Kind  { return KindU8 }
func (U16) Kind() Kind   { return KindU16 }
func (U16x2) Kind() Kind { return KindU16 }
func (U16x3) Kind() Kind { return KindU16 }
func (U16x4) Kind() Kind { return KindU16 }
func (I32) Kind() Kind   { return KindI32 }
func (F32) Kind() Kind   { return KindF32 }

func (U8) Count() int    { return 1 }
func (U8x2) Count() int  { return 2 }
func (U8x3) Count() int  { return 3 }
func (U8x4) Count() int  { return 4 }
func (U16) Count() int   { return 1 }
func (U16x2) Count() int { return 2 }
func (U16x3) Count() int { return 3 }
func (U16x4) Count() int { return 4 }
func (I32) Count() int   { return 1 }
func (F32) Count() int   { return 1 }

// KindOf returns the component kind of P.
func KindOf[P Pixel]() Kind {
	var p P
	return p.Kind()
}

// CountOf returns the number of components of P.
func CountOf[P Pixel]() int {
	var p P
	return p.Count()
}

// SizeOf returns the size of P in bytes.
func SizeOf[P Pixel]() int {
	var p P
	return int(unsafe.Sizeof(p))
}

// AlignOf returns the required memory alignment of P.
func AlignOf[P Pixel]() int {
	var p P
	return int(unsafe.Alignof(p))
}

// Name returns a short format name such as "U8x4".
func Name[P Pixel]() string {
	var p P
	switch p.Kind() {
	case KindU8:
		return countSuffix("U8", p.Count())
	case KindU16:
		return countSuffix("U16", p.Count())
	case KindI32:
		return countSuffix("I32", p.Count())
	case KindF32:
		return countSuffix("F32", p.Count())
	default:
		return "unknown"
	}
}

func countSuffix(base string, n int) string {
	if n == 1 {
		return base
	}
	return fmt.Sprintf("%sx%d", base, n)
}

// Components reinterprets a row of pixels as its flat component sequence.
// No data is copied. Panics if C does not match the component kind of P.
func Components[C Component, P Pixel](row []P) []C {
	if !kindMatches[C](KindOf[P]()) {
		panic(fmt.Sprintf("pixel: component type does not match %s", Name[P]()))
	}
	if len(row) == 0 {
		return nil
	}
	return unsafe.Slice((*C)(unsafe.Pointer(&row[0])), len(row)*CountOf[P]())
}

// Bytes reinterprets a row of pixels as raw host-order bytes.
func Bytes[P Pixel](row []P) []byte {
	if len(row) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&row[0])), len(row)*SizeOf[P]())
}

func kindMatches[C Component](k Kind) bool {
	var c C
	switch any(c).(type) {
	case uint8:
		return k == KindU8
	case uint16:
		return k == KindU16
	case int32:
		return k == KindI32
	case float32:
		return k == KindF32
	}
	return false
}
