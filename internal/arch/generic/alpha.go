package generic

// MulAlphaU8 premultiplies 8-bit color by alpha: (c*a + 127) / 255.
func MulAlphaU8(dst, src []uint8, cn int) {
	last := cn - 1
	for i := 0; i+last < len(src); i += cn {
		a := uint32(src[i+last])
		for c := range last {
			dst[i+c] = MulU8(src[i+c], a)
		}
		dst[i+last] = src[i+last]
	}
}

// DivAlphaU8 reverses MulAlphaU8. Color is zero where alpha is zero.
func DivAlphaU8(dst, src []uint8, cn int) {
	last := cn - 1
	for i := 0; i+last < len(src); i += cn {
		a := uint32(src[i+last])
		for c := range last {
			dst[i+c] = DivU8(src[i+c], a)
		}
		dst[i+last] = src[i+last]
	}
}

// MulAlphaU16 premultiplies 16-bit color by alpha: (c*a + 32767) / 65535.
func MulAlphaU16(dst, src []uint16, cn int) {
	last := cn - 1
	for i := 0; i+last < len(src); i += cn {
		a := uint64(src[i+last])
		for c := range last {
			dst[i+c] = MulU16(src[i+c], a)
		}
		dst[i+last] = src[i+last]
	}
}

// DivAlphaU16 reverses MulAlphaU16. Color is zero where alpha is zero.
func DivAlphaU16(dst, src []uint16, cn int) {
	last := cn - 1
	for i := 0; i+last < len(src); i += cn {
		a := uint64(src[i+last])
		for c := range last {
			dst[i+c] = DivU16(src[i+c], a)
		}
		dst[i+last] = src[i+last]
	}
}

// MulU8 is the 8-bit premultiply of a single component.
func MulU8(c uint8, a uint32) uint8 {
	return uint8((uint32(c)*a + 127) / 255)
}

// DivU8 is the 8-bit un-premultiply of a single component.
func DivU8(c uint8, a uint32) uint8 {
	if a == 0 {
		return 0
	}
	return uint8(min((uint32(c)*255+a/2)/a, 255))
}

// MulU16 is the 16-bit premultiply of a single component.
func MulU16(c uint16, a uint64) uint16 {
	return uint16((uint64(c)*a + 32767) / 65535)
}

// DivU16 is the 16-bit un-premultiply of a single component.
func DivU16(c uint16, a uint64) uint16 {
	if a == 0 {
		return 0
	}
	return uint16(min((uint64(c)*65535+a/2)/a, 65535))
}
