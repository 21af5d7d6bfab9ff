package pixel

// U8ToU16 widens an 8-bit component by replicating the byte into both halves,
// which scales by exactly 257 and keeps 0 and 255 at the ends of the range.
func U8ToU16(v uint8) uint16 {
	return uint16(v)<<8 | uint16(v)
}

// U16ToU8 narrows a 16-bit component by keeping its high byte.
func U16ToU8(v uint16) uint8 {
	return uint8(v >> 8)
}

// MaxValue returns the largest value of an integer component kind, or 0 for
// kinds without a fixed range.
func MaxValue(k Kind) uint32 {
	switch k {
	case KindU8:
		return 0xff
	case KindU16:
		return 0xffff
	default:
		return 0
	}
}
