//go:build amd64 && !purego

package avx2

import "github.com/cwbudde/algo-resize/internal/arch/generic"

// mulTable and divTable hold the generic per-component results indexed by
// alpha<<8 | color.
var (
	mulTable [256 * 256]uint8
	divTable [256 * 256]uint8
)

func buildAlphaTables() {
	for a := range 256 {
		for c := range 256 {
			mulTable[a<<8|c] = generic.MulU8(uint8(c), uint32(a))
			divTable[a<<8|c] = generic.DivU8(uint8(c), uint32(a))
		}
	}
}

func mulAlphaU8(dst, src []uint8, cn int) {
	lookupAlphaU8(dst, src, cn, &mulTable)
}

func divAlphaU8(dst, src []uint8, cn int) {
	lookupAlphaU8(dst, src, cn, &divTable)
}

// lookupAlphaU8 converts every pixel through tab.
func lookupAlphaU8(dst, src []uint8, cn int, tab *[256 * 256]uint8) {
	last := cn - 1
	for p := 0; p+last < len(src); p += cn {
		base := int(src[p+last]) << 8
		for c := range last {
			dst[p+c] = tab[base|int(src[p+c])]
		}
		dst[p+last] = src[p+last]
	}
}
