package testutil

import (
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-resize/imaging/pixel"
)

// Noise returns width*height pixels filled from a seeded source. Integer
// components cover their full range; I32 stays within +-2^23 and F32 within
// [0, 1).
func Noise[P pixel.Pixel](seed int64, width, height int) []P {
	px := make([]P, width*height)
	rng := rand.New(rand.NewSource(seed))

	switch pixel.KindOf[P]() {
	case pixel.KindU8:
		c := pixel.Components[uint8](px)
		for i := range c {
			c[i] = uint8(rng.Intn(256))
		}
	case pixel.KindU16:
		c := pixel.Components[uint16](px)
		for i := range c {
			c[i] = uint16(rng.Intn(65536))
		}
	case pixel.KindI32:
		c := pixel.Components[int32](px)
		for i := range c {
			c[i] = rng.Int31n(1<<24) - 1<<23
		}
	case pixel.KindF32:
		c := pixel.Components[float32](px)
		for i := range c {
			c[i] = rng.Float32()
		}
	}
	return px
}

// Solid returns width*height copies of p.
func Solid[P pixel.Pixel](width, height int, p P) []P {
	px := make([]P, width*height)
	for i := range px {
		px[i] = p
	}
	return px
}

// Components returns the components of a pixel row widened to float64.
func Components[P pixel.Pixel](row []P) []float64 {
	var out []float64
	switch pixel.KindOf[P]() {
	case pixel.KindU8:
		for _, v := range pixel.Components[uint8](row) {
			out = append(out, float64(v))
		}
	case pixel.KindU16:
		for _, v := range pixel.Components[uint16](row) {
			out = append(out, float64(v))
		}
	case pixel.KindI32:
		for _, v := range pixel.Components[int32](row) {
			out = append(out, float64(v))
		}
	case pixel.KindF32:
		for _, v := range pixel.Components[float32](row) {
			out = append(out, float64(v))
		}
	}
	return out
}

// RequirePixelsEqual fails t at the first pixel where got and want differ.
func RequirePixelsEqual[P pixel.Pixel](t *testing.T, got, want []P) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("pixel %d: got %v, want %v", i, got[i], want[i])
		}
	}
}
