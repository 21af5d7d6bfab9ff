package resize

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-resize/imaging/buffer"
	"github.com/cwbudde/algo-resize/imaging/filter"
	"github.com/cwbudde/algo-resize/imaging/pixel"
	"github.com/cwbudde/algo-resize/imaging/simd"
	"github.com/cwbudde/algo-resize/imaging/view"
	"github.com/cwbudde/algo-resize/internal/testutil"
)

func algorithms() []Algorithm {
	algs := []Algorithm{Nearest(), SuperSampling(filter.Bilinear(), 2)}
	for _, name := range filter.Names() {
		f, _ := filter.ByName(name)
		algs = append(algs, Convolution(f))
	}
	return algs
}

func resizePixels[P pixel.Pixel](r *Resizer, src []P, sw, sh, dw, dh int) []P {
	dst := make([]P, dw*dh)
	Resize(r, view.FromPixels(sw, sh, src), view.MutFromPixels(dw, dh, dst))
	return dst
}

func checkIdentity[P pixel.Pixel](t *testing.T) {
	t.Helper()
	const w, h = 13, 7
	src := testutil.Noise[P](11, w, h)
	for _, alg := range algorithms() {
		got := resizePixels(New(WithAlgorithm(alg)), src, w, h, w, h)
		testutil.RequirePixelsEqual(t, got, src)
	}
}

func TestIdentityAllFormats(t *testing.T) {
	t.Run("U8", checkIdentity[pixel.U8])
	t.Run("U8x2", checkIdentity[pixel.U8x2])
	t.Run("U8x3", checkIdentity[pixel.U8x3])
	t.Run("U8x4", checkIdentity[pixel.U8x4])
	t.Run("U16", checkIdentity[pixel.U16])
	t.Run("U16x2", checkIdentity[pixel.U16x2])
	t.Run("U16x3", checkIdentity[pixel.U16x3])
	t.Run("U16x4", checkIdentity[pixel.U16x4])
	t.Run("I32", checkIdentity[pixel.I32])
	t.Run("F32", checkIdentity[pixel.F32])
}

// Rows repeat one random pattern, so an unchanged width must reproduce it
// exactly whatever the vertical scale.
func checkAxisIdentity[P pixel.Pixel](t *testing.T) {
	t.Helper()
	const w, h = 11, 6
	line := testutil.Noise[P](5, w, 1)
	src := make([]P, 0, w*h)
	for range h {
		src = append(src, line...)
	}
	for _, alg := range algorithms() {
		for _, dh := range []int{1, 3, 17} {
			got := resizePixels(New(WithAlgorithm(alg)), src, w, h, w, dh)
			for y := range dh {
				testutil.RequirePixelsEqual(t, got[y*w:(y+1)*w], line)
			}
		}
	}
}

func TestUnchangedAxisIsExact(t *testing.T) {
	t.Run("U8x4", checkAxisIdentity[pixel.U8x4])
	t.Run("U16x3", checkAxisIdentity[pixel.U16x3])
	t.Run("I32", checkAxisIdentity[pixel.I32])
}

func TestConstantImageStaysConstant(t *testing.T) {
	src := testutil.Solid(23, 17, pixel.U8x4{7, 128, 255, 0})
	for _, alg := range algorithms() {
		for _, size := range [][2]int{{5, 3}, {40, 41}, {1, 1}, {23, 60}} {
			got := resizePixels(New(WithAlgorithm(alg)), src, 23, 17, size[0], size[1])
			testutil.RequirePixelsEqual(t, got, testutil.Solid(size[0], size[1], pixel.U8x4{7, 128, 255, 0}))
		}
	}

	src16 := testutil.Solid(9, 9, pixel.U16{54321})
	got16 := resizePixels(New(), src16, 9, 9, 4, 20)
	testutil.RequirePixelsEqual(t, got16, testutil.Solid(4, 20, pixel.U16{54321}))
}

func TestBilinearUpscaleMonotonic(t *testing.T) {
	src := []pixel.U8{{0}, {100}, {200}, {255}}
	got := resizePixels(New(WithAlgorithm(Convolution(filter.Bilinear()))), src, 2, 2, 4, 4)

	lo, hi := int(src[0][0]), int(src[0][0])
	for _, p := range src {
		lo, hi = min(lo, int(p[0])), max(hi, int(p[0]))
	}

	at := func(x, y int) int { return int(got[y*4+x][0]) }
	for y := range 4 {
		for x := range 4 {
			v := at(x, y)
			if v < lo || v > hi {
				t.Fatalf("(%d,%d) = %d out of corner range", x, y, v)
			}
			if x > 0 && v < at(x-1, y) {
				t.Fatalf("row %d not monotonic at x=%d", y, x)
			}
			if y > 0 && v < at(x, y-1) {
				t.Fatalf("column %d not monotonic at y=%d", x, y)
			}
		}
	}
	if at(0, 0) != 0 || at(3, 0) != 100 || at(0, 3) != 200 || at(3, 3) != 255 {
		t.Fatalf("corners not preserved: %v", got)
	}
}

func TestBoxDownscale(t *testing.T) {
	src := []pixel.U8{
		{10}, {20}, {30}, {50},
		{30}, {40}, {70}, {90},
		{0}, {0}, {255}, {255},
		{2}, {2}, {1}, {1},
	}
	got := resizePixels(New(WithAlgorithm(Convolution(filter.Box()))), src, 4, 4, 2, 2)
	testutil.RequirePixelsEqual(t, got, []pixel.U8{{25}, {60}, {1}, {128}})
}

func TestNearestSelection(t *testing.T) {
	src := []pixel.U8{{0}, {1}, {2}, {3}, {4}}
	r := New(WithAlgorithm(Nearest()))

	testutil.RequirePixelsEqual(t, resizePixels(r, src, 5, 1, 2, 1), []pixel.U8{{1}, {3}})
	testutil.RequirePixelsEqual(t, resizePixels(r, src, 1, 5, 1, 2), []pixel.U8{{1}, {3}})
	testutil.RequirePixelsEqual(t, resizePixels(r, src[:2], 2, 1, 4, 1), []pixel.U8{{0}, {0}, {1}, {1}})
}

func TestNearestTruncatesRowPositions(t *testing.T) {
	// 3 -> 2 rows: step 1.5, positions 0.75 and 2.25 select rows 0 and 2.
	src := []pixel.U8{{10}, {20}, {30}}
	got := resizePixels(New(WithAlgorithm(Nearest())), src, 1, 3, 1, 2)
	testutil.RequirePixelsEqual(t, got, []pixel.U8{{10}, {30}})
}

func TestResizeReadsCropBox(t *testing.T) {
	const w, h = 20, 16
	full := buffer.FromPixels(w, h, testutil.Noise[pixel.U8x3](9, w, h))
	box := view.CropBox{Left: 3, Top: 2, Width: 11, Height: 9}

	cropped := buffer.New[pixel.U8x3](box.Width, box.Height)
	for y := range box.Height {
		copy(cropped.Pixels()[y*box.Width:], full.View().Row(box.Top + y)[box.Left:box.Right()])
	}

	for _, alg := range algorithms() {
		r := New(WithAlgorithm(alg))
		want := buffer.New[pixel.U8x3](7, 5)
		Resize(r, cropped.View(), want.MutView())

		src := full.View()
		src.SetCropBox(box)
		got := buffer.New[pixel.U8x3](7, 5)
		Resize(r, src, got.MutView())

		testutil.RequirePixelsEqual(t, got.Pixels(), want.Pixels())
	}
}

func TestResizeIntoCroppedDestination(t *testing.T) {
	src := testutil.Solid(8, 8, pixel.U8x4{1, 2, 3, 4})
	dst := buffer.New[pixel.U8x4](10, 10)
	mv := dst.MutView()
	inner := mv.Crop(view.CropBox{Left: 2, Top: 3, Width: 5, Height: 4})

	Resize(New(), view.FromPixels(8, 8, src), inner)

	for y := range 10 {
		for x := range 10 {
			got := dst.Pixels()[y*10+x]
			inside := x >= 2 && x < 7 && y >= 3 && y < 7
			if inside && got != (pixel.U8x4{1, 2, 3, 4}) {
				t.Fatalf("(%d,%d) = %v inside target", x, y, got)
			}
			if !inside && got != (pixel.U8x4{}) {
				t.Fatalf("(%d,%d) = %v written outside target", x, y, got)
			}
		}
	}
}

func TestSuperSamplingMatchesTwoStepPipeline(t *testing.T) {
	const sw, sh = 64, 48
	src := testutil.Noise[pixel.U8x4](2, sw, sh)

	got := resizePixels(New(WithAlgorithm(SuperSampling(filter.CatmullRom(), 2))), src, sw, sh, 8, 6)

	mid := resizePixels(New(WithAlgorithm(Nearest())), src, sw, sh, 16, 12)
	want := resizePixels(New(WithAlgorithm(Convolution(filter.CatmullRom()))), mid, 16, 12, 8, 6)

	testutil.RequirePixelsEqual(t, got, want)
}

func checkParity[P pixel.Pixel](t *testing.T, eps float64) {
	t.Helper()
	sizes := []struct{ sw, sh, dw, dh int }{
		{37, 23, 19, 41},
		{100, 7, 13, 29},
		{5, 50, 50, 5},
		{64, 64, 31, 33},
	}
	for _, alg := range []Algorithm{Default(), Convolution(filter.Bilinear()), Convolution(filter.Mitchell())} {
		for _, sz := range sizes {
			src := testutil.Noise[P](int64(sz.sw*sz.dh), sz.sw, sz.sh)
			ref := New(WithAlgorithm(alg), WithCPUExtension(simd.None))
			want := resizePixels(ref, src, sz.sw, sz.sh, sz.dw, sz.dh)

			for _, ext := range simd.Extensions {
				r := New(WithAlgorithm(alg))
				r.ForceCPUExtension(ext)
				got := resizePixels(r, src, sz.sw, sz.sh, sz.dw, sz.dh)
				if eps == 0 {
					testutil.RequirePixelsEqual(t, got, want)
					continue
				}
				testutil.RequirePixelsNear(t, got, want, eps)
			}
		}
	}
}

func TestExtensionParity(t *testing.T) {
	t.Run("U8", func(t *testing.T) { checkParity[pixel.U8](t, 0) })
	t.Run("U8x3", func(t *testing.T) { checkParity[pixel.U8x3](t, 0) })
	t.Run("U8x4", func(t *testing.T) { checkParity[pixel.U8x4](t, 0) })
	t.Run("U16x2", func(t *testing.T) { checkParity[pixel.U16x2](t, 0) })
	t.Run("U16x4", func(t *testing.T) { checkParity[pixel.U16x4](t, 0) })
	t.Run("I32", func(t *testing.T) { checkParity[pixel.I32](t, 0) })
	t.Run("F32", func(t *testing.T) { checkParity[pixel.F32](t, 1e-5) })
}

func TestF32Downscale(t *testing.T) {
	src := make([]pixel.F32, 16)
	for i := range src {
		src[i] = pixel.F32{float32(i % 4)}
	}
	got := resizePixels(New(WithAlgorithm(Convolution(filter.Box()))), src, 4, 4, 2, 2)
	want := []float64{0.5, 2.5, 0.5, 2.5}
	testutil.RequireSliceNearlyEqual(t, testutil.Components(got), want, 1e-6)
}

func TestConstantF32StaysConstant(t *testing.T) {
	sizes := []struct{ sw, sh, dw, dh int }{
		{1, 4, 1, 2},
		{4, 1, 2, 1},
		{9, 13, 4, 5},
		{5, 3, 12, 11},
		{16, 6, 7, 19},
	}
	const c = 0.37
	for _, ext := range simd.Extensions {
		for _, alg := range algorithms() {
			for _, sz := range sizes {
				r := New(WithAlgorithm(alg))
				r.ForceCPUExtension(ext)
				src := testutil.Solid(sz.sw, sz.sh, pixel.F32{c})
				got := resizePixels(r, src, sz.sw, sz.sh, sz.dw, sz.dh)
				for i, p := range got {
					if math.Abs(float64(p[0])-c) > 1e-6 {
						t.Fatalf("%v %v %dx%d->%dx%d: pixel %d = %v, want %v",
							ext, alg, sz.sw, sz.sh, sz.dw, sz.dh, i, p[0], c)
					}
				}
			}
		}
	}
}

func TestI32SaturatesOvershoot(t *testing.T) {
	src := []pixel.I32{{math.MaxInt32}, {math.MinInt32}, {math.MaxInt32}, {math.MinInt32}}
	got := resizePixels(New(WithAlgorithm(Convolution(filter.Lanczos3()))), src, 4, 1, 9, 1)
	if got[0][0] != math.MaxInt32 {
		t.Fatalf("edge sample = %d, want saturation at MaxInt32", got[0][0])
	}
}

func TestOverlapPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	px := make([]pixel.U8x4, 64)
	Resize(New(), view.FromPixels(8, 8, px), view.MutFromPixels(4, 4, px))
}

func BenchmarkResizeU8x4(b *testing.B) {
	src := testutil.Noise[pixel.U8x4](1, 1920, 1080)
	dst := make([]pixel.U8x4, 640*360)
	for _, ext := range simd.Extensions {
		if !ext.Supported() {
			continue
		}
		b.Run(ext.String(), func(b *testing.B) {
			r := New(WithCPUExtension(ext))
			sv := view.FromPixels(1920, 1080, src)
			dv := view.MutFromPixels(640, 360, dst)
			b.ReportAllocs()
			for b.Loop() {
				Resize(r, sv, dv)
			}
		})
	}
}
