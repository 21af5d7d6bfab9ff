package generic

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-resize/imaging/filter"
)

func TestHorizU8Identity(t *testing.T) {
	src := []uint8{10, 20, 30, 200, 210, 220, 0, 128, 255}
	dst := make([]uint8, len(src))
	ft := filter.NewTable(3, 3, filter.Lanczos3()).Fixed(14)

	HorizU8([][]uint8{dst}, [][]uint8{src}, 3, ft)
	for i := range src {
		if dst[i] != src[i] {
			t.Fatalf("component %d: got %d, want %d", i, dst[i], src[i])
		}
	}
}

func TestHorizU8BoxAverage(t *testing.T) {
	src := []uint8{0, 100, 11, 12, 255, 255, 1, 2}
	dst := make([]uint8, 4)
	ft := filter.NewTable(4, 2, filter.Box()).Fixed(14)

	HorizU8([][]uint8{dst}, [][]uint8{src}, 2, ft)
	want := []uint8{6, 56, 128, 129}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("component %d: got %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestVertU16Rounding(t *testing.T) {
	a := []uint16{0, 65535, 1}
	b := []uint16{1, 65535, 2}
	dst := make([]uint16, 3)
	half := int32(1) << 21

	VertU16(dst, [][]uint16{a, b}, []int32{half, half}, 22)
	want := []uint16{1, 65535, 2}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("component %d: got %d, want %d", i, dst[i], want[i])
		}
	}
}

func TestVertU8Clamps(t *testing.T) {
	one := int32(1) << 14
	dst := make([]uint8, 2)
	VertU8(dst, [][]uint8{{255, 0}, {0, 255}}, []int32{2 * one, -one}, 14)
	if dst[0] != 255 || dst[1] != 0 {
		t.Fatalf("got %v, want [255 0]", dst)
	}
}

func TestRoundI32(t *testing.T) {
	tests := []struct {
		in   float64
		want int32
	}{
		{0.5, 1},
		{-0.5, -1},
		{2.4, 2},
		{1e12, math.MaxInt32},
		{-1e12, math.MinInt32},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := RoundI32(tt.in); got != tt.want {
			t.Errorf("RoundI32(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestVertF32(t *testing.T) {
	dst := make([]float32, 2)
	VertF32(dst, [][]float32{{1, 2}, {3, 4}}, []float64{0.25, 0.75})
	if dst[0] != 2.5 || dst[1] != 3.5 {
		t.Fatalf("got %v, want [2.5 3.5]", dst)
	}
}

func TestAlphaU8(t *testing.T) {
	row := []uint8{255, 128, 0, 128, 200, 200, 200, 0}
	MulAlphaU8(row, row, 4)
	want := []uint8{128, 64, 0, 128, 0, 0, 0, 0}
	for i := range want {
		if row[i] != want[i] {
			t.Fatalf("mul component %d: got %d, want %d", i, row[i], want[i])
		}
	}

	DivAlphaU8(row, row, 4)
	want = []uint8{255, 128, 0, 128, 0, 0, 0, 0}
	for i := range want {
		if row[i] != want[i] {
			t.Fatalf("div component %d: got %d, want %d", i, row[i], want[i])
		}
	}
}

func TestDivClampsOverflowingColor(t *testing.T) {
	if got := DivU8(200, 100); got != 255 {
		t.Fatalf("DivU8(200, 100) = %d, want 255", got)
	}
	if got := DivU16(60000, 1000); got != 65535 {
		t.Fatalf("DivU16(60000, 1000) = %d, want 65535", got)
	}
}

func TestAlphaU16Extremes(t *testing.T) {
	row := []uint16{65535, 65535, 12345, 0}
	MulAlphaU16(row, row, 2)
	if row[0] != 65535 || row[2] != 0 {
		t.Fatalf("mul got %v", row)
	}
	DivAlphaU16(row, row, 2)
	if row[0] != 65535 || row[2] != 0 {
		t.Fatalf("div got %v", row)
	}
}
