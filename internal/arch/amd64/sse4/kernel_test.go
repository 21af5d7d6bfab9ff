//go:build amd64 && !purego

package sse4

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/cwbudde/algo-resize/imaging/filter"
	"github.com/cwbudde/algo-resize/internal/arch/generic"
)

func randRows(rng *rand.Rand, rows, n int) [][]uint8 {
	out := make([][]uint8, rows)
	for i := range out {
		out[i] = make([]uint8, n)
		for j := range out[i] {
			out[i][j] = uint8(rng.Intn(256))
		}
	}
	return out
}

func TestHorizontalMatchesGeneric(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ft := filter.NewTable(10, 23, filter.Lanczos3()).Fixed(14)
	for _, rows := range []int{1, 2, 5} {
		for _, cn := range []int{1, 2, 4} {
			src := randRows(rng, rows, 10*cn)
			got, want := randRows(rng, rows, 23*cn), randRows(rng, rows, 23*cn)
			horizU8(got, src, cn, ft)
			generic.HorizU8(want, src, cn, ft)
			for r := range got {
				if !slices.Equal(got[r], want[r]) {
					t.Fatalf("rows=%d cn=%d row %d: %v != %v", rows, cn, r, got[r], want[r])
				}
			}
		}
	}
}

func TestVerticalMatchesGeneric(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	ft := filter.NewTable(7, 3, filter.Bilinear()).Fixed(14)
	for _, n := range []int{1, 2, 9} {
		for d := range ft.Len() {
			w := ft.Row(d)
			src := randRows(rng, len(w), n)
			got, want := make([]uint8, n), make([]uint8, n)
			vertU8(got, src, w, 14)
			generic.VertU8(want, src, w, 14)
			if !slices.Equal(got, want) {
				t.Fatalf("n=%d dst %d: %v != %v", n, d, got, want)
			}
		}
	}
}

func TestAlphaMatchesGeneric(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, cn := range []int{2, 4} {
		src := randRows(rng, 1, 7*cn)[0]
		for _, tt := range []struct {
			name      string
			got, want func(dst, src []uint8, cn int)
		}{
			{"multiply", mulAlphaU8, generic.MulAlphaU8},
			{"divide", divAlphaU8, generic.DivAlphaU8},
		} {
			got, want := make([]uint8, len(src)), make([]uint8, len(src))
			tt.got(got, src, cn)
			tt.want(want, src, cn)
			if !slices.Equal(got, want) {
				t.Fatalf("%s cn=%d: %v != %v", tt.name, cn, got, want)
			}
		}
	}
}
