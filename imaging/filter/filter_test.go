package filter

import (
	"errors"
	"math"
	"testing"
)

func TestKernelsAtOrigin(t *testing.T) {
	for _, name := range Names() {
		f, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q): %v", name, err)
		}
		if f.Name != "mitchell" {
			if got := f.Weight(0); math.Abs(got-1) > 1e-12 {
				t.Errorf("%s: Weight(0) = %v, want 1", name, got)
			}
		}
		if got := f.Weight(f.Support + 0.01); got != 0 {
			t.Errorf("%s: Weight beyond support = %v, want 0", name, got)
		}
	}
}

func TestInterpolatingKernelsVanishAtIntegers(t *testing.T) {
	for _, f := range []Filter{Bilinear(), CatmullRom(), Lanczos3(), Lanczos(2)} {
		for x := 1; float64(x) <= f.Support; x++ {
			for _, v := range []float64{float64(x), -float64(x)} {
				if got := f.Weight(v); math.Abs(got) > 1e-12 {
					t.Errorf("%s: Weight(%v) = %v, want 0", f.Name, v, got)
				}
			}
		}
	}
}

func TestKernelSymmetry(t *testing.T) {
	for _, f := range []Filter{Bilinear(), Hamming(), CatmullRom(), Mitchell(), Lanczos3()} {
		for x := 0.05; x < f.Support; x += 0.1 {
			if a, b := f.Weight(x), f.Weight(-x); math.Abs(a-b) > 1e-12 {
				t.Errorf("%s: Weight(%v) = %v, Weight(-%v) = %v", f.Name, x, a, x, b)
			}
		}
	}
}

func TestMitchellValues(t *testing.T) {
	f := Mitchell()
	if got, want := f.Weight(0), 8.0/9; math.Abs(got-want) > 1e-12 {
		t.Fatalf("Weight(0) = %v, want %v", got, want)
	}
	if got, want := f.Weight(1), 1.0/18; math.Abs(got-want) > 1e-12 {
		t.Fatalf("Weight(1) = %v, want %v", got, want)
	}
}

func TestBoxHalfOpen(t *testing.T) {
	f := Box()
	if f.Weight(-0.5) != 0 || f.Weight(0.5) != 1 {
		t.Fatalf("box edges = %v, %v; want 0, 1", f.Weight(-0.5), f.Weight(0.5))
	}
}

func TestByName(t *testing.T) {
	f, err := ByName(" Lanczos5 ")
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}
	if f.Name != "lanczos5" || f.Support != 5 {
		t.Fatalf("got %s with support %v", f.Name, f.Support)
	}

	for _, bad := range []string{"", "gaussian", "lanczos0", "lanczos-1", "lanczosx"} {
		if _, err := ByName(bad); !errors.Is(err, ErrUnknownFilter) {
			t.Errorf("ByName(%q) error = %v, want ErrUnknownFilter", bad, err)
		}
	}
}

func TestLanczosRejectsBadRadius(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Lanczos(0)
}
