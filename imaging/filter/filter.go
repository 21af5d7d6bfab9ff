package filter

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrUnknownFilter is returned by ByName for unrecognised names.
var ErrUnknownFilter = errors.New("filter: unknown filter")

// Filter is a resampling kernel.
type Filter struct {
	// Name identifies the kernel, e.g. "lanczos3".
	Name string

	// Support is the radius beyond which Weight is zero, in source pixels
	// at unit scale.
	Support float64

	// Weight evaluates the kernel at offset x.
	Weight func(x float64) float64
}

// Nearest is a point-sampling kernel. The resize engine recognises it and
// selects source pixels directly instead of summing weights.
func Nearest() Filter {
	return Filter{Name: "nearest", Support: 0.5, Weight: boxWeight}
}

// Box averages every source pixel whose centre falls inside the
// destination pixel.
func Box() Filter {
	return Filter{Name: "box", Support: 0.5, Weight: boxWeight}
}

// Bilinear is the triangle kernel with radius 1.
func Bilinear() Filter {
	return Filter{Name: "bilinear", Support: 1, Weight: bilinearWeight}
}

// Hamming is a sinc windowed by a Hamming window over radius 1.
func Hamming() Filter {
	return Filter{Name: "hamming", Support: 1, Weight: hammingWeight}
}

// Cubic returns the Mitchell-Netravali cubic family member with parameters
// b and c. The radius is 2.
func Cubic(b, c float64) Filter {
	p0 := (6 - 2*b) / 6
	p2 := (-18 + 12*b + 6*c) / 6
	p3 := (12 - 9*b - 6*c) / 6
	q0 := (8*b + 24*c) / 6
	q1 := (-12*b - 48*c) / 6
	q2 := (6*b + 30*c) / 6
	q3 := (-b - 6*c) / 6

	return Filter{
		Name:    fmt.Sprintf("cubic(%g,%g)", b, c),
		Support: 2,
		Weight: func(x float64) float64 {
			x = math.Abs(x)
			switch {
			case x < 1:
				return p0 + x*x*(p2+x*p3)
			case x < 2:
				return q0 + x*(q1+x*(q2+x*q3))
			default:
				return 0
			}
		},
	}
}

// CatmullRom is the interpolating cubic with b=0, c=0.5.
func CatmullRom() Filter {
	f := Cubic(0, 0.5)
	f.Name = "catmull-rom"
	return f
}

// Mitchell is the cubic with b=c=1/3.
func Mitchell() Filter {
	f := Cubic(1.0/3, 1.0/3)
	f.Name = "mitchell"
	return f
}

// Lanczos returns the windowed sinc kernel with the given radius.
func Lanczos(radius int) Filter {
	if radius <= 0 {
		panic(fmt.Sprintf("filter: lanczos radius must be > 0: %d", radius))
	}
	n := float64(radius)
	return Filter{
		Name:    "lanczos" + strconv.Itoa(radius),
		Support: n,
		Weight: func(x float64) float64 {
			if x <= -n || x >= n {
				return 0
			}
			return sinc(x) * sinc(x/n)
		},
	}
}

// Lanczos3 is Lanczos(3), the default resize kernel.
func Lanczos3() Filter {
	return Lanczos(3)
}

var named = map[string]func() Filter{
	"nearest":     Nearest,
	"box":         Box,
	"bilinear":    Bilinear,
	"hamming":     Hamming,
	"catmull-rom": CatmullRom,
	"mitchell":    Mitchell,
	"lanczos3":    Lanczos3,
}

// Names returns the names accepted by ByName, in a stable order.
func Names() []string {
	return []string{"nearest", "box", "bilinear", "hamming", "catmull-rom", "mitchell", "lanczos3"}
}

// ByName returns the filter called name. Besides the names listed by Names,
// "lanczosN" selects Lanczos(N) for any positive N.
func ByName(name string) (Filter, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if ctor, ok := named[key]; ok {
		return ctor(), nil
	}
	if rest, ok := strings.CutPrefix(key, "lanczos"); ok {
		if n, err := strconv.Atoi(rest); err == nil && n > 0 {
			return Lanczos(n), nil
		}
	}
	return Filter{}, fmt.Errorf("%w: %q", ErrUnknownFilter, name)
}

func boxWeight(x float64) float64 {
	if x > -0.5 && x <= 0.5 {
		return 1
	}
	return 0
}

func bilinearWeight(x float64) float64 {
	x = math.Abs(x)
	if x < 1 {
		return 1 - x
	}
	return 0
}

func hammingWeight(x float64) float64 {
	if x <= -1 || x >= 1 {
		return 0
	}
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return (0.54 + 0.46*math.Cos(px)) * math.Sin(px) / px
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}
