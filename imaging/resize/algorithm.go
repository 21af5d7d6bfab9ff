package resize

import (
	"fmt"

	"github.com/cwbudde/algo-resize/imaging/filter"
)

// Kind identifies a resampling algorithm.
type Kind uint8

const (
	KindNearest Kind = iota
	KindConvolution
	KindSuperSampling
)

// Algorithm selects how destination pixels are computed.
type Algorithm struct {
	kind         Kind
	filter       filter.Filter
	multiplicity int
}

// Nearest copies the source pixel under each destination pixel centre.
func Nearest() Algorithm {
	return Algorithm{kind: KindNearest, filter: filter.Nearest()}
}

// Convolution resamples with f. Convolution(filter.Nearest()) is the same
// as Nearest().
func Convolution(f filter.Filter) Algorithm {
	if f.Name == filter.Nearest().Name {
		return Nearest()
	}
	return Algorithm{kind: KindConvolution, filter: f}
}

// SuperSampling first point-samples the source down to multiplicity times
// the destination size and then convolves with f. It trades quality for
// speed on large reductions. A multiplicity below 2 is plain convolution.
func SuperSampling(f filter.Filter, multiplicity int) Algorithm {
	if multiplicity < 2 {
		return Convolution(f)
	}
	return Algorithm{kind: KindSuperSampling, filter: f, multiplicity: multiplicity}
}

// Default returns Convolution(filter.Lanczos3()).
func Default() Algorithm {
	return Convolution(filter.Lanczos3())
}

// Kind returns the algorithm kind.
func (a Algorithm) Kind() Kind { return a.kind }

// Filter returns the kernel. Nearest reports filter.Nearest().
func (a Algorithm) Filter() filter.Filter { return a.filter }

// Multiplicity returns the super-sampling factor, or 0.
func (a Algorithm) Multiplicity() int { return a.multiplicity }

func (a Algorithm) String() string {
	switch a.kind {
	case KindNearest:
		return "nearest"
	case KindConvolution:
		return "convolution(" + a.filter.Name + ")"
	case KindSuperSampling:
		return fmt.Sprintf("supersampling(%s, %d)", a.filter.Name, a.multiplicity)
	default:
		return "unknown"
	}
}
