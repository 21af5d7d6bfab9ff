package view

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrCropEmpty is reported for crop boxes with a non-positive width or height.
	ErrCropEmpty = errors.New("view: crop box must have positive width and height")

	// ErrCropOutOfBounds is reported for crop boxes that do not fit the view.
	ErrCropOutOfBounds = errors.New("view: crop box exceeds view bounds")
)

// CropBox is a rectangle describing the active region of a view.
type CropBox struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Right returns the exclusive right edge.
func (c CropBox) Right() int { return c.Left + c.Width }

// Bottom returns the exclusive bottom edge.
func (c CropBox) Bottom() int { return c.Top + c.Height }

// Validate checks that c describes a non-empty region inside a view of the
// given dimensions.
func (c CropBox) Validate(width, height int) error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrCropEmpty, c.Width, c.Height)
	}
	if c.Left < 0 || c.Top < 0 || c.Right() > width || c.Bottom() > height {
		return fmt.Errorf("%w: box (%d,%d %dx%d) in %dx%d view",
			ErrCropOutOfBounds, c.Left, c.Top, c.Width, c.Height, width, height)
	}
	return nil
}

// Centering controls where an aspect-preserving crop is anchored. Each
// component is a fraction in [0, 1]: (0, 0) keeps the top-left corner,
// (1, 1) the bottom-right one.
type Centering struct {
	X, Y float64
}

// DefaultCentering crops evenly from both sides.
var DefaultCentering = Centering{X: 0.5, Y: 0.5}

func (c Centering) clamped() Centering {
	return Centering{X: clamp01(c.X), Y: clamp01(c.Y)}
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func fullFrame(width, height int) CropBox {
	return CropBox{Width: width, Height: height}
}

func mustValidate(c CropBox, width, height int) {
	if err := c.Validate(width, height); err != nil {
		panic(err)
	}
}
