package scaler_test

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/cwbudde/algo-resize/imaging/scaler"
)

func ExampleScaler() {
	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	draw.Draw(src, src.Bounds(), image.NewUniform(color.NRGBA{R: 255, A: 128}), image.Point{}, draw.Src)

	dst := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	var s draw.Scaler = scaler.New()
	s.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	fmt.Println(dst.NRGBAAt(8, 8))
	// Output: {255 0 0 128}
}
