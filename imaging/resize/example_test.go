package resize

import (
	"fmt"

	"github.com/cwbudde/algo-resize/imaging/buffer"
	"github.com/cwbudde/algo-resize/imaging/filter"
	"github.com/cwbudde/algo-resize/imaging/pixel"
	"github.com/cwbudde/algo-resize/imaging/view"
)

func ExampleResize() {
	src := buffer.FromPixels(2, 2, []pixel.U8{{0}, {100}, {200}, {255}})
	dst := buffer.New[pixel.U8](4, 4)

	r := New(WithAlgorithm(Convolution(filter.Bilinear())))
	Resize(r, src.View(), dst.MutView())

	for y := range 4 {
		fmt.Println(pixel.Components[uint8](dst.Pixels()[y*4 : y*4+4]))
	}
	// Output:
	// [0 25 75 100]
	// [50 72 117 139]
	// [150 167 200 216]
	// [200 214 241 255]
}

func ExampleResize_fitAspectRatio() {
	src := buffer.New[pixel.U8x4](100, 50)
	dst := buffer.New[pixel.U8x4](20, 20)

	v := src.View()
	v.SetCropBoxToFitDstSize(dst.Width(), dst.Height(), nil)
	fmt.Printf("%+v\n", v.CropBox())

	Resize(New(), v, dst.MutView())
	// Output:
	// {Left:25 Top:0 Width:50 Height:50}
}

func ExampleResize_nearest() {
	src := view.FromPixels(4, 1, []pixel.U8{{10}, {20}, {30}, {40}})
	dst := make([]pixel.U8, 2)

	Resize(New(WithAlgorithm(Nearest())), src, view.MutFromPixels(2, 1, dst))
	fmt.Println(dst)
	// Output:
	// [[20] [40]]
}
