// Package resize resamples images between arbitrary sizes.
//
// A Resizer holds an Algorithm and a CPU extension. Resize reads the crop
// box of a source view and fully overwrites a destination view:
//
//	r := resize.New(resize.WithAlgorithm(resize.Convolution(filter.Lanczos3())))
//	resize.Resize(r, src.View(), dst.MutView())
//
// Convolution is separable. Rows are first resampled horizontally into an
// intermediate buffer, which the vertical pass then reduces into the
// destination. Only the source rows referenced by the vertical coefficient
// table go through the horizontal pass. Integer formats use fixed-point
// weights (14 bits for 8-bit components, 22 bits for 16-bit components) and
// give identical output on every CPU extension. I32 and F32 accumulate in
// float64.
//
// An axis whose source and destination lengths match is copied unchanged,
// whichever filter is selected.
//
// Images with straight alpha should be premultiplied with package alpha
// before resizing and divided afterwards.
package resize
