// Package alpha converts alpha-bearing pixels between straight and
// premultiplied form.
//
// Linear resampling must run on premultiplied color, otherwise partially
// transparent edges pick up dark or light fringes. The usual sequence is
// Multiply, resize, Divide.
//
// Supported formats are the 2- and 4-component layouts whose last component
// is alpha: pixel.U8x2, pixel.U8x4, pixel.U16x2 and pixel.U16x4. Color
// components are converted as
//
//	premultiplied = round(color * alpha / max)
//	straight      = min(max, round(color * max / alpha)), or 0 when alpha is 0
//
// and alpha is copied unchanged. Every CPU extension produces results
// identical to the scalar kernels.
package alpha
