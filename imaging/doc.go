// Package imaging is the root of a pixel-format-generic image resampling
// library.
//
// The work is split across sub-packages:
//
//   - pixel: the ten pixel formats and component conversion helpers
//   - view: row views over caller-owned memory, with crop boxes
//   - buffer: an owned image that hands out views
//   - filter: resampling kernels and their coefficient tables
//   - alpha: premultiply and un-premultiply of alpha-bearing formats
//   - resize: the separable two-pass resize engine
//   - scaler: an adapter to golang.org/x/image/draw
//   - simd: the CPU-extension tag engines dispatch on
//
// This package only carries the shared logger.
package imaging
