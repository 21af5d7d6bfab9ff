// Package pixel describes the fixed-layout pixel formats understood by the
// resize and alpha engines.
//
// Every format is an array of one to four components of the same scalar
// type (uint8, uint16, int32 or float32). The component kind and count are
// properties of the Go type, so generic code learns them once per call and
// never inspects a format per pixel.
//
//	row := []pixel.U8x4{{255, 0, 0, 255}, {0, 0, 255, 128}}
//	comps := pixel.Components[uint8](row) // 8 uint8 values, no copy
package pixel
