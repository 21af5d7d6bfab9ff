// Package view provides non-owning row views over pixel buffers.
//
// A View is read-only and carries a crop box describing the region its
// consumers should read. A MutView is writable; cropping it narrows its rows
// physically so that a destination can never be written outside its target
// rectangle. Both are organised as a slice of row slices, and expose
// iterators that hand out rows one, two or four at a time so row-batched
// kernels can share per-row work.
//
// Views are validated once at construction (dimensions, buffer length and
// alignment); code that receives a view may index its rows without further
// checks. The buffer owner must outlive every view built over it, and a
// MutView must not overlap another view used in the same call.
package view
