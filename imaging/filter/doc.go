// Package filter provides resampling kernels and the per-axis coefficient
// tables built from them.
//
// A Filter is a pure weight function of the offset between a destination
// sample and a source pixel, together with a support radius. NewTable turns
// a filter and an axis length pair into a Table: one contiguous run of
// normalised weights per destination index. Integer pixel paths use the
// FixedTable obtained from Table.Fixed.
//
// Tables are cheap to build and are recomputed on every resize call.
package filter
