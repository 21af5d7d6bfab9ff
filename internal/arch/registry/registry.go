// Package registry collects the row kernels registered by each backend and
// resolves them into an op table for a CPU extension.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-resize/imaging/filter"
	"github.com/cwbudde/algo-resize/imaging/simd"
)

// Horizontal kernels resample a batch of rows along x. dst[i] receives
// t.Len() pixels computed from src[i]; both hold cn components per pixel.
type (
	HorizU8Fn  func(dst, src [][]uint8, cn int, t *filter.FixedTable)
	HorizU16Fn func(dst, src [][]uint16, cn int, t *filter.FixedTable)
	HorizI32Fn func(dst, src [][]int32, t *filter.Table)
	HorizF32Fn func(dst, src [][]float32, t *filter.Table)
)

// Vertical kernels write one destination row as the weighted sum of
// len(w) source rows of the same length.
type (
	VertU8Fn  func(dst []uint8, src [][]uint8, w []int32, precision uint)
	VertU16Fn func(dst []uint16, src [][]uint16, w []int32, precision uint)
	VertI32Fn func(dst []int32, src [][]int32, w []float64)
	VertF32Fn func(dst []float32, src [][]float32, w []float64)
)

// Alpha kernels convert one row of cn-component pixels whose last
// component is alpha. dst and src may be the same slice.
type (
	AlphaU8Fn  func(dst, src []uint8, cn int)
	AlphaU16Fn func(dst, src []uint16, cn int)
)

// OpEntry is one backend's set of kernels. Nil fields are inherited from
// lower-priority entries when the table is resolved.
type OpEntry struct {
	Name      string
	Extension simd.Extension
	Priority  int
	RowBatch  int

	HorizU8  HorizU8Fn
	HorizU16 HorizU16Fn
	HorizI32 HorizI32Fn
	HorizF32 HorizF32Fn

	VertU8  VertU8Fn
	VertU16 VertU16Fn
	VertI32 VertI32Fn
	VertF32 VertF32Fn

	MulAlphaU8  AlphaU8Fn
	DivAlphaU8  AlphaU8Fn
	MulAlphaU16 AlphaU16Fn
	DivAlphaU16 AlphaU16Fn
}

// Ops is a resolved op table. Every kernel field is non-nil when the
// generic backend is registered.
type Ops struct {
	Extension simd.Extension
	RowBatch  int

	// Backends lists the entries that contributed kernels, lowest
	// priority first.
	Backends []string

	HorizU8  HorizU8Fn
	HorizU16 HorizU16Fn
	HorizI32 HorizI32Fn
	HorizF32 HorizF32Fn

	VertU8  VertU8Fn
	VertU16 VertU16Fn
	VertI32 VertI32Fn
	VertF32 VertF32Fn

	MulAlphaU8  AlphaU8Fn
	DivAlphaU8  AlphaU8Fn
	MulAlphaU16 AlphaU16Fn
	DivAlphaU16 AlphaU16Fn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default kernel registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Resolve builds the op table for ext by overlaying, in ascending priority,
// every entry whose extension ext includes.
func (r *OpRegistry) Resolve(ext simd.Extension) *Ops {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	ops := &Ops{Extension: ext, RowBatch: 1}
	for i := range r.entries {
		e := &r.entries[i]
		if !ext.Includes(e.Extension) {
			continue
		}
		ops.Backends = append(ops.Backends, e.Name)
		ops.RowBatch = max(ops.RowBatch, e.RowBatch)
		ops.overlay(e)
	}
	return ops
}

func (o *Ops) overlay(e *OpEntry) {
	if e.HorizU8 != nil {
		o.HorizU8 = e.HorizU8
	}
	if e.HorizU16 != nil {
		o.HorizU16 = e.HorizU16
	}
	if e.HorizI32 != nil {
		o.HorizI32 = e.HorizI32
	}
	if e.HorizF32 != nil {
		o.HorizF32 = e.HorizF32
	}
	if e.VertU8 != nil {
		o.VertU8 = e.VertU8
	}
	if e.VertU16 != nil {
		o.VertU16 = e.VertU16
	}
	if e.VertI32 != nil {
		o.VertI32 = e.VertI32
	}
	if e.VertF32 != nil {
		o.VertF32 = e.VertF32
	}
	if e.MulAlphaU8 != nil {
		o.MulAlphaU8 = e.MulAlphaU8
	}
	if e.DivAlphaU8 != nil {
		o.DivAlphaU8 = e.DivAlphaU8
	}
	if e.MulAlphaU16 != nil {
		o.MulAlphaU16 = e.MulAlphaU16
	}
	if e.DivAlphaU16 != nil {
		o.DivAlphaU16 = e.DivAlphaU16
	}
}

// Complete reports whether every kernel of the table is set.
func (o *Ops) Complete() bool {
	return o.HorizU8 != nil && o.HorizU16 != nil && o.HorizI32 != nil && o.HorizF32 != nil &&
		o.VertU8 != nil && o.VertU16 != nil && o.VertI32 != nil && o.VertF32 != nil &&
		o.MulAlphaU8 != nil && o.DivAlphaU8 != nil && o.MulAlphaU16 != nil && o.DivAlphaU16 != nil
}

func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority > key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
