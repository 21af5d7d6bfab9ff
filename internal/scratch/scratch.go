// Package scratch provides pooled transient buffers for the resize engine.
//
// A Buffer is backed by 64-bit words, so any pixel type and float64 can be
// laid over it without alignment checks. Its contents are unspecified after
// Get: callers must overwrite every element they read.
package scratch

import (
	"sync"
	"unsafe"

	"github.com/cwbudde/algo-resize/imaging/pixel"
)

// Buffer is a reusable block of word-aligned memory.
type Buffer struct {
	words []uint64
}

// Len returns the usable size in bytes.
func (b *Buffer) Len() int {
	return len(b.words) * 8
}

// Resize sets the usable size to at least n bytes, reusing existing
// capacity when possible.
func (b *Buffer) Resize(n int) {
	words := (max(n, 0) + 7) / 8
	if words <= cap(b.words) {
		b.words = b.words[:words]
		return
	}
	b.words = make([]uint64, words)
}

// Pixels lays n pixels of type P over b, growing it as needed.
func Pixels[P pixel.Pixel](b *Buffer, n int) []P {
	if n <= 0 {
		return nil
	}
	b.Resize(n * pixel.SizeOf[P]())
	return unsafe.Slice((*P)(unsafe.Pointer(unsafe.SliceData(b.words))), n)
}

// Float64s lays n float64 values over b, growing it as needed.
func Float64s(b *Buffer, n int) []float64 {
	if n <= 0 {
		return nil
	}
	b.Resize(n * 8)
	return unsafe.Slice((*float64)(unsafe.Pointer(unsafe.SliceData(b.words))), n)
}

// Pool provides sync.Pool-based Buffer reuse so repeated resizes do not
// allocate their intermediate images.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Get returns a Buffer of at least n bytes. Callers must return it via Put.
func (p *Pool) Get(n int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Resize(n)
	return b
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer, or slices laid over it, afterwards.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
