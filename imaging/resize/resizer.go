package resize

import (
	"fmt"

	"github.com/cwbudde/algo-resize/imaging/simd"
	"github.com/cwbudde/algo-resize/internal/arch/registry"
	"github.com/cwbudde/algo-resize/internal/logging"
	"github.com/cwbudde/algo-resize/internal/scratch"
)

// Resizer holds the configuration consulted by Resize. Construct it with
// New. Concurrent Resize calls may share a Resizer as long as nobody
// reconfigures it at the same time.
type Resizer struct {
	alg  Algorithm
	ext  simd.Extension
	ops  *registry.Ops
	pool *scratch.Pool
}

// New returns a Resizer configured by opts.
func New(opts ...Option) *Resizer {
	cfg := ApplyOptions(opts...)
	r := &Resizer{
		alg:  cfg.Algorithm,
		pool: scratch.NewPool(),
	}
	r.setExtension(cfg.Extension)
	return r
}

// Algorithm returns the active algorithm.
func (r *Resizer) Algorithm() Algorithm { return r.alg }

// SetAlgorithm replaces the algorithm for subsequent calls.
func (r *Resizer) SetAlgorithm(alg Algorithm) {
	if alg.filter.Weight == nil {
		panic("resize: algorithm has no filter")
	}
	r.alg = alg
}

// CPUExtension returns the active extension.
func (r *Resizer) CPUExtension() simd.Extension { return r.ext }

// SetCPUExtension switches to ext. It fails with
// simd.ErrUnsupportedExtension if the running CPU cannot execute it.
func (r *Resizer) SetCPUExtension(ext simd.Extension) error {
	if !ext.Supported() {
		return fmt.Errorf("%w: %s", simd.ErrUnsupportedExtension, ext)
	}
	r.setExtension(ext)
	return nil
}

// ForceCPUExtension switches to ext without checking the CPU. Running
// kernels the hardware lacks is a fault, not an error; the caller vouches
// for ext.
func (r *Resizer) ForceCPUExtension(ext simd.Extension) {
	r.setExtension(ext)
}

func (r *Resizer) setExtension(ext simd.Extension) {
	r.ext = ext
	r.ops = registry.Global.Resolve(ext)
	logging.Get().Debug("resize: kernels resolved",
		"ext", ext, "row_batch", r.ops.RowBatch, "backends", r.ops.Backends)
}

// Backends names the kernel sets resolved for the active extension, lowest
// priority first.
func (r *Resizer) Backends() []string {
	return append([]string(nil), r.ops.Backends...)
}
