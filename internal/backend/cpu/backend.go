// Package cpu implements the dense flat-memory compute kernels: view
// compaction and scatter, element-wise and scalar arithmetic, dense matrix
// multiplication, and contiguous-run reduction.
//
// Every operation is a single-threaded, synchronous pass that writes into a
// caller-supplied output buffer. Size and addressing preconditions are
// caller contracts, not runtime checks: violating them is a defect in the
// caller, not a recoverable error here.
package cpu

import (
	"github.com/strided-ml/strided/internal/buffer"
	"github.com/strided-ml/strided/internal/cpuinfo"
)

// Tile is the edge length of the square blocks used by MatmulTiled and its
// micro-kernel. Anything constructing 4D tiled layouts must use this value,
// and buffer.Alignment must stay at least Tile*buffer.ElemSize.
const Tile = 8

// Alignment must cover one micro-kernel tile row.
var _ = [buffer.Alignment - Tile*buffer.ElemSize]struct{}{}

// Backend executes kernels on the host CPU. It holds no state and may be
// shared freely; concurrency across buffers is the caller's business, and
// no operation ever touches memory it was not handed.
type Backend struct{}

// New creates a CPU backend.
func New() *Backend {
	return &Backend{}
}

// Name returns the backend name, annotated with the vector extensions
// detected on this host.
func (cpu *Backend) Name() string {
	if feats := cpuinfo.Features(); feats != "" {
		return "CPU (" + feats + ")"
	}
	return "CPU"
}
