// Package interop implements the copy-semantics boundary between kernel
// buffers and host-owned slices. Both directions are full copies: an
// exported slice never aliases the buffer it came from, so the host runtime
// and the kernel never have to coordinate lifetimes or garbage collection.
// Zero-copy consumers use Buffer.Ptr instead and accept its borrowed,
// valid-until-Release contract.
package interop

import (
	"github.com/strided-ml/strided/internal/buffer"
	"github.com/strided-ml/strided/internal/layout"
)

// ExportView reads the strided view v of buf into a fresh host-owned slice
// in row-major order. The usual addressing contract applies: every location
// v can reach must lie inside buf.
func ExportView(buf *buffer.Buffer, v layout.View) []float32 {
	out := make([]float32, v.NumElements())
	src := buf.Data()
	cur := layout.NewCursor(v.Shape)
	for i := range out {
		out[i] = src[layout.Locate(v.Strides, v.Offset, cur.Index())]
		cur.Next()
	}
	return out
}

// Import copies dst.Len() elements from the contiguous host slice src into
// dst. src must hold at least dst.Len() elements.
func Import(dst *buffer.Buffer, src []float32) {
	copy(dst.Data(), src[:dst.Len()])
}
