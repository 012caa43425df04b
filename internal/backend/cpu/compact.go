package cpu

import (
	"github.com/strided-ml/strided/internal/buffer"
	"github.com/strided-ml/strided/internal/layout"
)

// Compact re-materializes an arbitrarily strided view of a into canonical
// row-major contiguous storage in out.
//
// v's shape describes both a and out; its strides and offset address a only
// (out is compact with zero offset). out must hold exactly v.NumElements()
// elements. Addressing outside a's allocation is a caller error and is not
// checked.
func (cpu *Backend) Compact(a, out *buffer.Buffer, v layout.View) {
	src := a.Data()
	dst := out.Data()
	cur := layout.NewCursor(v.Shape)
	for i := 0; i < out.Len(); i++ {
		dst[i] = src[layout.Locate(v.Strides, v.Offset, cur.Index())]
		cur.Next()
	}
}

// ScatterArray is the inverse of Compact: it writes the elements of the
// compact buffer a into the strided view v of out, visiting v's logical
// indices in row-major order. a must hold exactly v.NumElements() elements.
func (cpu *Backend) ScatterArray(a, out *buffer.Buffer, v layout.View) {
	src := a.Data()
	dst := out.Data()
	cur := layout.NewCursor(v.Shape)
	for i := 0; i < a.Len(); i++ {
		dst[layout.Locate(v.Strides, v.Offset, cur.Index())] = src[i]
		cur.Next()
	}
}

// ScatterScalar overwrites every location addressed by the strided view v of
// out with val. n must equal v.NumElements(); it is passed explicitly purely
// for caller convenience.
func (cpu *Backend) ScatterScalar(val float32, out *buffer.Buffer, v layout.View, n int) {
	dst := out.Data()
	cur := layout.NewCursor(v.Shape)
	for i := 0; i < n; i++ {
		dst[layout.Locate(v.Strides, v.Offset, cur.Index())] = val
		cur.Next()
	}
}
