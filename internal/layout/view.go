// Package layout implements the addressing scheme that maps logical
// multi-dimensional indices into linear offsets inside flat storage, and the
// row-major cursor the data-movement kernels traverse views with.
package layout

// View describes how to address a logical N-dimensional array inside some
// flat buffer: element index is Offset + Σ Strides[i]*index[i]. It is a
// per-call descriptor, not a stored object.
//
// Caller contract, not runtime-checked: len(Shape) == len(Strides), and
// every addressable location must lie within the owning buffer.
type View struct {
	Shape   Shape
	Strides []int
	Offset  int
}

// NumElements returns the logical element count of the view.
func (v View) NumElements() int {
	return v.Shape.NumElements()
}

// Contiguous reports whether the view is identical to canonical row-major
// storage: compact strides and zero offset.
func (v View) Contiguous() bool {
	if v.Offset != 0 || len(v.Strides) != len(v.Shape) {
		return false
	}
	want := v.Shape.ComputeStrides()
	for i := range want {
		if v.Strides[i] != want[i] {
			return false
		}
	}
	return true
}

// Locate maps a logical index vector to a linear offset under the given
// strides and offset.
func Locate(strides []int, offset int, index []int) int {
	loc := offset
	for i, ix := range index {
		loc += strides[i] * ix
	}
	return loc
}
