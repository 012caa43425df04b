// Package buffer implements the alignment-guaranteed flat storage every
// strided kernel reads and writes through.
package buffer

import (
	"fmt"
	"unsafe"
)

// Storage constants. Anything constructing layouts over a Buffer (in
// particular the 4D blocked layout consumed by the tiled matmul) must agree
// with these.
const (
	// ElemSize is the byte size of one element (IEEE-754 single precision).
	ElemSize = 4

	// Alignment is the guaranteed start-address alignment of every Buffer,
	// in bytes. It must be at least the matmul tile edge times ElemSize so
	// the micro-kernel's alignment assumption holds; 256 leaves headroom
	// for wider vector units.
	Alignment = 256
)

// Buffer owns a flat block of float32 elements whose start address is a
// multiple of Alignment. The element count is fixed at allocation; there is
// no resizing. Kernels operate through Data without taking ownership, and
// the Buffer assumes single-writer, non-concurrent access.
type Buffer struct {
	slab []byte    // backing allocation, retained to keep the data alive
	data []float32 // aligned window into slab
}

// New allocates a buffer of count elements aligned to Alignment.
//
// Go's allocator has no recoverable out-of-memory path: if the runtime
// cannot satisfy the request the process aborts, which matches the
// non-recoverable allocation-failure contract. New reports invalid counts
// as ordinary errors.
func New(count int) (*Buffer, error) {
	if count < 0 {
		return nil, fmt.Errorf("buffer: invalid element count %d", count)
	}

	// Over-allocate and shift to the next aligned address. The original
	// slab is kept so the garbage collector does not reclaim the storage
	// behind the aligned window.
	slab := make([]byte, count*ElemSize+Alignment)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(slab)))
	shift := 0
	if rem := addr % Alignment; rem != 0 {
		shift = int(Alignment - rem)
	}

	var data []float32
	if count > 0 {
		//nolint:gosec // reinterpret the aligned window as []float32; the
		// slab is sized to hold count elements past the shift.
		data = unsafe.Slice((*float32)(unsafe.Pointer(&slab[shift])), count)
	}

	return &Buffer{slab: slab, data: data}, nil
}

// Len returns the element count.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Data returns the aligned element storage.
// WARNING: direct access to underlying memory. The slice is a borrowed view
// that must not be used after Release.
func (b *Buffer) Data() []float32 {
	return b.data
}

// Ptr returns the start address as an opaque integer for zero-copy interop.
// The address is borrowed and non-owning: it stops being valid the moment
// Release is called, and this package never dereferences addresses handed
// back in.
func (b *Buffer) Ptr() uintptr {
	if len(b.data) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(b.data)))
}

// Fill overwrites every element with v.
func (b *Buffer) Fill(v float32) {
	for i := range b.data {
		b.data[i] = v
	}
}

// Release drops the allocation so the garbage collector can reclaim it.
// Calling Release more than once is a no-op; using Data or Ptr afterwards
// is a caller error.
func (b *Buffer) Release() {
	b.slab = nil
	b.data = nil
}
