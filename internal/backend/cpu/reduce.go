package cpu

import "github.com/strided-ml/strided/internal/buffer"

// Contiguous-run reductions. The engine has no notion of axes: callers
// permute the reduced axis to be the fastest-varying dimension and compact
// the array first, then fold consecutive runs here. a.Len() must be an
// exact multiple of reduceSize and out.Len() must equal
// a.Len()/reduceSize (caller contract, unchecked).

// ReduceMax writes the maximum of each consecutive, non-overlapping run of
// reduceSize elements of a into out.
func (cpu *Backend) ReduceMax(a, out *buffer.Buffer, reduceSize int) {
	src, dst := a.Data(), out.Data()
	for i := range dst {
		run := src[i*reduceSize : (i+1)*reduceSize]
		m := run[0]
		for _, v := range run[1:] {
			if v > m {
				m = v
			}
		}
		dst[i] = m
	}
}

// ReduceSum writes the sum of each consecutive, non-overlapping run of
// reduceSize elements of a into out.
func (cpu *Backend) ReduceSum(a, out *buffer.Buffer, reduceSize int) {
	src, dst := a.Data(), out.Data()
	for i := range dst {
		var sum float32
		for _, v := range src[i*reduceSize : (i+1)*reduceSize] {
			sum += v
		}
		dst[i] = sum
	}
}
