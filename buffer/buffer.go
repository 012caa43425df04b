// Copyright 2026 The Strided Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package buffer provides the alignment-guaranteed flat float32 storage the
// strided kernels operate on.
//
// A Buffer is created with a fixed element count, never resized, and
// released explicitly. Its start address is always a multiple of Alignment,
// which the tiled matmul's micro-kernel relies on. Ptr exports the address
// as an opaque integer for zero-copy interop; the address is a borrowed,
// non-owning view whose validity ends at Release.
package buffer

import internalbuffer "github.com/strided-ml/strided/internal/buffer"

// Storage constants shared with everything that builds layouts over buffers.
const (
	// ElemSize is the byte size of one element (float32).
	ElemSize = internalbuffer.ElemSize
	// Alignment is the guaranteed start-address alignment in bytes.
	Alignment = internalbuffer.Alignment
)

// Buffer is a flat, aligned block of float32 storage.
type Buffer = internalbuffer.Buffer

// New allocates a buffer of count elements aligned to Alignment.
func New(count int) (*Buffer, error) {
	return internalbuffer.New(count)
}
