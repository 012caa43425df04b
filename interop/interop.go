// Copyright 2026 The Strided Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package interop is the copy-semantics boundary between kernel buffers and
// host-owned slices. Exports and imports are always full copies, so host
// code never shares a lifetime with a kernel buffer; zero-copy consumers
// use Buffer.Ptr and accept its valid-until-Release contract instead.
package interop

import (
	internalinterop "github.com/strided-ml/strided/internal/interop"

	"github.com/strided-ml/strided/buffer"
	"github.com/strided-ml/strided/layout"
)

// ExportView reads the strided view v of buf into a fresh host-owned slice
// in row-major order.
func ExportView(buf *buffer.Buffer, v layout.View) []float32 {
	return internalinterop.ExportView(buf, v)
}

// Import copies dst.Len() elements from the contiguous host slice src into
// dst.
func Import(dst *buffer.Buffer, src []float32) {
	internalinterop.Import(dst, src)
}
