// Copyright 2026 The Strided Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package layout describes how logical N-dimensional arrays are addressed
// inside flat buffers: shapes, per-call view descriptors, the
// index-to-offset mapping, and the row-major cursor that enumerates all
// logical index vectors of a shape.
package layout

import internallayout "github.com/strided-ml/strided/internal/layout"

// Shape represents the logical dimensions of an N-dimensional view.
type Shape = internallayout.Shape

// View is a per-call (shape, strides, offset) descriptor addressing a
// logical array inside a flat buffer.
type View = internallayout.View

// Cursor enumerates the logical index vectors of a shape in row-major
// order, last dimension fastest.
type Cursor = internallayout.Cursor

// NewCursor returns a cursor positioned at the all-zero index vector.
func NewCursor(shape Shape) *Cursor {
	return internallayout.NewCursor(shape)
}

// Locate maps a logical index vector to a linear offset under the given
// strides and offset.
func Locate(strides []int, offset int, index []int) int {
	return internallayout.Locate(strides, offset, index)
}
