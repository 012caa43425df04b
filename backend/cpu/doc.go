// Copyright 2026 The Strided Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend for the strided compute
// kernels.
//
// # Overview
//
// The backend implements the primitive operations a multi-dimensional array
// library delegates its numeric work to:
//   - Compact / ScatterArray / ScatterScalar: movement between arbitrarily
//     strided views and canonical row-major contiguous storage
//   - Add, Mul, Div, Maximum, Eq, Ge and their *Scalar broadcast variants
//   - Log, Exp, Tanh unary operators with IEEE-754 propagation
//   - Matmul (naive) and MatmulTiled (cache-blocked over Tile×Tile blocks)
//   - ReduceMax / ReduceSum over contiguous runs
//
// # Contracts
//
// Operand sizes, view addressing and the tiled layout's multiple-of-Tile
// dimensions are caller contracts, deliberately unchecked on the hot path.
// Floating-point domain violations are not errors: they propagate NaN and
// ±Infinity per IEEE-754.
//
// # Thread Safety
//
// The backend itself is stateless and safe to share. Buffers are not
// synchronized: concurrent access to the same buffer is the caller's
// responsibility.
package cpu
