// Copyright 2026 The Strided Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/strided-ml/strided/internal/backend/cpu"
)

// Tile is the edge length of the square blocks consumed by MatmulTiled.
// Callers constructing 4D tiled layouts must use this value.
const Tile = internalcpu.Tile

// Backend executes the dense compute kernels on the host CPU.
//
// A Backend holds no state: create one and share it freely. Every operation
// runs to completion on the calling goroutine and writes into a
// caller-supplied output buffer.
type Backend = internalcpu.Backend

// New creates a CPU backend.
//
// Example:
//
//	import (
//	    "github.com/strided-ml/strided/backend/cpu"
//	    "github.com/strided-ml/strided/buffer"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    a, _ := buffer.New(64)
//	    b, _ := buffer.New(64)
//	    out, _ := buffer.New(64)
//	    backend.Add(a, b, out)
//	}
func New() *Backend {
	return internalcpu.New()
}
