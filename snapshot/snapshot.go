// Copyright 2026 The Strided Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package snapshot saves and restores buffer contents through a
// self-describing, checksummed, optionally compressed stream format.
package snapshot

import (
	"io"

	internalsnapshot "github.com/strided-ml/strided/internal/snapshot"

	"github.com/strided-ml/strided/buffer"
)

// Codec selects the payload compression algorithm.
type Codec = internalsnapshot.Codec

// Supported payload codecs.
const (
	None = internalsnapshot.None
	LZ4  = internalsnapshot.LZ4
	Zstd = internalsnapshot.Zstd
)

// Errors reported by Load.
var (
	ErrBadMagic         = internalsnapshot.ErrBadMagic
	ErrUnknownCodec     = internalsnapshot.ErrUnknownCodec
	ErrChecksumMismatch = internalsnapshot.ErrChecksumMismatch
)

// Save writes buf's elements to w, compressing the payload with codec.
func Save(w io.Writer, buf *buffer.Buffer, codec Codec) error {
	return internalsnapshot.Save(w, buf, codec)
}

// Load reads a snapshot from r and allocates a new buffer holding its
// contents, verifying the checksum first.
func Load(r io.Reader) (*buffer.Buffer, error) {
	return internalsnapshot.Load(r)
}
