// Package snapshot persists the contents of aligned buffers. The on-disk
// format is self-describing: a fixed header records the compression codec,
// the element count and a SHA-256 checksum of the raw payload, so a snapshot
// written with one codec configuration loads anywhere the codec is known.
//
// Snapshots are cold-path I/O, so unlike the compute kernels everything here
// reports ordinary errors.
package snapshot

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/strided-ml/strided/internal/buffer"
)

// Codec selects the payload compression algorithm.
type Codec uint8

// Supported payload codecs.
const (
	// None stores the payload uncompressed.
	None Codec = iota
	// LZ4 trades ratio for speed (hot snapshots).
	LZ4
	// Zstd gives the better ratio at default speed (cold snapshots).
	Zstd
)

var magic = [6]byte{'S', 'T', 'R', 'D', 'S', '1'}

var (
	// ErrBadMagic means the stream does not begin with a snapshot header.
	ErrBadMagic = errors.New("snapshot: bad magic")
	// ErrUnknownCodec means the header names a codec this build cannot decode.
	ErrUnknownCodec = errors.New("snapshot: unknown codec")
	// ErrChecksumMismatch means the decoded payload does not match the
	// checksum recorded at save time.
	ErrChecksumMismatch = errors.New("snapshot: checksum mismatch")
)

// header is the fixed-size preamble of every snapshot stream.
type header struct {
	Magic      [6]byte
	Codec      uint8
	_          uint8 // reserved
	Count      uint64
	PayloadLen uint64
	Checksum   [32]byte
}

// Save writes buf's elements to w, compressing the payload with codec.
func Save(w io.Writer, buf *buffer.Buffer, codec Codec) error {
	raw := make([]byte, buf.Len()*buffer.ElemSize)
	for i, v := range buf.Data() {
		binary.LittleEndian.PutUint32(raw[i*buffer.ElemSize:], math.Float32bits(v))
	}

	payload, err := compress(codec, raw)
	if err != nil {
		return err
	}

	hdr := header{
		Magic:      magic,
		Codec:      uint8(codec),
		Count:      uint64(buf.Len()),
		PayloadLen: uint64(len(payload)),
		Checksum:   sha256.Sum256(raw),
	}
	if err := binary.Write(w, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("snapshot: write header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("snapshot: write payload: %w", err)
	}
	return nil
}

// Load reads a snapshot from r and allocates a new buffer holding its
// contents. The payload checksum is verified before any buffer is returned.
func Load(r io.Reader) (*buffer.Buffer, error) {
	var hdr header
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("snapshot: read header: %w", err)
	}
	if hdr.Magic != magic {
		return nil, ErrBadMagic
	}

	payload := make([]byte, hdr.PayloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("snapshot: read payload: %w", err)
	}

	rawSize := int(hdr.Count) * buffer.ElemSize
	raw, err := decompress(Codec(hdr.Codec), payload, rawSize)
	if err != nil {
		return nil, err
	}
	if len(raw) != rawSize {
		return nil, fmt.Errorf("snapshot: payload holds %d bytes, header promises %d", len(raw), rawSize)
	}
	if sha256.Sum256(raw) != hdr.Checksum {
		return nil, ErrChecksumMismatch
	}

	buf, err := buffer.New(int(hdr.Count))
	if err != nil {
		return nil, err
	}
	data := buf.Data()
	for i := range data {
		data[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*buffer.ElemSize:]))
	}
	return buf, nil
}

func compress(codec Codec, raw []byte) ([]byte, error) {
	switch codec {
	case None:
		return raw, nil
	case LZ4:
		var out bytes.Buffer
		zw := lz4.NewWriter(&out)
		if _, err := zw.Write(raw); err != nil {
			return nil, fmt.Errorf("snapshot: lz4 compress: %w", err)
		}
		if err := zw.Close(); err != nil {
			return nil, fmt.Errorf("snapshot: lz4 compress: %w", err)
		}
		return out.Bytes(), nil
	case Zstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, fmt.Errorf("snapshot: zstd compress: %w", err)
		}
		defer enc.Close()
		return enc.EncodeAll(raw, nil), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCodec, codec)
	}
}

func decompress(codec Codec, payload []byte, rawSize int) ([]byte, error) {
	switch codec {
	case None:
		return payload, nil
	case LZ4:
		raw := make([]byte, rawSize)
		if _, err := io.ReadFull(lz4.NewReader(bytes.NewReader(payload)), raw); err != nil {
			return nil, fmt.Errorf("snapshot: lz4 decompress: %w", err)
		}
		return raw, nil
	case Zstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("snapshot: zstd decompress: %w", err)
		}
		defer dec.Close()
		raw, err := dec.DecodeAll(payload, nil)
		if err != nil {
			return nil, fmt.Errorf("snapshot: zstd decompress: %w", err)
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCodec, codec)
	}
}
