package snapshot

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strided-ml/strided/internal/buffer"
)

func newFilledBuffer(t *testing.T, n int) *buffer.Buffer {
	t.Helper()
	buf, err := buffer.New(n)
	require.NoError(t, err)
	for i := range buf.Data() {
		buf.Data()[i] = float32(i)*0.25 - 3
	}
	return buf
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	codecs := map[string]Codec{
		"None": None,
		"LZ4":  LZ4,
		"Zstd": Zstd,
	}

	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			src := newFilledBuffer(t, 1000)

			var stream bytes.Buffer
			require.NoError(t, Save(&stream, src, codec))

			got, err := Load(&stream)
			require.NoError(t, err)
			assert.Equal(t, src.Data(), got.Data())
			assert.Zero(t, got.Ptr()%buffer.Alignment, "loaded buffer must keep the alignment guarantee")
		})
	}
}

func TestSaveLoad_Empty(t *testing.T) {
	src, err := buffer.New(0)
	require.NoError(t, err)

	var stream bytes.Buffer
	require.NoError(t, Save(&stream, src, Zstd))

	got, err := Load(&stream)
	require.NoError(t, err)
	assert.Zero(t, got.Len())
}

func TestSave_UnknownCodec(t *testing.T) {
	src := newFilledBuffer(t, 4)
	err := Save(&bytes.Buffer{}, src, Codec(99))
	require.ErrorIs(t, err, ErrUnknownCodec)
}

func TestLoad_BadMagic(t *testing.T) {
	garbage := bytes.Repeat([]byte{0xAB}, 128)
	_, err := Load(bytes.NewReader(garbage))
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestLoad_Truncated(t *testing.T) {
	src := newFilledBuffer(t, 64)
	var stream bytes.Buffer
	require.NoError(t, Save(&stream, src, None))

	_, err := Load(bytes.NewReader(stream.Bytes()[:stream.Len()-10]))
	require.Error(t, err)
}

func TestLoad_ChecksumMismatch(t *testing.T) {
	src := newFilledBuffer(t, 64)
	var stream bytes.Buffer
	require.NoError(t, Save(&stream, src, None))

	corrupted := stream.Bytes()
	headerSize := binary.Size(header{})
	corrupted[headerSize] ^= 0xFF // flip a payload bit past the header

	_, err := Load(bytes.NewReader(corrupted))
	require.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestLoad_UnknownCodec(t *testing.T) {
	src := newFilledBuffer(t, 8)
	var stream bytes.Buffer
	require.NoError(t, Save(&stream, src, None))

	patched := stream.Bytes()
	patched[len(magic)] = 99 // codec byte follows the magic

	_, err := Load(bytes.NewReader(patched))
	require.ErrorIs(t, err, ErrUnknownCodec)
}
