package bitio

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vectortile/roadaux/internal/pool"
)

func newTestBuf() *pool.ByteBuffer {
	return pool.NewByteBuffer(16)
}

func TestWriteReadBits_RoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteBits(0b101, 3)
	w.WriteBits(0, 1)
	w.WriteBits(0xFFFFFFFF, 32)
	data := append([]byte(nil), w.Bytes()...)
	w.Close()

	r := NewReader(data)
	v1, err := r.ReadBits(3)
	require.NoError(t, err)
	require.Equal(t, uint32(0b101), v1)

	v2, err := r.ReadBits(1)
	require.NoError(t, err)
	require.Equal(t, uint32(0), v2)

	v3, err := r.ReadBits(32)
	require.NoError(t, err)
	require.Equal(t, uint32(0xFFFFFFFF), v3)
}

func TestReadBits_ShortRead(t *testing.T) {
	w := NewWriter()
	w.WriteBits(1, 1)
	data := append([]byte(nil), w.Bytes()...)
	w.Close()

	r := NewReader(data)
	_, err := r.ReadBits(1)
	require.NoError(t, err)
	_, err = r.ReadBits(1)
	require.Error(t, err)
}

func TestGamma_RoundTrip(t *testing.T) {
	for _, x := range []uint32{1, 2, 3, 4, 7, 8, 255, 256, 1<<20 + 7, 0xFFFFFFFF} {
		w := NewWriter()
		WriteGamma(w, x)
		data := append([]byte(nil), w.Bytes()...)
		w.Close()

		r := NewReader(data)
		got, err := ReadGamma(r)
		require.NoError(t, err)
		require.Equal(t, x, got, "gamma round trip for %d", x)
	}
}

func TestGamma_EightBitPattern(t *testing.T) {
	// gamma(8): floor(log2 8)=3 zero bits then 1000 (4 bits, MSB first).
	w := NewWriter()
	WriteGamma(w, 8)
	data := append([]byte(nil), w.Bytes()...)
	w.Close()

	// 7 meaningful bits emitted in order 0,0,0,1,0,0,0, packed LSB-first so
	// the i-th emitted bit lands at byte bit position i: only position 3 is set.
	require.Equal(t, byte(0b00001000), data[0])
}

func TestDelta_RoundTrip(t *testing.T) {
	for _, x := range []uint32{1, 2, 3, 4, 5, 17, 1000, 1 << 30, 0xFFFFFFFF} {
		w := NewWriter()
		WriteDelta(w, x)
		data := append([]byte(nil), w.Bytes()...)
		w.Close()

		r := NewReader(data)
		got, err := ReadDelta(r)
		require.NoError(t, err)
		require.Equal(t, x, got, "delta round trip for %d", x)
	}
}

func TestZigZag_RoundTrip(t *testing.T) {
	values := []int32{0, 1, -1, 2, -2, 1000, -1000, 1<<31 - 1, -(1 << 31)}
	for _, n := range values {
		z := ZigZagEncode32(n)
		got := ZigZagDecode32(z)
		require.Equal(t, n, got, "zigzag round trip for %d", n)
	}
}

func TestZigZag_SmallMagnitudeMapsSmall(t *testing.T) {
	require.Equal(t, uint32(0), ZigZagEncode32(0))
	require.Equal(t, uint32(1), ZigZagEncode32(-1))
	require.Equal(t, uint32(2), ZigZagEncode32(1))
	require.Equal(t, uint32(3), ZigZagEncode32(-2))
}

func TestVaruint_RoundTrip(t *testing.T) {
	bb := newTestBuf()
	for _, v := range []uint64{0, 1, 127, 128, 300, 1 << 20, 1 << 40} {
		AppendVaruint(bb, v)
	}

	off := 0
	for _, want := range []uint64{0, 1, 127, 128, 300, 1 << 20, 1 << 40} {
		got, next, err := ReadVaruint(bb.Bytes(), off)
		require.NoError(t, err)
		require.Equal(t, want, got)
		off = next
	}
	require.Equal(t, len(bb.Bytes()), off)
}

func TestReader_Exhausted(t *testing.T) {
	w := NewWriter()
	w.WriteBits(0b11, 2)
	data := append([]byte(nil), w.Bytes()...)
	w.Close()

	r := NewReader(data)
	require.False(t, r.Exhausted())
	_, err := r.ReadBits(2)
	require.NoError(t, err)
	require.True(t, r.Exhausted())
}
