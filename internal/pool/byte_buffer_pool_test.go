package pool

import "testing"

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.MustWrite([]byte{1, 2, 3})
	bb.MustWriteByte(4)

	if got := bb.Bytes(); len(got) != 4 {
		t.Fatalf("expected 4 bytes, got %d", len(got))
	}

	bb.Reset()
	if bb.Len() != 0 {
		t.Fatalf("expected empty buffer after reset, got len %d", bb.Len())
	}
}

func TestSectionPool_GetPut(t *testing.T) {
	bb := Get()
	bb.MustWrite([]byte{1, 2, 3})
	Put(bb)

	bb2 := Get()
	if bb2.Len() != 0 {
		t.Fatalf("expected pooled buffer to be reset, got len %d", bb2.Len())
	}
	Put(bb2)
}
