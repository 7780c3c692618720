package packet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndShrink(t *testing.T) {
	b := New(16)
	b.Append([]byte{0x01, 0x02, 0x03, 0x04})
	assert.Equal(t, 4, b.Len())

	tag := b.AppendZero(4)
	copy(tag, []byte{0xaa, 0xbb, 0xcc, 0xdd})
	assert.Equal(t, 8, b.Len())
	assert.Equal(t, []byte{0xaa, 0xbb, 0xcc, 0xdd}, b.Tail(4))

	b.Shrink(4)
	assert.Equal(t, 4, b.Len())
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, b.Bytes())
}

func TestShrinkPastLengthPanics(t *testing.T) {
	b := Wrap([]byte{0x01, 0x02})
	assert.Panics(t, func() { b.Shrink(3) })
}

func TestReadRegion(t *testing.T) {
	b := Wrap([]byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05})
	dst := make([]byte, 3)
	b.ReadRegion(2, 3, dst)
	assert.Equal(t, []byte{0x02, 0x03, 0x04}, dst)
	require.Equal(t, 6, b.Len())
}

func TestPutAndReadUint32(t *testing.T) {
	b := New(8)
	b.Append(make([]byte, 4))
	b.PutUint32(0, 0xdeadbeef)
	assert.Equal(t, uint32(0xdeadbeef), b.Uint32(0))
}

func TestOffset(t *testing.T) {
	b := Wrap(make([]byte, 12)).WithOffset(0)
	assert.Equal(t, 0, b.Offset())
}
