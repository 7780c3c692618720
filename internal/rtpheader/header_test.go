package rtpheader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalAndParse(t *testing.T) {
	in := Header{
		Marker:      true,
		PayloadType: 100,
		Sequence:    12345,
		Timestamp:   0xdeadbeef,
		SSRC:        0xcafebabe,
		CSRC:        []uint32{0x11111111},
	}

	buf := make([]byte, in.Length())
	n := in.Marshal(buf)
	assert.Equal(t, in.Length(), n)

	out, length, err := Parse(buf)
	require.NoError(t, err)
	assert.Equal(t, in.Length(), length)
	assert.Equal(t, in.Marker, out.Marker)
	assert.Equal(t, in.PayloadType, out.PayloadType)
	assert.Equal(t, in.Sequence, out.Sequence)
	assert.Equal(t, in.Timestamp, out.Timestamp)
	assert.Equal(t, in.SSRC, out.SSRC)
	assert.Equal(t, in.CSRC, out.CSRC)
}

func TestParseShortBuffer(t *testing.T) {
	_, _, err := Parse([]byte{0x80, 0x60, 0x00})
	assert.Error(t, err)
}

func TestParseBadVersion(t *testing.T) {
	buf := make([]byte, fixedHeaderSize)
	buf[0] = 0x00 // version 0
	_, _, err := Parse(buf)
	assert.Error(t, err)
}

func TestPayloadLength(t *testing.T) {
	h := Header{}
	// 12-byte header, 26-byte total packet, 10-byte trailer (auth tag).
	assert.Equal(t, 4, h.PayloadLength(26, 10))
}
