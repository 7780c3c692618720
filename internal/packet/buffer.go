// Package packet provides a mutable byte buffer suitable for in-place
// protocol transforms: grow by appending, shrink by truncating, and read
// back an arbitrary region without disturbing the write offset.
package packet

import (
	"encoding/binary"
	"fmt"
)

var networkOrder = binary.BigEndian

// Buffer is a growable, shrinkable byte buffer with a fixed region offset
// (the RTP header start, for callers that prefix the buffer with framing
// this package doesn't know about). It implements the packet buffer
// collaborator interface consumed by the srtp package: Bytes/Offset/Len
// correspond to buffer()/offset()/length(), Append/Shrink mutate the
// logical length in place, and ReadRegion copies out a byte range without
// changing state.
type Buffer struct {
	data   []byte
	offset int
}

// New allocates an empty Buffer with the given starting capacity.
func New(capacity int) *Buffer {
	return &Buffer{data: make([]byte, 0, capacity)}
}

// Wrap adopts b as the buffer's backing storage. The offset is 0.
func Wrap(b []byte) *Buffer {
	return &Buffer{data: b}
}

// WithOffset sets the region offset (e.g. the RTP header start within a
// larger datagram) and returns the buffer for chaining.
func (b *Buffer) WithOffset(offset int) *Buffer {
	b.offset = offset
	return b
}

// Bytes returns the full backing byte slice, offset 0 through Len.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Offset returns the start of the RTP header within Bytes().
func (b *Buffer) Offset() int {
	return b.offset
}

// Len returns the current logical length of the buffer.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Append extends the buffer by copying src onto the end, growing the
// backing array if necessary. A nil src appends nothing; see AppendZero.
func (b *Buffer) Append(src []byte) {
	b.data = append(b.data, src...)
}

// AppendZero extends the buffer by n zero bytes, returning the slice of
// newly appended (zeroed) bytes so the caller can fill it in place.
func (b *Buffer) AppendZero(n int) []byte {
	old := len(b.data)
	b.data = append(b.data, make([]byte, n)...)
	return b.data[old:]
}

// Shrink reduces the logical length by n bytes. It panics if n exceeds the
// current length, since that indicates a caller bug (e.g. stripping an
// auth tag that was never appended).
func (b *Buffer) Shrink(n int) {
	if n > len(b.data) {
		panic(fmt.Sprintf("packet: shrink(%d) exceeds length %d", n, len(b.data)))
	}
	b.data = b.data[:len(b.data)-n]
}

// ReadRegion copies n bytes starting at at into dst, without mutating the
// buffer. dst must have length >= n.
func (b *Buffer) ReadRegion(at, n int, dst []byte) {
	copy(dst, b.data[at:at+n])
}

// Tail returns the last n bytes of the buffer without copying.
func (b *Buffer) Tail(n int) []byte {
	return b.data[len(b.data)-n:]
}

// Region returns a sub-slice [at, at+n) without copying.
func (b *Buffer) Region(at, n int) []byte {
	return b.data[at : at+n]
}

// PutUint32 writes v in network byte order at byte offset at, overwriting
// whatever was there.
func (b *Buffer) PutUint32(at int, v uint32) {
	networkOrder.PutUint32(b.data[at:], v)
}

// Uint32 reads a network-byte-order uint32 at byte offset at.
func (b *Buffer) Uint32(at int) uint32 {
	return networkOrder.Uint32(b.data[at:])
}
