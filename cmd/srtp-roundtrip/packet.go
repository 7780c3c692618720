package main

import (
	"github.com/lanikai/srtp/internal/packet"
	"github.com/lanikai/srtp/internal/rtpheader"
)

const headerLength = 12

// buildPacket constructs a minimal RTP packet (fixed header, no CSRC or
// extension) carrying payload.
func buildPacket(ssrc uint32, sequence uint16, payload []byte) *packet.Buffer {
	hdr := rtpheader.Header{
		PayloadType: 96,
		Sequence:    sequence,
		Timestamp:   0,
		SSRC:        ssrc,
	}

	buf := packet.New(hdr.Length() + len(payload) + 32)
	hdrBytes := make([]byte, hdr.Length())
	hdr.Marshal(hdrBytes)
	buf.Append(hdrBytes)
	buf.Append(payload)
	return buf
}
