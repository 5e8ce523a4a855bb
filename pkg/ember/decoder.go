// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Robin Achterberg, Thermetra

package ember

// Decoder is a byte-stream state machine that reassembles Ember frames. Feed
// it one byte at a time; it returns a RawPacket when a frame-end byte closes
// a body of exactly PacketLength data bytes, and nil otherwise.
//
// A Decoder owns its buffer and escape flag exclusively and is not safe for
// concurrent use. Use one Decoder per byte source.
type Decoder struct {
	escaped  bool
	buffer   []byte
	frames   uint64
	discards uint64
}

// NewDecoder creates a decoder ready to accept a byte stream.
func NewDecoder() *Decoder {
	return &Decoder{
		buffer: make([]byte, 0, PacketLength),
	}
}

// Reset clears the in-progress buffer and escape flag unconditionally.
// Call it after closing and reopening the byte source.
func (d *Decoder) Reset() {
	d.escaped = false
	d.buffer = d.buffer[:0]
}

// DecodeByte consumes one byte from the stream. When the byte completes a
// valid 18-byte frame it returns the frame body as a freshly allocated
// RawPacket; in every other case it returns nil.
//
// Control bytes are recognized on the raw incoming byte only outside escape
// mode. An escaped byte is appended literally even when its value matches a
// control code. A frame-end byte closing anything other than 18 accumulated
// bytes discards the buffer with a logged warning; no error is raised and
// the decoder immediately resumes listening. The buffer is not capped
// mid-frame: a stream that never delivers a frame boundary will keep
// growing it.
func (d *Decoder) DecodeByte(b byte) RawPacket {
	if d.escaped {
		d.buffer = append(d.buffer, b)
		d.escaped = false
		return nil
	}

	switch b {
	case EscapeByte:
		d.escaped = true

	case FrameStart:
		// A start byte abandons whatever was in progress.
		d.buffer = d.buffer[:0]

	case FrameEnd:
		if len(d.buffer) == PacketLength {
			packet := make(RawPacket, PacketLength)
			copy(packet, d.buffer)
			d.buffer = d.buffer[:0]
			d.frames++
			return packet
		}
		Logf("ember: discarding frame with %d bytes (want %d)", len(d.buffer), PacketLength)
		d.discards++
		d.buffer = d.buffer[:0]

	default:
		d.buffer = append(d.buffer, b)
	}

	return nil
}

// Pending returns the number of data bytes accumulated for the frame in
// progress.
func (d *Decoder) Pending() int {
	return len(d.buffer)
}

// Frames returns the number of complete frames emitted since creation.
func (d *Decoder) Frames() uint64 {
	return d.frames
}

// Discards returns the number of frames dropped at a frame-end byte because
// their length was not PacketLength.
func (d *Decoder) Discards() uint64 {
	return d.discards
}
