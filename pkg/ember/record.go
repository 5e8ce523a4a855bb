// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Robin Achterberg, Thermetra

package ember

import (
	"fmt"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Record is one captured frame with its arrival time. Capture files are a
// plain concatenation of CBOR-encoded records, appendable and streamable
// without an index.
type Record struct {
	CapturedAt time.Time
	Packet     []byte
}

// recordWire is the on-disk shape of a Record. The capture time is stored
// as integer Unix microseconds; a float-seconds time tag cannot represent
// microsecond instants exactly at current epoch values.
type recordWire struct {
	CapturedAtMicros int64  `cbor:"1,keyasint"`
	Packet           []byte `cbor:"2,keyasint"`
}

// RecordWriter appends timestamped frames to a capture stream.
type RecordWriter struct {
	enc *cbor.Encoder
}

// NewRecordWriter creates a writer appending records to w.
func NewRecordWriter(w io.Writer) *RecordWriter {
	return &RecordWriter{enc: cbor.NewEncoder(w)}
}

// Write appends one frame with its capture time, truncated to microsecond
// precision. Only complete packet bodies are recorded.
func (w *RecordWriter) Write(capturedAt time.Time, packet RawPacket) error {
	if len(packet) != PacketLength {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(packet), PacketLength)
	}
	return w.enc.Encode(recordWire{CapturedAtMicros: capturedAt.UnixMicro(), Packet: packet})
}

// RecordReader reads a capture stream record by record.
type RecordReader struct {
	dec *cbor.Decoder
}

// NewRecordReader creates a reader consuming records from r.
func NewRecordReader(r io.Reader) *RecordReader {
	return &RecordReader{dec: cbor.NewDecoder(r)}
}

// Read returns the next record, or io.EOF at the end of the stream.
func (r *RecordReader) Read() (*Record, error) {
	var rec recordWire
	if err := r.dec.Decode(&rec); err != nil {
		return nil, err
	}
	return &Record{
		CapturedAt: time.UnixMicro(rec.CapturedAtMicros).UTC(),
		Packet:     rec.Packet,
	}, nil
}
