// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package audit

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/bulwark-project/bulwark/lib/codec"
)

// maxFrameSize bounds one encoded record. Real records are a few
// hundred bytes; a length prefix beyond this is corruption, not data,
// and refusing it keeps a damaged trail from driving allocations.
const maxFrameSize = 1 << 20

// frameHeaderSize is the big-endian length prefix in front of every
// encoded record.
const frameHeaderSize = 4

// encodeFrame renders one record as a self-contained frame: length
// prefix and CBOR body in a single buffer, so a sink can append it
// with one write.
func encodeFrame(record *Record) ([]byte, error) {
	body, err := codec.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	if len(body) > maxFrameSize {
		return nil, fmt.Errorf("record encodes to %d bytes, limit %d", len(body), maxFrameSize)
	}

	frame := make([]byte, frameHeaderSize+len(body))
	binary.BigEndian.PutUint32(frame[:frameHeaderSize], uint32(len(body)))
	copy(frame[frameHeaderSize:], body)
	return frame, nil
}

// Reader iterates a trail stream record by record.
type Reader struct {
	source *bufio.Reader
	frame  []byte
}

// NewReader wraps source for record iteration.
func NewReader(source io.Reader) *Reader {
	return &Reader{source: bufio.NewReader(source)}
}

// Next decodes the next record. It returns io.EOF exactly at a record
// boundary; a stream that ends mid-frame returns a corruption error
// instead, so truncation is never mistaken for a clean end.
func (r *Reader) Next() (*Record, error) {
	var header [frameHeaderSize]byte
	if _, err := io.ReadFull(r.source, header[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("read frame header: %w", err)
	}

	length := binary.BigEndian.Uint32(header[:])
	if length == 0 || length > maxFrameSize {
		return nil, fmt.Errorf("frame length %d is outside (0, %d]", length, maxFrameSize)
	}

	r.frame = make([]byte, length)
	if _, err := io.ReadFull(r.source, r.frame); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("read frame body: %w", err)
	}

	var record Record
	if err := codec.Unmarshal(r.frame, &record); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return &record, nil
}

// Frame returns the encoded bytes of the record most recently returned
// by [Reader.Next]. Chain verification hashes these bytes. The slice
// is valid until the next call to Next.
func (r *Reader) Frame() []byte {
	return r.frame
}
