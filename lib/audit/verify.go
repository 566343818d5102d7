// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package audit

import (
	"bytes"
	"fmt"
	"io"
)

// Verify walks the trail in source and checks that it could only have
// been produced by appending: sequence numbers count up from 1 and
// every record carries the digest of its predecessor's bytes. It
// returns the number of intact records; on failure, the count covers
// the records before the break and the error names the first record
// that does not fit the chain.
func Verify(source io.Reader) (int, error) {
	reader := NewReader(source)
	var prev Digest
	count := 0
	for {
		record, err := reader.Next()
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("record %d: %w", count+1, err)
		}
		if record.Seq != uint64(count)+1 {
			return count, fmt.Errorf("record %d: sequence %d breaks the count", count+1, record.Seq)
		}
		if !bytes.Equal(record.Prev, prev[:]) {
			return count, fmt.Errorf("record %d: chain broken: carries prev %x, want %s",
				record.Seq, record.Prev, FormatDigest(prev))
		}
		prev = digestOf(reader.Frame())
		count++
	}
}

// Dump renders every record in source to destination, one line per
// record in the [Record.String] format, and returns the number of
// records written. Dump does not check the chain; pair it with
// [Verify] when integrity matters.
func Dump(source io.Reader, destination io.Writer) (int, error) {
	reader := NewReader(source)
	count := 0
	for {
		record, err := reader.Next()
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("record %d: %w", count+1, err)
		}
		if _, err := fmt.Fprintln(destination, record.String()); err != nil {
			return count, fmt.Errorf("write rendering: %w", err)
		}
		count++
	}
}
