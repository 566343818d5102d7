// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package audit

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/zeebo/blake3"

	"github.com/bulwark-project/bulwark/lib/fault"
)

// Digest is a 32-byte BLAKE3 digest linking one trail record to the
// next. The zero value is the genesis digest carried by a trail's
// first record.
type Digest [32]byte

// recordDomainKey is the BLAKE3 keyed-hash domain for trail records.
// The key is the ASCII encoding of the domain name, zero-padded to 32
// bytes: readable in hex dumps, opaque to the hash. Changing it
// invalidates every existing trail.
var recordDomainKey = [32]byte{
	'b', 'u', 'l', 'w', 'a', 'r', 'k', '.', 'a', 'u', 'd', 'i', 't', '.',
	'r', 'e', 'c', 'o', 'r', 'd', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Record is one entry in a trail. Seq starts at 1 and increments by
// one per append; Time is nanoseconds since the Unix epoch; Prev is
// the digest of the preceding record's encoded bytes (the genesis
// digest for the first record).
type Record struct {
	Seq     uint64     `cbor:"seq"`
	Time    int64      `cbor:"time"`
	Code    fault.Code `cbor:"code"`
	Site    string     `cbor:"site,omitempty"`
	Message string     `cbor:"message"`
	Prev    []byte     `cbor:"prev"`
}

// String renders the record on one line, the format Dump emits:
//
//	#3 2026-08-26T09:15:42.114157Z [out_of_bounds] lib/cstr/copy.go:51 cstr.copy: source does not fit
func (r *Record) String() string {
	timestamp := time.Unix(0, r.Time).UTC().Format(time.RFC3339Nano)
	if r.Site == "" {
		return fmt.Sprintf("#%d %s [%s] %s", r.Seq, timestamp, r.Code, r.Message)
	}
	return fmt.Sprintf("#%d %s [%s] %s %s", r.Seq, timestamp, r.Code, r.Site, r.Message)
}

// digestOf computes the record-domain keyed digest of an encoded
// record frame.
func digestOf(frame []byte) Digest {
	// NewKeyed requires exactly 32 bytes, which recordDomainKey
	// guarantees, so the error path is unreachable.
	hasher, err := blake3.NewKeyed(recordDomainKey[:])
	if err != nil {
		panic("audit: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(frame)
	var digest Digest
	copy(digest[:], hasher.Sum(nil))
	return digest
}

// FormatDigest returns the hex encoding of a digest, the canonical
// form for logs and CLI output.
func FormatDigest(digest Digest) string {
	return hex.EncodeToString(digest[:])
}
