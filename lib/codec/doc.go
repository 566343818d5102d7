// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides Bulwark's standard CBOR encoding configuration.
//
// Bulwark uses two serialization formats with a clear boundary:
//
//   - CBOR for the on-disk audit trail: every record in a trail file is
//     one CBOR map, and the record digests that chain the trail are
//     computed over the encoded bytes.
//   - JSON for CLI output, produced by the tools that read trails.
//
// This package provides the shared CBOR encoding and decoding modes so
// that every Bulwark package encodes identically without duplicating
// configuration. The encoder uses Core Deterministic Encoding (RFC 8949
// §4.2): sorted map keys, smallest integer encoding, no
// indefinite-length items. Same logical data always produces identical
// bytes — which is what makes a digest over those bytes meaningful. A
// record re-encoded on a different machine, architecture, or library
// version must hash to the same value, or trail verification would
// report tampering that never happened.
//
// Usage:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// [Diagnose] renders encoded bytes in CBOR diagnostic notation
// (RFC 8949 §8) for inspection tooling.
package codec
