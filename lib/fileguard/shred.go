// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package fileguard

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/chacha20"
)

const (
	// shredPasses is the number of full overwrite passes Remove makes
	// over a file opened with SecureDelete before unlinking it.
	shredPasses = 3

	// shredChunkSize is the write granularity of an overwrite pass.
	shredChunkSize = 64 * 1024

	// rekeyInterval bounds the bytes drawn from one keystream. The
	// cipher's own per-nonce limit is far higher; re-keying every GiB
	// keeps each stream comfortably inside it for any file size.
	rekeyInterval = 1 << 30
)

// overwrite fills the file's current contents with fresh keystream
// pseudorandomness, once per pass, syncing after each pass so the
// writes reach the device rather than the page cache.
func overwrite(file *os.File, passes int) error {
	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat: %w", err)
	}
	size := info.Size()
	if size == 0 {
		return nil
	}

	buffer := make([]byte, shredChunkSize)
	for pass := 0; pass < passes; pass++ {
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("pass %d: seek: %w", pass+1, err)
		}

		cipher, err := newShredStream()
		if err != nil {
			return fmt.Errorf("pass %d: %w", pass+1, err)
		}
		var sinceRekey int64

		remaining := size
		for remaining > 0 {
			chunk := int64(len(buffer))
			if remaining < chunk {
				chunk = remaining
			}
			if sinceRekey+chunk > rekeyInterval {
				if cipher, err = newShredStream(); err != nil {
					return fmt.Errorf("pass %d: %w", pass+1, err)
				}
				sinceRekey = 0
			}
			cipher.XORKeyStream(buffer[:chunk], buffer[:chunk])
			if _, err := file.Write(buffer[:chunk]); err != nil {
				return fmt.Errorf("pass %d: write: %w", pass+1, err)
			}
			remaining -= chunk
			sinceRekey += chunk
		}

		if err := file.Sync(); err != nil {
			return fmt.Errorf("pass %d: sync: %w", pass+1, err)
		}
	}
	return nil
}

// newShredStream builds a ChaCha20 stream under a fresh random key
// and nonce.
func newShredStream() (*chacha20.Cipher, error) {
	key := make([]byte, chacha20.KeySize)
	nonce := make([]byte, chacha20.NonceSize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("shred key: %w", err)
	}
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("shred nonce: %w", err)
	}
	cipher, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		return nil, fmt.Errorf("shred cipher: %w", err)
	}
	return cipher, nil
}
