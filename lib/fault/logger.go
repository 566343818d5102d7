// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package fault

import "sync"

// Logger observes every fault report in the process. It receives the
// classification, the reporting call site, and a formatted message.
// The hook runs synchronously inside the failing call, before the
// error is returned to the caller, so a trail written from it is
// ordered with the failures it records. Implementations must therefore
// be fast and must not call back into reporting primitives.
type Logger func(code Code, site, message string)

var (
	loggerMu sync.RWMutex
	logger   Logger
)

// SetLogger installs the process-wide hook. Install once during
// startup, before primitives run concurrently; a nil fn removes the
// hook. The default is no hook, which makes reporting a cheap no-op.
func SetLogger(fn Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = fn
}

func emit(code Code, site, message string) {
	loggerMu.RLock()
	fn := logger
	loggerMu.RUnlock()
	if fn != nil {
		fn(code, site, message)
	}
}
