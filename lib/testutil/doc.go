// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for Bulwark packages.
//
// [OpenDescriptors] counts the file descriptors currently held by the
// test process, read from /proc/self/fd. Acquisition tests compare the
// count before and after a failed open to prove that no descriptor
// leaked on the error path.
//
// [WriteFile] and [Symlink] build filesystem fixtures under a test
// directory and fail the test on error, keeping test bodies free of
// setup error handling.
//
// [UniqueID] generates monotonically increasing identifiers for test
// disambiguation. Use it instead of time.Now() when tests need unique
// file names or record bodies that must be distinguishable in shared
// fixtures.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no Bulwark-internal dependencies.
package testutil
