// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package fault

// Recorder remembers the classification of the most recent failure it
// observed. It answers "what failed last?" without threading error
// values through every layer.
//
// A Recorder belongs to exactly one goroutine and is not safe for
// concurrent use. Goroutines that want last-failure tracking each own
// their own Recorder; ownership is what keeps one goroutine's failures
// invisible to another's.
type Recorder struct {
	last Code
}

// Observe records the code carried by err and returns err unchanged,
// so it wraps call sites inline:
//
//	if err := rec.Observe(cstr.Copy(dst, src)); err != nil { ...
//
// A nil err records nothing: the cell keeps the previous failure until
// the next failing call overwrites it. Errors from outside this module
// record [CodeUnknown].
func (r *Recorder) Observe(err error) error {
	if err != nil {
		r.last = CodeOf(err)
	}
	return err
}

// Last returns the code of the most recent failure observed, or
// [CodeOK] if none has been observed since construction or [Recorder.Reset].
func (r *Recorder) Last() Code {
	return r.last
}

// Reset clears the recorder back to [CodeOK].
func (r *Recorder) Reset() {
	r.last = CodeOK
}
