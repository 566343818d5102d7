// Copyright 2026 The Bulwark Authors
// SPDX-License-Identifier: Apache-2.0

package fault

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// Fault is the error type produced by every fallible primitive in this
// module. It carries the failure classification, the operation that
// failed, and the source location that reported it.
type Fault struct {
	// Code classifies the failure. Never CodeOK or CodeOverlap.
	Code Code

	// Op names the failing operation, such as "cstr.copy".
	Op string

	// Message describes the specific condition.
	Message string

	// Site is the reporting call site as "dir/file.go:line".
	Site string

	// Err is the underlying cause, if any.
	Err error
}

// Error formats as "[code] op: message" with the cause appended when
// present.
func (f *Fault) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("[%s] %s: %s: %v", f.Code, f.Op, f.Message, f.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", f.Code, f.Op, f.Message)
}

// Unwrap returns the underlying cause.
func (f *Fault) Unwrap() error {
	return f.Err
}

// New builds a Fault, captures the caller's location, and reports it
// through the installed logger hook before returning.
func New(code Code, op, message string) *Fault {
	return report(code, op, message, nil)
}

// Newf is [New] with fmt.Sprintf formatting of the message.
func Newf(code Code, op, format string, args ...any) *Fault {
	return report(code, op, fmt.Sprintf(format, args...), nil)
}

// Wrap builds a Fault around an underlying cause. The cause stays
// reachable through errors.Is and errors.As.
func Wrap(code Code, op, message string, err error) *Fault {
	return report(code, op, message, err)
}

// Note reports an informational condition through the logger hook
// without producing an error. The operation that calls Note still
// succeeds; use it for conditions worth surfacing, such as
// [CodeOverlap].
func Note(code Code, op, message string) {
	emit(code, callSite(2), op+": "+message)
}

// report is the single construction path. Every exported constructor
// sits exactly one frame above it so the captured site is the
// primitive that failed, not this package.
func report(code Code, op, message string, err error) *Fault {
	f := &Fault{
		Code:    code,
		Op:      op,
		Message: message,
		Site:    callSite(3),
		Err:     err,
	}
	text := op + ": " + message
	if err != nil {
		text += ": " + err.Error()
	}
	emit(code, f.Site, text)
	return f
}

// callSite returns "dir/file.go:line" for the frame skip levels up,
// keeping the last two path components.
func callSite(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	if i := strings.LastIndexByte(file, '/'); i >= 0 {
		if j := strings.LastIndexByte(file[:i], '/'); j >= 0 {
			file = file[j+1:]
		}
	}
	return file + ":" + strconv.Itoa(line)
}
