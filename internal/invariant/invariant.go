// Package invariant provides contract assertions for the URP/BDD engine.
//
// Assertions here panic on violation - these are programmer errors (spec
// §7 "contract violation"), never recoverable user errors. User-facing
// failures (bad PCN files, unknown commands) are returned as errors from
// package errs instead.
package invariant

import (
	"fmt"
	"runtime"
)

// Precondition checks an input contract at function entry.
func Precondition(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("PRECONDITION", format, args...)
	}
}

// Postcondition checks an output contract before a function returns.
func Postcondition(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("POSTCONDITION", format, args...)
	}
}

// Invariant checks an internal consistency condition mid-function.
func Invariant(condition bool, format string, args ...interface{}) {
	if !condition {
		fail("INVARIANT", format, args...)
	}
}

// PositiveVar panics unless k is a valid 1-based variable index, i.e. the
// cofactor/cofactor-derived-operation contract of spec §4.2: "k ≤ 0 to any
// cofactor-based operation is a programmer error and halts execution."
func PositiveVar(k int, name string) {
	Precondition(k > 0, "%s must be a positive variable index, got %d", name, k)
}

// VarInRange panics unless k lies in [1, numVars], the façade's contract
// from spec §4.5.
func VarInRange(k, numVars int, name string) {
	Precondition(k > 0 && k <= numVars, "%s must be in [1, %d], got %d", name, numVars, k)
}

func fail(kind, format string, args ...interface{}) {
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])

	msg := fmt.Sprintf("%s VIOLATION: "+format, append([]interface{}{kind}, args...)...)
	if frame, ok := frames.Next(); ok {
		msg += fmt.Sprintf("\n  at %s:%d", frame.File, frame.Line)
	}
	panic(msg)
}
