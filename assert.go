package silo

import "fmt"

// assertf panics with the formatted message when Config.Debug() is enabled
// and cond is false. It is the runtime stand-in for the original's
// compile-time NDEBUG-gated asserts: contract violations (out-of-bounds
// push, pop from empty, double free, iterating while mutating) are only
// checked when the caller opted into debug mode.
func assertf(cond bool, format string, args ...any) {
	if !Config.debug {
		return
	}
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
