// Package must holds contract assertions. A failed assertion is a caller
// bug, never a recoverable condition, so every helper panics instead of
// returning an error.
package must

import "strconv"

// Be panics with msg unless expr holds.
func Be(expr bool, msg string) {
	if !expr {
		panic("assertion failed: " + msg)
	}
}

// Index panics unless i is a valid index for a sequence of length n. The
// what argument names the sequence in the panic message.
func Index(i, n int, what string) {
	if i < 0 || i >= n {
		panic("index " + strconv.Itoa(i) + " out of range for " + what + " of length " + strconv.Itoa(n))
	}
}
