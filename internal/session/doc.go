// Package session owns a calculator input buffer and the four operations a
// presentation layer drives it with: append, clear, backspace and evaluate.
//
// A Session is a plain value owned by its caller. It performs no I/O and no
// locking; callers that share one across goroutines must serialise access.
package session
