// Package calculator drives a persisted calculator session.
//
// It restores the input buffer from a snapshot store, applies key presses
// and evaluations through a session.Session, saves the buffer after every
// change, and records each evaluation in a history store.
package calculator
