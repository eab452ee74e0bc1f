// Package store provides file-based persistence for chemcalc's session
// state.
//
// It contains concrete implementations of the domain storage interfaces,
// serialising data as JSON on disk. All methods are concurrency-safe via
// internal locking. Stored files live under the user's configured home
// directory.
//
// The package includes stores for:
//   - The current input buffer (SessionFileStore)
//   - The evaluation history (HistoryFileStore)
//
// When a passphrase is configured, each file is sealed with a key derived
// by scrypt and encrypted with ChaCha20-Poly1305.
package store
