// Package main runs chemcalcd, the in-memory HTTP keypad server. It holds
// calculator sessions for remote callers (a keypad UI, or chemcalc with
// --remote) and serves the API described in package server.
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Each request is written to the access log on stderr.
//   - The default listen address is :8080.
//   - SIGINT/SIGTERM stop accepting connections and drain in-flight
//     requests for up to five seconds.
package main
