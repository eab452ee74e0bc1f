// Package remote provides an HTTP implementation of the
// domain.CalculatorService interface backed by a chemcalcd server.
//
// The server holds the session; this client only forwards key presses and
// evaluations and decodes the resulting state. A session is created lazily
// on first use unless an existing ID is supplied.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as errors with the HTTP method,
// full URL, and status text to aid diagnostics.
package remote
