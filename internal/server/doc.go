// Package server exposes calculator sessions over a small JSON HTTP API so
// a remote keypad can drive them.
//
// HTTP API
//
//	POST   /sessions                   create a session, returns its State
//	GET    /sessions/{id}              current State
//	DELETE /sessions/{id}              drop the session
//	POST   /sessions/{id}/keys         {"keys": "2(3+1"}; each key is appended
//	POST   /sessions/{id}/clear        empty the buffer
//	POST   /sessions/{id}/backspace    remove the last character
//	POST   /sessions/{id}/evaluate     evaluate; State carries normalized and ok
//	GET    /sessions/{id}/history?limit=N
//	POST   /normalize                  {"expr": "..."} -> {"normalized": "..."}
//	GET    /constants                  the constant table
//
// Behaviour
//
//   - All state is held in memory and lost on process exit.
//   - Responses are JSON. Non-2xx statuses carry a short error message.
//   - Unknown sessions are 404, malformed bodies are 400.
//   - An access log records method, path, remote, status, bytes and
//     duration for each request.
package server
