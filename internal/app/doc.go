// Package app wires application dependencies for the CLI.
//
// It layers configuration (defaults, an optional YAML file, then flags),
// builds the concrete stores, evaluator and calculator service from Config,
// and exposes them via the Wire struct for commands to use. With a remote
// URL configured the calculator service is an HTTP client instead.
package app
