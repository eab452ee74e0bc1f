// Package commands defines the chemcalc CLI and wires dependencies for subcommands.
//
// Commands
//
//   - key <name>...   Press keys on the saved session ("pi", "sqrt", "(", "7", ...)
//   - clear           Empty the input buffer
//   - back            Remove the last character
//   - eval            Evaluate the buffer and print the result
//   - show            Print the buffer
//   - history         Print recent evaluations
//   - calc <expr>     Evaluate an expression in a fresh session and exit
//   - normalize <expr> Print the expression the evaluator would see
//   - constants       List the constant symbols
//   - repl            Interactive session with line editing and history
//
// # Implementation
//
// The root command resolves configuration and builds a dependency graph
// (stores, evaluator, calculator service or remote client) before any
// subcommand runs. The local session lives in the home directory, so
// successive invocations act on the same buffer.
package commands
