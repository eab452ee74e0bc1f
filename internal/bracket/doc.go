// Package bracket keeps closing parentheses from outnumbering opening ones
// in a live input buffer.
//
// Accept is consulted before every append. A rejected ')' is dropped
// silently; trailing unmatched '(' is allowed and only fails later, at
// evaluation time.
package bracket
