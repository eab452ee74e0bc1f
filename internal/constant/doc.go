// Package constant holds the fixed table of single-symbol constants the
// calculator understands.
//
// Each constant is substituted textually, wrapped in parentheses, before
// any other rewriting of an input expression takes place:
//
//	π  the circle constant
//	K  Coulomb's constant, 9 * 10^9
//	h  Planck's constant, 6.626 * 10^-34
//	c  the speed of light, 3 * 10^8
package constant
