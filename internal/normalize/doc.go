// Package normalize rewrites loosely typed calculator input into an
// expression a plain arithmetic evaluator can consume.
//
// Normalize runs a fixed, ordered list of rules. Each rule is a single pass
// over the output of the previous rule; no rule is repeated until a fixed
// point is reached. The order is:
//
//  1. constants     every constant symbol becomes its parenthesized expansion
//  2. digit-paren   2(   -> 2*(
//  3. close-digit   )2   -> )*2
//  4. digit-letter  2a   -> 2*a
//  5. letter-digit  a2   -> a*2
//  6. close-letter  )a   -> )*a
//  7. sqrt          √16 -> sqrt(16), √(4+5) -> sqrt((4+5))
//
// A parenthesized root argument ends at the first ')' after the root sign,
// so nested groups inside a root are cut short: √(2+3*(4)^2) becomes
// sqrt((2+3*(4))^2). Callers relying on nested root arguments must write
// them without inner parentheses.
package normalize
