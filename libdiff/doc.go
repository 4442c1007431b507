// Package libdiff computes differences between token sequences.
//
// Tokens are compared by category and lexeme; offsets do not take part, so
// two sources which differ only in whitespace have no differences.
package libdiff
