// Package token provides tokenization of a small C-like language.
//
// [Tokenizer] scans a source string left to right.  At each offset the
// categories are tried in the fixed order Whitespace, Keyword, Literal,
// Operator, Punctuation, Identifier, and the first category matching at that
// offset consumes its lexeme.  Whitespace produces no token.
//
// [Tokenize] is a function for tokenizing a string in one call.
package token
