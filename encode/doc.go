// Package encode renders token sequences.
//
// [TextFormat] writes one "<CATEGORY>: <lexeme>" line per token.
// [JSONFormat] and [YAMLFormat] write a list of objects with category,
// lexeme and offset fields.
package encode
