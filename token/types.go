package token

import (
	"fmt"
	"strings"
)

// Category classifies a lexeme.  The declaration order is the priority
// order in which categories are tried at each offset.
type Category int

const (
	Whitespace Category = iota
	Keyword
	Literal
	Operator
	Punctuation
	Identifier
)

var categoryNames = [...]string{
	Whitespace:  "WHITESPACE",
	Keyword:     "KEYWORD",
	Literal:     "LITERAL",
	Operator:    "OPERATOR",
	Punctuation: "PUNCTUATION",
	Identifier:  "IDENTIFIER",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Categories returns all categories in priority order.
func Categories() []Category {
	res := make([]Category, len(categoryNames))
	for i := range res {
		res[i] = Category(i)
	}
	return res
}

// ParseCategory parses a category name, ignoring case.
func ParseCategory(s string) (Category, error) {
	for i, name := range categoryNames {
		if strings.EqualFold(s, name) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownCategory, s)
}

// Token is a classified lexeme.  Offset is the byte offset of the lexeme in
// the tokenized input.
type Token struct {
	Category Category
	Lexeme   string
	Offset   int
}

func (t Token) Info() string {
	return fmt.Sprintf("%s %q at offset %d", t.Category, t.Lexeme, t.Offset)
}

func (t Token) String() string {
	return t.Category.String() + ": " + t.Lexeme
}
