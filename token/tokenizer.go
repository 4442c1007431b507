package token

import (
	"unicode/utf8"

	"github.com/signadot/lexkit/debug"
)

// Tokenizer tokenizes a single source string.  It is single use: construct
// it, call [Tokenizer.Tokenize] once, then read [Tokenizer.Tokens].
//
// A Tokenizer is not safe for concurrent use.
type Tokenizer struct {
	src  string
	pos  int
	toks []Token
	ran  bool
}

// NewTokenizer creates a Tokenizer over src.  src is not validated; the
// empty string yields no tokens.
func NewTokenizer(src string) *Tokenizer {
	return &Tokenizer{src: src}
}

// Tokenize scans the whole source.  At each offset the categories are tried
// in priority order and the first one matching at that offset consumes its
// lexeme.  Whitespace is consumed without producing a token.
//
// If no category matches, Tokenize returns an *InvalidCharErr and no tokens
// are retained.  Calling Tokenize again returns ErrReused.
func (t *Tokenizer) Tokenize() error {
	if t.ran {
		return ErrReused
	}
	t.ran = true
	for t.pos < len(t.src) {
		tok, n := t.next()
		if n == 0 {
			t.toks = nil
			c, _ := utf8.DecodeRuneInString(t.src[t.pos:])
			return NewInvalidCharErr(c, posAt(t.src, t.pos))
		}
		if tok.Category != Whitespace {
			t.toks = append(t.toks, tok)
		}
		t.pos += n
	}
	if debug.Tokens() {
		debug.LogAny(t.toks)
	}
	return nil
}

// next matches one lexeme at the cursor, returning 0 if nothing matches.
func (t *Tokenizer) next() (Token, int) {
	d := t.src[t.pos:]
	for i := range rules {
		r := &rules[i]
		n := r.match(d)
		if n == 0 {
			continue
		}
		if debug.Scan() {
			debug.Logf("scan %s %q at %d\n", r.cat, d[:n], t.pos)
		}
		return Token{Category: r.cat, Lexeme: d[:n], Offset: t.pos}, n
	}
	return Token{}, 0
}

// Tokens returns a copy of the tokens produced by Tokenize.  It is empty
// before Tokenize has run or if Tokenize failed.
func (t *Tokenizer) Tokens() []Token {
	if len(t.toks) == 0 {
		return nil
	}
	res := make([]Token, len(t.toks))
	copy(res, t.toks)
	return res
}

// Offset returns the current scan offset.
func (t *Tokenizer) Offset() int {
	return t.pos
}
