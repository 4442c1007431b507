package token

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrReused           = errors.New("tokenizer already run")
	ErrUnknownCategory  = errors.New("unknown category")
)

// InvalidCharErr is returned when no category matches at an offset.
type InvalidCharErr struct {
	Pos  Pos
	Char rune
}

func NewInvalidCharErr(c rune, p *Pos) *InvalidCharErr {
	return &InvalidCharErr{Pos: *p, Char: c}
}

func (e *InvalidCharErr) Unwrap() error {
	return ErrInvalidCharacter
}

func (e *InvalidCharErr) Error() string {
	return fmt.Sprintf("%s %q at %s", ErrInvalidCharacter.Error(), e.Char, e.Pos.String())
}

// Offset returns the byte offset of the offending character.
func (e *InvalidCharErr) Offset() int {
	return e.Pos.I
}
