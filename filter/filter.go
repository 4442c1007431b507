// Package filter selects tokens with boolean expressions.
//
// Expressions are evaluated with [github.com/expr-lang/expr] against an
// environment holding the token's category, lexeme and offset:
//
//	category == "KEYWORD" || lexeme startsWith "tmp"
//	is("literal") && offset > 10
package filter

import (
	"fmt"
	"strings"

	"github.com/signadot/lexkit/token"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type Filter struct {
	src string
	prg *vm.Program
}

func env(tok token.Token) map[string]any {
	return map[string]any{
		"category": tok.Category.String(),
		"lexeme":   tok.Lexeme,
		"offset":   tok.Offset,
		"is": func(name string) bool {
			return strings.EqualFold(name, tok.Category.String())
		},
	}
}

// Compile compiles src.  The empty string yields a nil *Filter, which
// matches every token.
func Compile(src string) (*Filter, error) {
	if strings.TrimSpace(src) == "" {
		return nil, nil
	}
	prg, err := expr.Compile(src, expr.Env(env(token.Token{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("could not compile filter %q: %w", src, err)
	}
	return &Filter{src: src, prg: prg}, nil
}

func (f *Filter) String() string {
	if f == nil {
		return "true"
	}
	return f.src
}

func (f *Filter) Match(tok token.Token) (bool, error) {
	if f == nil {
		return true, nil
	}
	res, err := expr.Run(f.prg, env(tok))
	if err != nil {
		return false, fmt.Errorf("error evaluating filter on %s: %w", tok.Info(), err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("filter returned type %T", res)
	}
	return b, nil
}

// Apply returns the tokens of toks which match.
func (f *Filter) Apply(toks []token.Token) ([]token.Token, error) {
	if f == nil {
		return toks, nil
	}
	var res []token.Token
	for _, tok := range toks {
		ok, err := f.Match(tok)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, tok)
		}
	}
	return res, nil
}
