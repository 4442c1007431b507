package libdiff

import (
	"fmt"
	"io"

	"github.com/signadot/lexkit/token"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type EditOp int

const (
	Equal EditOp = iota
	Delete
	Insert
)

func (o EditOp) prefix() string {
	switch o {
	case Delete:
		return "- "
	case Insert:
		return "+ "
	default:
		return "  "
	}
}

// Edit is one step of a token diff.  Token comes from the "from" sequence
// for Equal and Delete, and from the "to" sequence for Insert.
type Edit struct {
	Op    EditOp
	Token token.Token
}

type tokenKey struct {
	cat token.Category
	lex string
}

// DiffTokens diffs two token sequences by category and lexeme.  Offsets are
// ignored, so whitespace changes produce no edits.
func DiffTokens(from, to []token.Token) []Edit {
	keyMap := map[tokenKey]rune{}
	fromRunes := mapTokensTo(keyMap, from)
	toRunes := mapTokensTo(keyMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	res := make([]Edit, 0, max(len(from), len(to)))
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for j := 0; j < n; j++ {
				res = append(res, Edit{Op: Delete, Token: from[fi]})
				fi++
			}
		case diffpatch.DiffEqual:
			for j := 0; j < n; j++ {
				res = append(res, Edit{Op: Equal, Token: from[fi]})
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for j := 0; j < n; j++ {
				res = append(res, Edit{Op: Insert, Token: to[ti]})
				ti++
			}
		}
	}
	return res
}

// mapTokensTo assigns each distinct token a rune, skipping the surrogate
// range which does not survive conversion to string.
func mapTokensTo(m map[tokenKey]rune, toks []token.Token) []rune {
	rs := make([]rune, len(toks))
	for i := range toks {
		k := tokenKey{toks[i].Category, toks[i].Lexeme}
		r, ok := m[k]
		if !ok {
			r = rune(len(m))
			if r >= 0xD800 {
				r += 0x800
			}
			m[k] = r
		}
		rs[i] = r
	}
	return rs
}

func Changed(edits []Edit) bool {
	for i := range edits {
		if edits[i].Op != Equal {
			return true
		}
	}
	return false
}

// Write writes edits one per line, prefixed by "  ", "- " or "+ ".
func Write(w io.Writer, edits []Edit) error {
	for i := range edits {
		e := &edits[i]
		if _, err := fmt.Fprintf(w, "%s%s\n", e.Op.prefix(), e.Token.String()); err != nil {
			return err
		}
	}
	return nil
}
