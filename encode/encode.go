package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/lexkit/token"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	format  Format
	offsets bool

	Color func(token.Category, ColorAttr, string) string
}

// Record is the structured form of a token.
type Record struct {
	Category string `json:"category" yaml:"category"`
	Lexeme   string `json:"lexeme" yaml:"lexeme"`
	Offset   int    `json:"offset" yaml:"offset"`
}

func Records(toks []token.Token) []Record {
	res := make([]Record, len(toks))
	for i := range toks {
		tok := &toks[i]
		res[i] = Record{
			Category: tok.Category.String(),
			Lexeme:   tok.Lexeme,
			Offset:   tok.Offset,
		}
	}
	return res
}

func Encode(toks []token.Token, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case TextFormat:
		return encodeText(toks, w, es)
	case JSONFormat:
		d, err := json.MarshalIndent(Records(toks), "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(d, '\n'))
		return err
	case YAMLFormat:
		if len(toks) == 0 {
			_, err := io.WriteString(w, "[]\n")
			return err
		}
		d, err := yaml.Marshal(Records(toks))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		return fmt.Errorf("%w: %d", ErrBadFormat, es.format)
	}
}

func encodeText(toks []token.Token, w io.Writer, es *EncState) error {
	for i := range toks {
		tok := &toks[i]
		cat := tok.Category
		var line string
		if es.offsets {
			line = es.color(cat, OffsetColor, strconv.Itoa(tok.Offset)) + " "
		}
		line += es.color(cat, CategoryColor, cat.String()) +
			es.color(cat, SepColor, ":") + " " +
			es.color(cat, LexemeColor, tok.Lexeme) + "\n"
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("error writing token %d: %w", i, err)
		}
	}
	return nil
}

func (es *EncState) color(cat token.Category, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(cat, a, s)
}
