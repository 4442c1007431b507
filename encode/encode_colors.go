package encode

import (
	"strings"

	"github.com/signadot/lexkit/token"

	"github.com/fatih/color"
)

type Colorable struct {
	Category token.Category
	Attr     ColorAttr
}

type ColorAttr int

const (
	LexemeColor ColorAttr = iota
	CategoryColor
	SepColor
	OffsetColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, c := range token.Categories() {
		able := Colorable{
			Category: c,
			Attr:     CategoryColor,
		}
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = OffsetColor
		colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
	}
	able := Colorable{Attr: LexemeColor}

	able.Category = token.Keyword
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Category = token.Literal
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Category = token.Operator
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	able.Category = token.Punctuation
	colors.Map[able] = color.CyanString

	able.Category = token.Identifier
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()

	able.Category = token.Whitespace
	colors.Map[able] = color.BlueString

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(cat token.Category, a ColorAttr, s string) string {
	res := c.Get(cat, a)(s)
	return res
}

func (c *Colors) Get(cat token.Category, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Category: cat, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
