package token

// rule is a category paired with its matcher.  A matcher returns the length
// of the lexeme at the start of d, or 0 if the category does not match there.
type rule struct {
	cat   Category
	match func(d string) int
}

// rules is tried in order at each offset; the first match wins.  Keyword
// must precede Identifier.
var rules = []rule{
	{Whitespace, whitespace},
	{Keyword, keyword},
	{Literal, literal},
	{Operator, operator},
	{Punctuation, punctuation},
	{Identifier, identifier},
}

var keywords = map[string]bool{
	"if":     true,
	"else":   true,
	"for":    true,
	"while":  true,
	"int":    true,
	"float":  true,
	"String": true,
}

func whitespace(d string) int {
	i := 0
	for i < len(d) && isSpace(d[i]) {
		i++
	}
	return i
}

// keyword matches only a whole word, so "intake" is not "int".
func keyword(d string) int {
	n := wordChars(d)
	if n == 0 || !keywords[d[:n]] {
		return 0
	}
	return n
}

func literal(d string) int {
	digits := asciiDigits(d)
	if digits == 0 {
		return 0
	}
	if f := fract(d[digits:]); f != 0 && boundary(d, digits+f) {
		return digits + f
	}
	// "3.14x" falls back to "3"
	if boundary(d, digits) {
		return digits
	}
	return 0
}

func operator(d string) int {
	if len(d) >= 2 {
		switch d[:2] {
		case "==", "<=", ">=", "!=", "&&", "||":
			return 2
		}
	}
	if len(d) == 0 {
		return 0
	}
	switch d[0] {
	case '+', '-', '*', '/', '=', '<', '>', '!':
		return 1
	}
	return 0
}

func punctuation(d string) int {
	if len(d) == 0 {
		return 0
	}
	switch d[0] {
	case ';', ',', '.', '(', ')', '{', '}', '[', ']':
		return 1
	}
	return 0
}

func identifier(d string) int {
	if len(d) == 0 || asciiDigit(d[0]) || !isWordChar(d[0]) {
		return 0
	}
	return wordChars(d)
}

// boundary reports whether offset i of d lies on a word edge, given that
// d[i-1] is a word character.
func boundary(d string, i int) bool {
	return i >= len(d) || !isWordChar(d[i])
}

func wordChars(d string) int {
	i := 0
	for i < len(d) && isWordChar(d[i]) {
		i++
	}
	return i
}

func asciiDigits(d string) int {
	i := 0
	for i < len(d) && asciiDigit(d[i]) {
		i++
	}
	return i
}

// fract matches '.' followed by one or more digits.
func fract(d string) int {
	if len(d) < 2 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0
	}
	return n + 1
}

func asciiDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isWordChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', asciiDigit(c), c == '_':
		return true
	default:
		return false
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
