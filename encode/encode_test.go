package encode

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/signadot/lexkit/token"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

func sample(t *testing.T) []token.Token {
	t.Helper()
	toks, err := token.Tokenize(nil, "int x = 10;")
	if err != nil {
		t.Fatal(err)
	}
	return toks
}

func TestEncodeText(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(sample(t), buf); err != nil {
		t.Fatal(err)
	}
	want := `KEYWORD: int
IDENTIFIER: x
OPERATOR: =
LITERAL: 10
PUNCTUATION: ;
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeTextOffsets(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(sample(t), buf, EncodeOffsets(true)); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if lines[3] != "8 LITERAL: 10" {
		t.Errorf("got %q", lines[3])
	}
}

func TestEncodeTextColors(t *testing.T) {
	calls := 0
	colors := &Colors{
		Default: func(v string, _ ...any) string {
			calls++
			return "<" + v + ">"
		},
		Map: map[Colorable]func(string, ...any) string{},
	}
	buf := bytes.NewBuffer(nil)
	toks := []token.Token{{Category: token.Keyword, Lexeme: "if"}}
	if err := Encode(toks, buf, EncodeColors(colors)); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "<KEYWORD><:> <if>\n" {
		t.Errorf("got %q", got)
	}
	if calls != 3 {
		t.Errorf("expected 3 color calls, got %d", calls)
	}
}

func TestNewColors(t *testing.T) {
	colors := NewColors()
	for _, c := range token.Categories() {
		for _, a := range []ColorAttr{LexemeColor, CategoryColor, SepColor, OffsetColor} {
			if colors.Map[Colorable{Category: c, Attr: a}] == nil {
				t.Errorf("no color for %s/%d", c, a)
			}
		}
	}
	// % must survive the Sprintf based color funcs
	if got := colors.Color(token.Operator, LexemeColor, "100%"); !strings.Contains(got, "100%") {
		t.Errorf("got %q", got)
	}
}

func TestEncodeJSON(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(sample(t), buf, EncodeFormat(JSONFormat)); err != nil {
		t.Fatal(err)
	}
	var got []Record
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Records(sample(t)), got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeYAML(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(sample(t), buf, EncodeFormat(YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	var got []Record
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Records(sample(t)), got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeEmpty(t *testing.T) {
	for _, f := range []Format{TextFormat, JSONFormat, YAMLFormat} {
		buf := bytes.NewBuffer(nil)
		if err := Encode(nil, buf, EncodeFormat(f)); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if f == TextFormat && buf.Len() != 0 {
			t.Errorf("text: expected no output, got %q", buf.String())
		}
		if f != TextFormat && strings.TrimSpace(buf.String()) != "[]" {
			t.Errorf("%s: expected [], got %q", f, buf.String())
		}
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"t": TextFormat, "text": TextFormat,
		"j": JSONFormat, "json": JSONFormat,
		"y": YAMLFormat, "yaml": YAMLFormat,
	} {
		got, err := ParseFormat(in)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("ParseFormat(%q) = %s, want %s", in, got, want)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
	if err := Encode(nil, bytes.NewBuffer(nil), EncodeFormat(Format(9))); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}
