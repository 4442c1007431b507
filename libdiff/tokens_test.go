package libdiff

import (
	"bytes"
	"testing"

	"github.com/signadot/lexkit/token"

	"github.com/google/go-cmp/cmp"
)

func toks(t *testing.T, src string) []token.Token {
	t.Helper()
	res, err := token.Tokenize(nil, src)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestDiffTokensEqual(t *testing.T) {
	edits := DiffTokens(toks(t, "int x = 1;"), toks(t, "int   x=1 ;"))
	if Changed(edits) {
		t.Errorf("expected no changes, got %v", edits)
	}
	if len(edits) != 5 {
		t.Errorf("expected 5 edits, got %d", len(edits))
	}
}

func TestDiffTokens(t *testing.T) {
	edits := DiffTokens(toks(t, "int x = 1;"), toks(t, "float x = 1.5;"))
	if !Changed(edits) {
		t.Fatal("expected changes")
	}
	buf := bytes.NewBuffer(nil)
	if err := Write(buf, edits); err != nil {
		t.Fatal(err)
	}
	var gotFrom, gotTo []string
	for _, e := range edits {
		if e.Op != Insert {
			gotFrom = append(gotFrom, e.Token.Lexeme)
		}
		if e.Op != Delete {
			gotTo = append(gotTo, e.Token.Lexeme)
		}
	}
	if diff := cmp.Diff([]string{"int", "x", "=", "1", ";"}, gotFrom); diff != "" {
		t.Errorf("from side mismatch (-want +got):\n%s\n%s", diff, buf.String())
	}
	if diff := cmp.Diff([]string{"float", "x", "=", "1.5", ";"}, gotTo); diff != "" {
		t.Errorf("to side mismatch (-want +got):\n%s\n%s", diff, buf.String())
	}
	for _, line := range []string{"  IDENTIFIER: x", "+ LITERAL: 1.5", "- KEYWORD: int"} {
		if !bytes.Contains(buf.Bytes(), []byte(line+"\n")) {
			t.Errorf("missing %q in\n%s", line, buf.String())
		}
	}
}

func TestDiffTokensEmpty(t *testing.T) {
	edits := DiffTokens(nil, toks(t, "a b"))
	if len(edits) != 2 || edits[0].Op != Insert || edits[1].Op != Insert {
		t.Errorf("unexpected edits %v", edits)
	}
	if len(DiffTokens(nil, nil)) != 0 {
		t.Errorf("expected no edits")
	}
}
