package debug

import "testing"

func TestBoolEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"nope", false},
	}
	for _, tt := range tests {
		t.Setenv("LEX_DEBUG_TEST", tt.val)
		if got := boolEnv("LEX_DEBUG_TEST"); got != tt.want {
			t.Errorf("boolEnv(%q) = %v, want %v", tt.val, got, tt.want)
		}
	}
}

func TestSet(t *testing.T) {
	defer SetScan(Scan())
	defer SetTokens(Tokens())
	SetScan(true)
	SetTokens(false)
	if !Scan() || Tokens() {
		t.Errorf("got scan=%v tokens=%v", Scan(), Tokens())
	}
}
