package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Scan   bool
	Tokens bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("LEX_DEBUG_SCAN")
	d.Tokens = boolEnv("LEX_DEBUG_TOKENS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Scan reports whether each match of the tokenizer is traced.
func Scan() bool {
	return d.Scan
}

// Tokens reports whether completed token sequences are logged.
func Tokens() bool {
	return d.Tokens
}

// SetScan and SetTokens override the environment, for tests.
func SetScan(v bool) {
	d.Scan = v
}
func SetTokens(v bool) {
	d.Tokens = v
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(append(d, '\n'))
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
