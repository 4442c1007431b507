package token

import (
	"fmt"
	"strconv"
)

// Pos is an offset into a source, with a snippet of the source around it
// for error messages.
type Pos struct {
	I       int
	Context []byte
}

// posAt creates a Pos at offset i of src, capturing up to 5 bytes of
// context on either side.
func posAt(src string, i int) *Pos {
	start := max(0, i-5)
	end := min(i+5, len(src))
	var ctx []byte
	if start < end {
		ctx = []byte(src[start:end])
	}
	return &Pos{I: i, Context: ctx}
}

func (p Pos) String() string {
	sample := "?"
	if len(p.Context) > 0 {
		sample = strconv.Quote(string(p.Context))
		sample = sample[1 : len(sample)-1]
	}
	return fmt.Sprintf("`...%s...` at offset %d", sample, p.I)
}
