package token

// Tokenize tokenizes src and appends the result to dst.
func Tokenize(dst []Token, src string) ([]Token, error) {
	tokenizer := NewTokenizer(src)
	if err := tokenizer.Tokenize(); err != nil {
		return nil, err
	}
	return append(dst, tokenizer.toks...), nil
}
