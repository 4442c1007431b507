package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/lexkit/encode"
	"github.com/signadot/lexkit/token"

	"github.com/scott-cotton/cli"
)

func tokenize(cfg *TokenizeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokenize.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr != "" {
		if len(args) != 0 {
			return fmt.Errorf("%w: -e does not take file arguments", cli.ErrUsage)
		}
		return tokenizeSource(cfg.MainConfig, cc.Out, "-e", cfg.Expr)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		if err := tokenizeFile(cfg.MainConfig, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func tokenizeFile(cfg *MainConfig, w io.Writer, file string) error {
	src, err := readSource(file)
	if err != nil {
		return err
	}
	return tokenizeSource(cfg, w, file, src)
}

func readSource(file string) (string, error) {
	var r io.Reader
	if file == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(file)
		if err != nil {
			return "", fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", file, err)
	}
	return string(d), nil
}

func tokenizeSource(cfg *MainConfig, w io.Writer, name, src string) error {
	toks, err := lex(cfg, name, src)
	if err != nil {
		return err
	}
	if err := encode.Encode(toks, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding tokens of %s: %w", name, err)
	}
	return nil
}

// lex tokenizes src and applies the -where filter.
func lex(cfg *MainConfig, name, src string) ([]token.Token, error) {
	f, err := cfg.filter()
	if err != nil {
		return nil, err
	}
	tokenizer := token.NewTokenizer(src)
	if err := tokenizer.Tokenize(); err != nil {
		return nil, fmt.Errorf("error tokenizing %s: %w", name, err)
	}
	toks := tokenizer.Tokens()
	if cfg.Verbose {
		theLog.Info("tokenized", "source", name, "bytes", len(src), "tokens", len(toks))
	}
	toks, err = f.Apply(toks)
	if err != nil {
		return nil, fmt.Errorf("error filtering tokens of %s: %w", name, err)
	}
	return toks, nil
}
