package main

import (
	"fmt"

	"github.com/signadot/lexkit/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 arguments", cli.ErrUsage)
	}
	var srcs [2]string
	for i, file := range args {
		srcs[i], err = readSource(file)
		if err != nil {
			return err
		}
	}
	from, err := lex(cfg.MainConfig, args[0], srcs[0])
	if err != nil {
		return err
	}
	to, err := lex(cfg.MainConfig, args[1], srcs[1])
	if err != nil {
		return err
	}
	edits := libdiff.DiffTokens(from, to)
	if !libdiff.Changed(edits) {
		return nil
	}
	if err := libdiff.Write(cc.Out, edits); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
