package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

const demoSource = "int x = 10; if (x > 5) { x = x + 1; }"

func demo(cfg *DemoConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Demo.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: demo takes no arguments", cli.ErrUsage)
	}
	return tokenizeSource(cfg.MainConfig, cc.Out, "demo", demoSource)
}
