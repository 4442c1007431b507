package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: text/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "lex").
		WithSynopsis("lex [opts] command [opts]").
		WithDescription("lex is a tool for tokenizing source code.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return lexMain(cfg, cc, args)
		}).
		WithSubs(
			TokenizeCommand(cfg),
			DemoCommand(cfg),
			DiffCommand(cfg))
}

func TokenizeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TokenizeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tokenize, "tokenize").
		WithAliases("tok", "t").
		WithSynopsis("tokenize [-e src] [files]").
		WithDescription("tokenize files, stdin or a string and print the tokens").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tokenize(cfg, cc, args)
		})
}

func DemoCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DemoConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Demo, "demo").
		WithSynopsis("demo").
		WithDescription("tokenize a built in sample and print the tokens").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return demo(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff from to").
		WithDescription("compare the tokens of two files, exiting 1 if they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
