package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/lexkit/encode"
	"github.com/signadot/lexkit/filter"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool   `cli:"name=color desc='encode with color'"`
	Offsets bool   `cli:"name=offsets desc='include token offsets in text output'"`
	Where   string `cli:"name=where desc='only output tokens matching an expression'"`
	Verbose bool   `cli:"name=v desc='log progress to stderr'"`

	OutFormat *encode.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **encode.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := encode.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) filter() (*filter.Filter, error) {
	f, err := filter.Compile(cfg.Where)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return f, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	ofmt := encode.TextFormat
	if cfg.OutFormat != nil {
		ofmt = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(ofmt),
		encode.EncodeOffsets(cfg.Offsets),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type TokenizeConfig struct {
	*MainConfig

	Expr     string `cli:"name=e desc='tokenize the argument string instead of files'"`
	Tokenize *cli.Command
}

type DemoConfig struct {
	*MainConfig

	Demo *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
