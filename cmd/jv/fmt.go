package main

import (
	"github.com/scott-cotton/cli"
)

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range fileArgs(args) {
		doc, err := getDocFile(cc, arg)
		if err != nil {
			return err
		}
		if err := writeDoc(cfg.MainConfig, cc, doc); err != nil {
			return err
		}
	}
	return nil
}
