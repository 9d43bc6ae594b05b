package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression argument", cli.ErrUsage)
	}
	src := args[0]
	for _, arg := range fileArgs(args[1:]) {
		doc, err := getDocFile(cc, arg)
		if err != nil {
			return err
		}
		res, err := doc.Query(src)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", arg, err)
		}
		if err := writeDoc(cfg.MainConfig, cc, res); err != nil {
			return err
		}
	}
	return nil
}
