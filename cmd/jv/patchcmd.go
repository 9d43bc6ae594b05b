package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/sqlgrid/jsonval"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file argument", cli.ErrUsage)
	}
	pd, err := getDocFile(cc, args[0])
	if err != nil {
		return err
	}
	for _, arg := range fileArgs(args[1:]) {
		doc, err := getDocFile(cc, arg)
		if err != nil {
			return err
		}
		var res *jsonval.Document
		if cfg.Merge {
			res, err = doc.MergePatch(pd)
		} else {
			res, err = doc.Patch(pd)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if err := writeDoc(cfg.MainConfig, cc, res); err != nil {
			return err
		}
	}
	return nil
}
