package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func text(cfg *TextConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Text.Parse(cc, args)
	if err != nil {
		cfg.Text.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: text requires a path argument", cli.ErrUsage)
	}
	path := splitPath(args[0])
	for _, arg := range fileArgs(args[1:]) {
		doc, err := getDocFile(cc, arg)
		if err != nil {
			return err
		}
		sub, ok := doc.Lookup(path)
		if !ok {
			continue
		}
		txt, ok := sub.ExtractedText()
		if !ok {
			// null has no text form
			continue
		}
		if _, err := fmt.Fprintln(cc.Out, txt); err != nil {
			return err
		}
	}
	return nil
}
