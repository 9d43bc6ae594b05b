package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a path argument", cli.ErrUsage)
	}
	path := splitPath(args[0])
	for _, arg := range fileArgs(args[1:]) {
		doc, err := getDocFile(cc, arg)
		if err != nil {
			return err
		}
		if cfg.Nullable {
			sub, ok := doc.Lookup(path)
			if !ok {
				continue
			}
			if err := writeDoc(cfg.MainConfig, cc, sub); err != nil {
				return err
			}
			continue
		}
		sub, err := doc.Resolve(path)
		if err != nil {
			return fmt.Errorf("error resolving %q in %s: %w", args[0], arg, err)
		}
		if err := writeDoc(cfg.MainConfig, cc, sub); err != nil {
			return err
		}
	}
	return nil
}

// splitPath turns "f4.f6" into its segments; an empty path addresses
// the root.
func splitPath(p string) []string {
	if p == "" || p == "." {
		return nil
	}
	return strings.Split(strings.TrimPrefix(p, "."), ".")
}
