package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/mattn/go-isatty"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two file arguments", cli.ErrUsage)
	}
	a, err := getDocFile(cc, args[0])
	if err != nil {
		return err
	}
	b, err := getDocFile(cc, args[1])
	if err != nil {
		return err
	}
	if a.Equal(b) {
		return nil
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(a.String(), b.String(), true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	out := plainDiff(diffs)
	if cfg.Color || isTTY(cc) {
		out = dmp.DiffPrettyText(diffs)
	}
	_, err = fmt.Fprintln(cc.Out, out)
	if err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func isTTY(cc *cli.Context) bool {
	f, ok := cc.Out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func plainDiff(diffs []diffpatch.Diff) string {
	sb := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			sb.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffInsert:
			sb.WriteString("{+" + d.Text + "+}")
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}
