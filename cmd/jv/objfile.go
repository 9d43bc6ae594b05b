package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/sqlgrid/jsonval"
)

func getDocFile(cc *cli.Context, path string) (*jsonval.Document, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return jsonval.Parse(string(d))
}

// fileArgs defaults to stdin when no files are given.
func fileArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func writeDoc(cfg *MainConfig, cc *cli.Context, doc *jsonval.Document) error {
	opts := cfg.encOpts(cc.Out)
	if err := jsonval.Encode(doc, cc.Out, opts...); err != nil {
		return err
	}
	_, err := cc.Out.Write([]byte("\n"))
	return err
}
