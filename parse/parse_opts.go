package parse

import (
	"github.com/sqlgrid/jsonval/ir"
	"github.com/sqlgrid/jsonval/token"
)

type parseOpts struct {
	positions map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// ParsePositions records the source position of each parsed node into m.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
