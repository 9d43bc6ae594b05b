package jsonval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sqlgrid/jsonval/debug"
	"github.com/sqlgrid/jsonval/encode"
	"github.com/sqlgrid/jsonval/ir"
	"github.com/sqlgrid/jsonval/sqlerr"
)

// PathError describes a path traversal miss: the segment that could
// not be resolved and the segments resolved before it.
type PathError struct {
	Segment  string
	Resolved []string
}

func (e *PathError) Error() string {
	if len(e.Resolved) == 0 {
		return fmt.Sprintf("path: %s not found", e.Segment)
	}
	return fmt.Sprintf("path: %s not found (resolved %s)",
		e.Segment, strings.Join(e.Resolved, "."))
}

// Resolve descends into the document along path, one object key or
// array index per segment, and returns the sub-document there.  The
// result is a fresh Document with no verbatim text; an empty path
// returns the root value unchanged.  A miss fails with a
// sqlerr.PathNotFound error wrapping a *PathError.
func (d *Document) Resolve(path []string) (*Document, error) {
	node, perr := resolve(d.node, path)
	if perr != nil {
		if debug.Path() {
			debug.Logf("resolve miss at %q in %s\n", perr.Segment, encode.String(d.node))
		}
		return nil, sqlerr.WrapC(perr, sqlerr.PathNotFound, "%v", perr)
	}
	return fromNode(node), nil
}

// Lookup is the nullable variant of Resolve: a miss returns
// (nil, false) instead of an error.  A path that resolves to a JSON
// null returns a non-nil Document and true; absence and null are
// never conflated.
func (d *Document) Lookup(path []string) (*Document, bool) {
	node, perr := resolve(d.node, path)
	if perr != nil {
		return nil, false
	}
	return fromNode(node), true
}

// resolve is the single traversal routine shared by the strict and
// nullable modes; only the caller's handling of the returned
// *PathError differs.
func resolve(root *ir.Node, path []string) (*ir.Node, *PathError) {
	node := root
	for i, seg := range path {
		if node.Type == ir.ArrayType {
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(node.Values) {
				return nil, &PathError{Segment: seg, Resolved: path[:i]}
			}
			node = node.Values[idx]
			continue
		}
		// non-objects have no named children and always miss
		next, ok := ir.Get(node, seg)
		if !ok {
			return nil, &PathError{Segment: seg, Resolved: path[:i]}
		}
		node = next
	}
	return node, nil
}
