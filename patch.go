package jsonval

import (
	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/sqlgrid/jsonval/encode"
	"github.com/sqlgrid/jsonval/sqlerr"
)

// Patch applies an RFC 6902 patch document to d and returns the result
// as a new Document; d itself is never modified.
func (d *Document) Patch(patch *Document) (*Document, error) {
	p, err := jsonpatch.DecodePatch([]byte(encode.String(patch.node)))
	if err != nil {
		return nil, sqlerr.WrapC(err, sqlerr.InvalidJSONData, "invalid patch: %v", err)
	}
	res, err := p.Apply([]byte(encode.String(d.node)))
	if err != nil {
		return nil, sqlerr.WrapC(err, sqlerr.InvalidJSONData, "patch failed: %v", err)
	}
	return Parse(string(res))
}

// MergePatch applies an RFC 7386 merge patch to d and returns the
// result as a new Document.
func (d *Document) MergePatch(patch *Document) (*Document, error) {
	res, err := jsonpatch.MergePatch(
		[]byte(encode.String(d.node)),
		[]byte(encode.String(patch.node)),
	)
	if err != nil {
		return nil, sqlerr.WrapC(err, sqlerr.InvalidJSONData, "merge patch failed: %v", err)
	}
	return Parse(string(res))
}
