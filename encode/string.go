package encode

import (
	"bytes"

	"github.com/sqlgrid/jsonval/ir"
)

// String returns the canonical compact JSON text of node.
func String(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
