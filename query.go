package jsonval

import (
	"encoding/json"
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/sqlgrid/jsonval/ir"
	"github.com/sqlgrid/jsonval/parse"
)

// Query compiles and runs an expression against the document and
// returns its result as a new derived Document.  The document's value
// is bound to "doc" in the expression environment:
//
//	sub, err := doc.Query(`doc.f4.f6.f7`)
//	ok, err := doc.Query(`doc.f4.f5 > 10`)
func (d *Document) Query(src string) (*Document, error) {
	prg, err := expr.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("compiling query %q: %w", src, err)
	}
	res, err := expr.Run(prg, map[string]any{"doc": toAny(d.node)})
	if err != nil {
		return nil, fmt.Errorf("running query %q: %w", src, err)
	}
	node, err := fromAny(res)
	if err != nil {
		return nil, err
	}
	return fromNode(node), nil
}

// toAny converts a tree to plain Go values for the expression
// environment.
func toAny(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i]] = toAny(node.Values[i])
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = toAny(elt)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.NumberType:
		if node.Int64 != nil {
			return int(*node.Int64)
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return node.Number
	case ir.BoolType:
		return node.Bool
	case ir.NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// fromAny converts an expression result back into a tree.  Scalars
// map directly; anything else round-trips through JSON text and the
// parser.
func fromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case float64:
		return ir.FromFloat(x), nil
	case string:
		return ir.FromString(x), nil
	case *ir.Node:
		return x, nil
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("query result %T not representable: %w", v, err)
	}
	return parse.Parse(d)
}
