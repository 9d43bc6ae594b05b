// Package ir holds the parsed JSON value tree.  Nodes are built once,
// by the parse package or by the constructors here, and never modified
// afterwards; a *Node may be shared freely across goroutines.
package ir

import (
	"strconv"
)

// Node is one variant of the JSON value tree.  Which fields are
// meaningful depends on Type:
//
//	NullType    - none
//	BoolType    - Bool
//	NumberType  - exactly one of Int64, Float64, Number
//	StringType  - String
//	ArrayType   - Values
//	ObjectType  - Fields and Values, parallel, keys unique
type Node struct {
	Type   Type
	Fields []string
	Values []*Node

	String  string
	Bool    bool
	Int64   *int64
	Float64 *float64
	Number  string
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

// FromNumber keeps the literal digits of a number which fits neither
// int64 nor float64 without loss.
func FromNumber(lit string) *Node {
	return &Node{
		Type:   NumberType,
		Number: lit,
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromSlice(vs []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(vs))
	copy(res.Values, vs)
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object node.  A repeated key keeps only its
// last value, placed at the position of the last occurrence; the
// collapse happens here, once, and is not reversible from the tree.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]string, 0, len(kvs))
	res.Values = make([]*Node, 0, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		if j := indexOf(res.Fields, kv.Key); j >= 0 {
			res.Fields = append(res.Fields[:j], res.Fields[j+1:]...)
			res.Values = append(res.Values[:j], res.Values[j+1:]...)
		}
		res.Fields = append(res.Fields, kv.Key)
		res.Values = append(res.Values, kv.Val)
	}
	return res
}

func indexOf(fields []string, key string) int {
	for i := range fields {
		if fields[i] == key {
			return i
		}
	}
	return -1
}

// Get returns the value at field for an object node.
func Get(y *Node, field string) (*Node, bool) {
	if y.Type != ObjectType {
		return nil, false
	}
	if i := indexOf(y.Fields, field); i >= 0 {
		return y.Values[i], true
	}
	return nil, false
}

// NumberString returns the canonical decimal rendering of a number
// node, which need not match the literal digits the node was parsed
// from.
func (y *Node) NumberString() string {
	switch {
	case y.Int64 != nil:
		return strconv.FormatInt(*y.Int64, 10)
	case y.Float64 != nil:
		return strconv.FormatFloat(*y.Float64, 'f', -1, 64)
	default:
		return y.Number
	}
}

// Visit walks the tree, calling f before and after each node's children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
