package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/sqlgrid/jsonval/ir"
	"github.com/sqlgrid/jsonval/token"
)

type EncState struct {
	depth  int
	indent int

	colorType ir.Type
	Color     func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeNL(w io.Writer, es *EncState) error {
	if es.indent == 0 {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	return writeString(w, "\n"+indentString)
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	es.colorType = node.Type
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return encodeString(node, w, es)
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.BoolType:
		return encodeBool(node, w, es)
	case ir.NullType:
		return encodeNull(node, w, es)
	default:
		panic("type")
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, applyColor(es, ir.ObjectType, SepColor, "{")); err != nil {
		return err
	}
	es.depth++
	for i, field := range node.Fields {
		if i > 0 {
			if err := writeString(w, applyColor(es, ir.ObjectType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		key := token.Quote(field)
		if err := writeString(w, applyColor(es, ir.ObjectType, FieldColor, key)); err != nil {
			return err
		}
		sep := ":"
		if es.indent > 0 {
			sep = ": "
		}
		if err := writeString(w, applyColor(es, ir.ObjectType, SepColor, sep)); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if len(node.Fields) > 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeString(w, applyColor(es, ir.ObjectType, SepColor, "}"))
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, applyColor(es, ir.ArrayType, SepColor, "[")); err != nil {
		return err
	}
	es.depth++
	for i, elt := range node.Values {
		if i > 0 {
			if err := writeString(w, applyColor(es, ir.ArrayType, SepColor, ",")); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(elt, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if len(node.Values) > 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeString(w, applyColor(es, ir.ArrayType, SepColor, "]"))
}

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	v := token.Quote(node.String)
	return writeString(w, applyColor(es, ir.StringType, ValueColor, v))
}

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	return writeString(w, applyColor(es, ir.NumberType, ValueColor, node.NumberString()))
}

func encodeBool(node *ir.Node, w io.Writer, es *EncState) error {
	v := strconv.FormatBool(node.Bool)
	return writeString(w, applyColor(es, ir.BoolType, ValueColor, v))
}

func encodeNull(node *ir.Node, w io.Writer, es *EncState) error {
	return writeString(w, applyColor(es, ir.NullType, ValueColor, "null"))
}
