package jsonval

import (
	"errors"
	"io"
	"strings"

	"github.com/sqlgrid/jsonval/encode"
	"github.com/sqlgrid/jsonval/ir"
	"github.com/sqlgrid/jsonval/parse"
	"github.com/sqlgrid/jsonval/sqlerr"
	"github.com/sqlgrid/jsonval/token"
)

// textKind tags a Document's text as either the verbatim input the
// parser saw or as derived from the tree on demand.  It is an explicit
// two-case tag, not a nullable field, so every consumer handles both.
type textKind int

const (
	derivedText textKind = iota
	verbatimText
)

type docText struct {
	kind     textKind
	verbatim string
}

// Document is a parsed JSON value: an immutable node tree plus, for
// documents built directly by the parser, the verbatim input text.
// Sub-documents produced by navigation or any other derivation carry
// no verbatim text, since no contiguous input substring is guaranteed
// to match them byte for byte.
type Document struct {
	node *ir.Node
	text docText
}

// Parse validates and parses jsonData, retaining it verbatim on the
// returned Document.  Line and block comments in the input are
// tolerated.  On malformed input the error carries the
// sqlerr.InvalidJSONData code, the parser's message with line and
// column, and the parse failure as cause.
func Parse(jsonData string) (*Document, error) {
	node, err := parse.ParseString(jsonData)
	if err != nil {
		return nil, invalidJSON(err)
	}
	return &Document{
		node: node,
		text: docText{kind: verbatimText, verbatim: jsonData},
	}, nil
}

// ParseBytes parses length bytes of data starting at offset.  The
// range is assumed to decode as UTF-8 text.
func ParseBytes(data []byte, offset, length int) (*Document, error) {
	if offset < 0 || length < 0 || offset+length > len(data) {
		return nil, sqlerr.WithCode(sqlerr.InvalidJSONData,
			"byte range [%d:%d) outside buffer of %d bytes", offset, offset+length, len(data))
	}
	return Parse(string(data[offset : offset+length]))
}

// fromNode wraps a node in a derived Document, with no verbatim text.
func fromNode(node *ir.Node) *Document {
	return &Document{node: node}
}

func invalidJSON(err error) error {
	var tke *token.TokenizeErr
	if errors.As(err, &tke) {
		line, col := tke.Pos.LineCol()
		return sqlerr.WrapC(err, sqlerr.InvalidJSONData,
			"%v (line %d, column %d)", tke.Err, line+1, col+1)
	}
	return sqlerr.WrapC(err, sqlerr.InvalidJSONData, "%v", err)
}

// Encode writes the document's tree to w.  Output is canonical
// compact JSON unless encode options say otherwise; verbatim text is
// never replayed.
func Encode(d *Document, w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(d.node, w, opts...)
}

// Node returns the root of the value tree.  Callers must not modify
// it.
func (d *Document) Node() *ir.Node {
	return d.node
}

// String returns the display form: the verbatim input text when
// present, otherwise the canonical compact JSON of the tree.
func (d *Document) String() string {
	switch d.text.kind {
	case verbatimText:
		return d.text.verbatim
	default:
		return encode.String(d.node)
	}
}

// ExtractedText returns the text-extraction form of the value and
// whether one exists.  Scalar leaves drop JSON quoting: strings are
// unquoted and unescaped, numbers render canonically, booleans as
// "true"/"false".  A null value has no extracted text.  Arrays and
// objects stay canonical JSON so they remain parseable.
func (d *Document) ExtractedText() (string, bool) {
	switch d.node.Type {
	case ir.NullType:
		return "", false
	case ir.BoolType:
		if d.node.Bool {
			return "true", true
		}
		return "false", true
	case ir.NumberType:
		return d.node.NumberString(), true
	case ir.StringType:
		return d.node.String, true
	default:
		return encode.String(d.node), true
	}
}

// EstimateByteSize estimates the storage footprint of the document's
// text: the verbatim length when present, otherwise the canonical
// length.  A derived null has no canonical scalar text and estimates
// as 1, never 0, so downstream storage never sees a zero-sized value.
func (d *Document) EstimateByteSize() int {
	if d.text.kind == verbatimText {
		return len(d.text.verbatim)
	}
	if d.node.Type == ir.NullType {
		return 1
	}
	return len(encode.String(d.node))
}

// Equal reports document equality.  Two documents with verbatim text
// are equal as soon as those texts are equal, even where duplicate-key
// collapse would make structurally equal trees out of different
// inputs; otherwise equality is structural, with object key order
// ignored.
func (d *Document) Equal(o *Document) bool {
	if d == o {
		return true
	}
	if o == nil {
		return false
	}
	if d.text.kind == verbatimText && o.text.kind == verbatimText &&
		d.text.verbatim == o.text.verbatim {
		return true
	}
	return ir.Equal(d.node, o.node)
}

// Hash returns a hash of the structural content only, never of the
// verbatim text, so structurally equal documents with different input
// texts hash identically.
func (d *Document) Hash() uint64 {
	return d.node.Hash()
}

// Compare orders documents for sorted storage.  A nil target sorts
// strictly less than any document; unequal documents order by their
// display-form text.  The order is total but purely textual.
func (d *Document) Compare(o *Document) int {
	if o == nil {
		return 1
	}
	if d.Equal(o) {
		return 0
	}
	return strings.Compare(d.String(), o.String())
}
