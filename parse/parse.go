package parse

import (
	"fmt"
	"math"
	"strconv"

	"github.com/sqlgrid/jsonval/ir"
	"github.com/sqlgrid/jsonval/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	toks = noComments(toks)
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}
	off := 0
	res, err := parseValue(toks, &off, pOpts)
	if err != nil {
		return nil, err
	}
	if off != len(toks) {
		t := &toks[off]
		return nil, fmt.Errorf("%w: trailing %q %s", ErrParse, string(t.Bytes), t.Pos)
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// noComments drops TComment tokens; comments are tolerated, not kept.
func noComments(toks []token.Token) []token.Token {
	res := toks[:0]
	for i := range toks {
		if toks[i].Type == token.TComment {
			continue
		}
		res = append(res, toks[i])
	}
	return res
}

func trackPos(node *ir.Node, pos *token.Pos, opts *parseOpts) {
	if opts.positions != nil && pos != nil {
		opts.positions[node] = pos
	}
}

func parseValue(toks []token.Token, pi *int, opts *parseOpts) (*ir.Node, error) {
	if *pi >= len(toks) {
		last := &toks[len(toks)-1]
		return nil, fmt.Errorf("%w: premature end of input %s", ErrParse, last.Pos)
	}
	t := &toks[*pi]
	switch t.Type {
	case token.TLCurl:
		*pi++
		objY := &ir.Node{Type: ir.ObjectType}
		trackPos(objY, t.Pos, opts)
		return parseObj(toks, objY, t.Pos, pi, opts)
	case token.TLSquare:
		*pi++
		arrY := &ir.Node{Type: ir.ArrayType}
		trackPos(arrY, t.Pos, opts)
		return parseArr(toks, arrY, t.Pos, pi, opts)
	case token.TString:
		*pi++
		sy := ir.FromString(t.String())
		trackPos(sy, t.Pos, opts)
		return sy, nil
	case token.TInteger:
		*pi++
		ny := intNode(t)
		trackPos(ny, t.Pos, opts)
		return ny, nil
	case token.TFloat:
		*pi++
		ny := floatNode(t)
		trackPos(ny, t.Pos, opts)
		return ny, nil
	case token.TTrue:
		*pi++
		by := ir.FromBool(true)
		trackPos(by, t.Pos, opts)
		return by, nil
	case token.TFalse:
		*pi++
		by := ir.FromBool(false)
		trackPos(by, t.Pos, opts)
		return by, nil
	case token.TNull:
		*pi++
		res := ir.Null()
		trackPos(res, t.Pos, opts)
		return res, nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %q %s (%s)", ErrParse, string(t.Bytes), t.Pos, t.Type)
	}
}

// intNode keeps the literal digits when the value does not fit int64.
func intNode(t *token.Token) *ir.Node {
	i, err := strconv.ParseInt(string(t.Bytes), 10, 64)
	if err != nil {
		return ir.FromNumber(string(t.Bytes))
	}
	return ir.FromInt(i)
}

func floatNode(t *token.Token) *ir.Node {
	f, err := strconv.ParseFloat(string(t.Bytes), 64)
	if err != nil || math.IsInf(f, 0) {
		return ir.FromNumber(string(t.Bytes))
	}
	return ir.FromFloat(f)
}

func parseObj(toks []token.Token, p *ir.Node, open *token.Pos, pi *int, opts *parseOpts) (*ir.Node, error) {
	kvs := []ir.KeyVal{}
	for {
		if *pi >= len(toks) {
			return nil, fmt.Errorf("%w: unbalanced object %s", ErrParse, open)
		}
		tok := &toks[*pi]
		if tok.Type == token.TRCurl {
			*pi++
			break
		}
		if len(kvs) > 0 {
			if tok.Type != token.TComma {
				return nil, fmt.Errorf("%w: expected ',' or '}', got %q %s",
					ErrParse, string(tok.Bytes), tok.Pos)
			}
			*pi++
			if *pi >= len(toks) {
				return nil, fmt.Errorf("%w: premature end of object %s", ErrParse, tok.Pos)
			}
			tok = &toks[*pi]
		}
		if tok.Type != token.TString {
			return nil, fmt.Errorf("%w: expected object key, got %q %s",
				ErrParse, string(tok.Bytes), tok.Pos)
		}
		key := tok.String()
		*pi++
		if *pi >= len(toks) || toks[*pi].Type != token.TColon {
			return nil, fmt.Errorf("%w: expected ':' after key %q %s", ErrParse, key, tok.Pos)
		}
		*pi++
		val, err := parseValue(toks, pi, opts)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: key, Val: val})
	}
	obj := ir.FromKeyVals(kvs)
	p.Fields = obj.Fields
	p.Values = obj.Values
	return p, nil
}

func parseArr(toks []token.Token, p *ir.Node, open *token.Pos, pi *int, opts *parseOpts) (*ir.Node, error) {
	for {
		if *pi >= len(toks) {
			return nil, fmt.Errorf("%w: unbalanced array %s", ErrParse, open)
		}
		tok := &toks[*pi]
		if tok.Type == token.TRSquare {
			*pi++
			return p, nil
		}
		if len(p.Values) > 0 {
			if tok.Type != token.TComma {
				return nil, fmt.Errorf("%w: expected ',' or ']', got %q %s",
					ErrParse, string(tok.Bytes), tok.Pos)
			}
			*pi++
		}
		elt, err := parseValue(toks, pi, opts)
		if err != nil {
			return nil, err
		}
		p.Values = append(p.Values, elt)
	}
}
