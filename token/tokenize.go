package token

import (
	"bytes"
	"fmt"
)

// Tokenize scans d into a flat sequence of JSON tokens.  Line comments
// ("//..." and "#...") and block comments ("/* ... */") are emitted as
// TComment tokens; the parser discards them.
func Tokenize(d []byte) ([]Token, error) {
	posDoc := &PosDoc{d: d}
	toks := []Token{}
	i := 0
	n := len(d)
	for i < n {
		c := d[i]
		switch c {
		case '\n':
			posDoc.nl(i)
			i++
		case ' ', '\t', '\r':
			i++
		case '{':
			toks = append(toks, Token{Type: TLCurl, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case '}':
			toks = append(toks, Token{Type: TRCurl, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case '[':
			toks = append(toks, Token{Type: TLSquare, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case ']':
			toks = append(toks, Token{Type: TRSquare, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case ':':
			toks = append(toks, Token{Type: TColon, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case ',':
			toks = append(toks, Token{Type: TComma, Pos: posDoc.Pos(i), Bytes: d[i : i+1]})
			i++
		case '"':
			sz, err := scanQuoted(d[i:])
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i))
			}
			toks = append(toks, Token{Type: TString, Pos: posDoc.Pos(i), Bytes: d[i : i+sz]})
			i += sz
		case '#':
			sz := lineComment(d[i:])
			toks = append(toks, Token{Type: TComment, Pos: posDoc.Pos(i), Bytes: d[i : i+sz]})
			i += sz
		case '/':
			sz, err := slashComment(d[i:], posDoc, i)
			if err != nil {
				return nil, NewTokenizeErr(err, posDoc.Pos(i))
			}
			toks = append(toks, Token{Type: TComment, Pos: posDoc.Pos(i), Bytes: d[i : i+sz]})
			i += sz
		default:
			tok, sz, err := word(d[i:], posDoc, i)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
			i += sz
		}
	}
	return toks, nil
}

func word(d []byte, posDoc *PosDoc, off int) (Token, int, error) {
	switch {
	case bytes.HasPrefix(d, []byte("null")):
		return Token{Type: TNull, Pos: posDoc.Pos(off), Bytes: d[:4]}, 4, nil
	case bytes.HasPrefix(d, []byte("true")):
		return Token{Type: TTrue, Pos: posDoc.Pos(off), Bytes: d[:4]}, 4, nil
	case bytes.HasPrefix(d, []byte("false")):
		return Token{Type: TFalse, Pos: posDoc.Pos(off), Bytes: d[:5]}, 5, nil
	}
	c := d[0]
	if c == '-' || asciiDigit(c) {
		sz, isFloat, err := number(d)
		if err != nil {
			return Token{}, 0, NewTokenizeErr(err, posDoc.Pos(off))
		}
		tt := TInteger
		if isFloat {
			tt = TFloat
		}
		return Token{Type: tt, Pos: posDoc.Pos(off), Bytes: d[:sz]}, sz, nil
	}
	return Token{}, 0, UnexpectedErr(fmt.Sprintf("character %q", c), posDoc.Pos(off))
}

func lineComment(d []byte) int {
	i := bytes.IndexByte(d, '\n')
	if i == -1 {
		return len(d)
	}
	return i
}

func slashComment(d []byte, posDoc *PosDoc, off int) (int, error) {
	if len(d) < 2 {
		return 0, ErrComment
	}
	switch d[1] {
	case '/':
		return lineComment(d), nil
	case '*':
		end := bytes.Index(d[2:], []byte("*/"))
		if end == -1 {
			return 0, ErrComment
		}
		for j := 2; j < end+2; j++ {
			if d[j] == '\n' {
				posDoc.nl(off + j)
			}
		}
		return end + 4, nil
	default:
		return 0, ErrComment
	}
}
