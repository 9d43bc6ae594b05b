package token

import (
	"errors"
	"fmt"
)

type TokenType int

const (
	TNull TokenType = iota
	TTrue
	TFalse
	TInteger
	TFloat
	TString
	TColon
	TComma
	TComment
	TLCurl
	TRCurl
	TLSquare
	TRSquare
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TNull:    "TNull",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TInteger: "TInteger",
		TFloat:   "TFloat",
		TString:  "TString",
		TColon:   "TColon",
		TComma:   "TComma",
		TComment: "TComment",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the token's value as text.  For TString tokens the
// result is unquoted and unescaped.
func (t *Token) String() string {
	if t.Type == TString {
		return QuotedToString(t.Bytes)
	}
	return string(t.Bytes)
}

var (
	ErrNumber            = errors.New("malformed number")
	ErrNumberLeadingZero = errors.New("number has leading zero")
	ErrString            = errors.New("malformed string")
	ErrComment           = errors.New("malformed comment")
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), p)
}
