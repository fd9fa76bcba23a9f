package token

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	TIdent TokenType = iota
	TString
	TNumber
	TComment
	TDocComment
	TAt
	TAtAt
	TLCurl
	TRCurl
	TLParen
	TRParen
	TLSquare
	TRSquare
	TComma
	TColon
	TEquals
	TQuestion
	TDot
	TBang
	TNewline
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TIdent:      "TIdent",
		TString:     "TString",
		TNumber:     "TNumber",
		TComment:    "TComment",
		TDocComment: "TDocComment",
		TAt:         "TAt",
		TAtAt:       "TAtAt",
		TLCurl:      "TLCurl",
		TRCurl:      "TRCurl",
		TLParen:     "TLParen",
		TRParen:     "TRParen",
		TLSquare:    "TLSquare",
		TRSquare:    "TRSquare",
		TComma:      "TComma",
		TColon:      "TColon",
		TEquals:     "TEquals",
		TQuestion:   "TQuestion",
		TDot:        "TDot",
		TBang:       "TBang",
		TNewline:    "TNewline",
	}[t]
}

// IsComment reports whether t is a line or doc comment.
func (t TokenType) IsComment() bool {
	return t == TComment || t == TDocComment
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

// End returns the offset just past the token.
func (t *Token) End() int {
	return t.Pos.I + len(t.Bytes)
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// String returns the value of the token; string literals are unquoted.
func (t *Token) String() string {
	switch t.Type {
	case TString:
		s, err := strconv.Unquote(string(t.Bytes))
		if err != nil {
			return string(t.Bytes[1 : len(t.Bytes)-1])
		}
		return s
	default:
		return string(t.Bytes)
	}
}
