package token

import (
	"unicode/utf8"

	"github.com/pslkit/psl/debug"
)

var punct = map[byte]TokenType{
	'{': TLCurl,
	'}': TRCurl,
	'(': TLParen,
	')': TRParen,
	'[': TLSquare,
	']': TRSquare,
	',': TComma,
	':': TColon,
	'=': TEquals,
	'?': TQuestion,
	'.': TDot,
	'!': TBang,
}

// Tokenize appends the tokens of src to dst.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	return TokenizeRange(dst, NewPosDoc(src), 0, len(src))
}

// TokenizeRange appends the tokens of the document bytes in [start, end)
// to dst.  Token positions are relative to the whole document.
func TokenizeRange(dst []Token, posDoc *PosDoc, start, end int) ([]Token, error) {
	src := posDoc.d[:end]
	if !utf8.Valid(src[start:]) {
		return nil, NewTokenizeErr(ErrBadUTF8, posDoc.Pos(start+firstInvalid(src[start:])))
	}
	n := end
	i := start
	for i < n {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			i++
			continue
		case c == '\n':
			dst = append(dst, Token{Type: TNewline, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
			continue
		case c == '/':
			if i+1 >= n || src[i+1] != '/' {
				return nil, UnexpectedErr("'/'", posDoc.Pos(i))
			}
			j := lineEnd(src, i)
			tt := TComment
			if i+2 < n && src[i+2] == '/' {
				tt = TDocComment
			}
			dst = append(dst, Token{Type: tt, Pos: posDoc.Pos(i), Bytes: trimCR(src[i:j])})
			i = j
			continue
		case c == '"':
			j, err := quotedEnd(src, i, posDoc)
			if err != nil {
				return nil, err
			}
			dst = append(dst, Token{Type: TString, Pos: posDoc.Pos(i), Bytes: src[i:j]})
			i = j
			continue
		case c == '@':
			if i+1 < n && src[i+1] == '@' {
				dst = append(dst, Token{Type: TAtAt, Pos: posDoc.Pos(i), Bytes: src[i : i+2]})
				i += 2
				continue
			}
			dst = append(dst, Token{Type: TAt, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
			i++
			continue
		case isDigit(c) || (c == '-' && i+1 < n && isDigit(src[i+1])):
			j := i + 1
			for j < n && (isDigit(src[j]) || src[j] == '.') {
				j++
			}
			dst = append(dst, Token{Type: TNumber, Pos: posDoc.Pos(i), Bytes: src[i:j]})
			i = j
			continue
		case isIdentStart(c):
			j := i + 1
			for j < n && isIdent(src[j]) {
				j++
			}
			dst = append(dst, Token{Type: TIdent, Pos: posDoc.Pos(i), Bytes: src[i:j]})
			i = j
			continue
		}
		tt, ok := punct[c]
		if !ok {
			r, _ := utf8.DecodeRune(src[i:])
			return nil, UnexpectedErr("'"+string(r)+"'", posDoc.Pos(i))
		}
		dst = append(dst, Token{Type: tt, Pos: posDoc.Pos(i), Bytes: src[i : i+1]})
		i++
	}
	if debug.Token() {
		logTokens(dst, "tokenize")
	}
	return dst, nil
}

func quotedEnd(src []byte, i int, posDoc *PosDoc) (int, error) {
	j := i + 1
	for j < len(src) {
		switch src[j] {
		case '\\':
			j += 2
			continue
		case '"':
			return j + 1, nil
		case '\n':
			return 0, UnterminatedErr("string", posDoc.Pos(i))
		}
		j++
	}
	return 0, UnterminatedErr("string", posDoc.Pos(i))
}

func lineEnd(src []byte, i int) int {
	for i < len(src) && src[i] != '\n' {
		i++
	}
	return i
}

func trimCR(d []byte) []byte {
	if len(d) > 0 && d[len(d)-1] == '\r' {
		return d[:len(d)-1]
	}
	return d
}

func firstInvalid(src []byte) int {
	i := 0
	for i < len(src) {
		r, sz := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && sz <= 1 {
			return i
		}
		i += sz
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdent(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
