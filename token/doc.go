// Package token provides tokenization of Prisma schema text.
//
// [Tokenize] splits a schema into tokens, keeping byte offsets so that
// callers can slice the original text back out.  Horizontal whitespace
// is not tokenized; newlines are.
package token
