// Package parse provides Prisma schema parsing.
//
// [Parse] produces an [ir.Document] which keeps the raw text of every
// line, so that encoding an unmodified document reproduces the input
// exactly.
package parse
