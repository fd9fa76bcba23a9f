// Package psl patches Prisma schema documents with plans.
//
// A plan (package plan) is a sequence of steps, each adding a field
// after an anchor field or inserting a section of declarations before a
// marker comment.  Steps check for their own prior application, so
// patching an already patched document changes nothing.
//
// Documents are parsed by package parse into the lossless form of
// package ir and written back by package encode; text outside of the
// inserted regions is preserved byte for byte.
package psl
