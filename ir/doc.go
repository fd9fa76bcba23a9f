// Package ir provides the intermediate representation of Prisma schema
// documents.
//
// A [Document] is an ordered list of top-level [Node]s: blank lines,
// comment lines, blocks (model, enum, type, view, datasource, generator)
// and, when parsing leniently, unrecognized text lines.  A [Block] holds
// its header line, an ordered list of [Member]s and its closing line.
//
// Every node and member keeps the raw text it was parsed from, so a
// document that has not been modified encodes back to exactly the bytes
// it was parsed from.  Fields additionally carry a structured view
// ([Field], [FieldType], [Attribute]) used for matching.
package ir
