// Package encode provides encoding of schema documents to text.
//
// Without options, [Encode] writes the raw text held by the document,
// so a parsed and unmodified document is reproduced byte for byte.
// [EncodeColors] adds syntax highlighting for terminal display.
package encode
