package encode

import (
	"bytes"

	"github.com/pslkit/psl/ir"
)

func MustString(doc *ir.Document) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
