package token

import (
	"fmt"
	"strings"

	"github.com/pslkit/psl/debug"
)

func logTokens(toks []Token, src string) {
	debug.Logf("%s", formatTokens(toks, src))
}

// formatTokens renders toks one per line, headed by the name of their
// source.
func formatTokens(toks []Token, src string) string {
	buf := &strings.Builder{}
	fmt.Fprintf(buf, "%s: %d tokens\n", src, len(toks))
	for i := range toks {
		t := &toks[i]
		fmt.Fprintf(buf, "\t%s %q %s\n", t.Type, t.Bytes, t.Pos)
	}
	return buf.String()
}
