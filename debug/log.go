package debug

import (
	"encoding/json"
	"fmt"
	"os"
)

// Logf writes a debug message prefixed with "psl: " to stderr.  Maps
// and slices are rendered as indented JSON, and errors and
// fmt.Stringers by their text.
func Logf(msg string, args ...any) {
	for i, a := range args {
		switch x := a.(type) {
		case map[string]any, []any, []string:
			d, err := json.MarshalIndent(x, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", x)
				continue
			}
			args[i] = string(d)
		case error:
			args[i] = x.Error()
		case fmt.Stringer:
			args[i] = x.String()
		}
	}
	fmt.Fprintf(os.Stderr, "psl: "+msg, args...)
}
