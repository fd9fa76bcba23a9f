// Package libdiff provides line diffs of schema text.
//
// # Usage
//
//	// Compute the line level difference
//	lines := libdiff.Lines(before, after)
//
//	// Render a unified diff
//	fmt.Print(libdiff.Unified("a/schema.prisma", "b/schema.prisma", before, after))
//
// Line matching is done with github.com/sergi/go-diff in line mode.
package libdiff
