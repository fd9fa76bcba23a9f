package libdiff

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

type Hunk struct {
	FromLine, FromCount int
	ToLine, ToCount     int
	Lines               []Line
}

func (h *Hunk) Header() string {
	return fmt.Sprintf("@@ -%s +%s @@", rng(h.FromLine, h.FromCount), rng(h.ToLine, h.ToCount))
}

func rng(start, count int) string {
	if count == 1 {
		return fmt.Sprintf("%d", start)
	}
	return fmt.Sprintf("%d,%d", start, count)
}

// Hunks groups lines into hunks with ctx lines of context around each
// change.
func Hunks(lines []Line, ctx int) []Hunk {
	var (
		res      []Hunk
		from, to = make([]int, len(lines)), make([]int, len(lines))
		fl, tl   = 1, 1
	)
	for i := range lines {
		from[i], to[i] = fl, tl
		switch lines[i].Op {
		case Equal:
			fl++
			tl++
		case Delete:
			fl++
		case Insert:
			tl++
		}
	}
	i := 0
	for i < len(lines) {
		if lines[i].Op == Equal {
			i++
			continue
		}
		start := max(0, i-ctx)
		end := i
		// extend while the next change is close enough to share context
		for j := i; j < len(lines); j++ {
			if lines[j].Op != Equal {
				end = j
				continue
			}
			if j-end > 2*ctx {
				break
			}
		}
		end = min(len(lines), end+ctx+1)
		h := Hunk{
			FromLine: from[start],
			ToLine:   to[start],
			Lines:    lines[start:end],
		}
		for _, l := range h.Lines {
			switch l.Op {
			case Equal:
				h.FromCount++
				h.ToCount++
			case Delete:
				h.FromCount++
			case Insert:
				h.ToCount++
			}
		}
		if h.FromCount == 0 {
			h.FromLine--
		}
		if h.ToCount == 0 {
			h.ToLine--
		}
		res = append(res, h)
		i = end
	}
	return res
}

type unifiedOpts struct {
	ctx    int
	colors bool
}

type UnifiedOption func(*unifiedOpts)

// Context sets the number of context lines around changes (default 3).
func Context(n int) UnifiedOption {
	return func(o *unifiedOpts) { o.ctx = n }
}

// Colors causes deletions, insertions and hunk headers to be colored.
func Colors(v bool) UnifiedOption {
	return func(o *unifiedOpts) { o.colors = v }
}

// Unified returns a unified diff of from and to, or "" if they are
// equal.
func Unified(fromName, toName, from, to string, opts ...UnifiedOption) string {
	o := &unifiedOpts{ctx: 3}
	for _, f := range opts {
		f(o)
	}
	hunks := Hunks(Lines(from, to), o.ctx)
	if len(hunks) == 0 {
		return ""
	}
	var (
		head = fmt.Sprint
		del  = fmt.Sprint
		ins  = fmt.Sprint
		hdr  = fmt.Sprint
	)
	if o.colors {
		head = color.New(color.Bold).Sprint
		del = color.New(color.FgRed).Sprint
		ins = color.New(color.FgGreen).Sprint
		hdr = color.New(color.FgCyan).Sprint
	}
	b := &strings.Builder{}
	b.WriteString(head("--- "+fromName) + "\n")
	b.WriteString(head("+++ "+toName) + "\n")
	for i := range hunks {
		h := &hunks[i]
		b.WriteString(hdr(h.Header()) + "\n")
		for _, l := range h.Lines {
			text := strings.TrimSuffix(l.Text, "\n")
			line := l.Op.String() + text
			switch l.Op {
			case Delete:
				line = del(line)
			case Insert:
				line = ins(line)
			}
			b.WriteString(line + "\n")
			if !strings.HasSuffix(l.Text, "\n") {
				b.WriteString("\\ No newline at end of file\n")
			}
		}
	}
	return b.String()
}
