package mway

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Dump writes a human-readable rendering of the tree's node structure to w,
// one node per line, indented by depth (for debugging purposes).
//
// When w is an interactive terminal, node frames and elements are colored and
// long lines are clipped to the terminal width. For any other sink plain text
// is written.
func (t *Tree[T]) Dump(w io.Writer) {
	frame := color.New(color.FgHiBlack)
	vals := color.New(color.FgCyan, color.Bold)
	width := 0
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil {
			width = cols
		}
	} else {
		frame.DisableColor()
		vals.DisableColor()
	}
	if t == nil || t.root == nil {
		fmt.Fprintln(w, frame.Sprint("(unconstructed tree)"))
		return
	}
	t.dumpNode(w, t.root, -1, "", frame, vals, width)
}

func (t *Tree[T]) dumpNode(w io.Writer, n *node[T], slot int, indent string,
	frame, vals *color.Color, width int,
) {
	parts := make([]string, len(n.vals))
	for i, v := range n.vals {
		parts[i] = vals.Sprintf("%v", v)
	}
	line := indent
	if slot >= 0 {
		line += frame.Sprintf("%d→ ", slot)
	}
	line += frame.Sprint("[") + strings.Join(parts, " ") + frame.Sprint("]")
	fmt.Fprintln(w, clipLine(line, width))
	for i, child := range n.children {
		if child == nil {
			continue
		}
		t.dumpNode(w, child, i, indent+"    ", frame, vals, width)
	}
}

// ANSI scanner states for clipping colored lines.
const (
	ansiText = iota
	ansiEsc  // saw ESC, deciding on the introducer
	ansiCSI  // inside a control sequence, waiting for the final byte
)

// ansiStep advances the scanner state for one rune. visible is true when r
// occupies a terminal cell.
func ansiStep(state int, r rune) (next int, visible bool) {
	switch state {
	case ansiEsc:
		if r == '[' {
			return ansiCSI, false
		}
		return ansiText, false
	case ansiCSI:
		// parameter and intermediate bytes run up to a final byte @…~
		if r >= 0x40 && r <= 0x7e {
			return ansiText, false
		}
		return ansiCSI, false
	default:
		if r == '\x1b' {
			return ansiEsc, false
		}
		return ansiText, true
	}
}

// visibleCells counts the terminal cells of line, ignoring escape sequences.
func visibleCells(line string) int {
	cells, state := 0, ansiText
	for _, r := range line {
		var visible bool
		state, visible = ansiStep(state, r)
		if visible {
			cells++
		}
	}
	return cells
}

// clipLine truncates line to at most width terminal cells, ellipsis
// included. Width 0 disables clipping; a line that exactly fits stays
// unmodified. Color escape sequences are not counted and are carried into
// the clipped output.
func clipLine(line string, width int) string {
	if width <= 0 || visibleCells(line) <= width {
		return line
	}
	var out strings.Builder
	cells, state := 0, ansiText
	for _, r := range line {
		var visible bool
		state, visible = ansiStep(state, r)
		if visible {
			if cells == width-1 {
				out.WriteRune('…')
				return out.String()
			}
			cells++
		}
		out.WriteRune(r)
	}
	return out.String()
}
