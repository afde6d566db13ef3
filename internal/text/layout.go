package text

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tileforge/internal/grid"
)

// Align anchors a block of text to a corner, an edge, or the middle of its
// box. The value encodes row and column: row = a/3, column = a%3.
type Align int

const (
	AlignUpLeft Align = iota
	AlignUp
	AlignUpRight
	AlignLeft
	AlignCenter
	AlignRight
	AlignDownLeft
	AlignDown
	AlignDownRight
)

var alignNames = [...]string{
	"up-left", "up", "up-right",
	"left", "center", "right",
	"down-left", "down", "down-right",
}

func (a Align) String() string {
	if a < 0 || int(a) >= len(alignNames) {
		return fmt.Sprintf("Align(%d)", int(a))
	}
	return alignNames[a]
}

// ParseAlign converts a flag value like "center" or "down-left" into an
// Align.
func ParseAlign(s string) (Align, error) {
	for i, name := range alignNames {
		if s == name {
			return Align(i), nil
		}
	}
	return AlignUpLeft, fmt.Errorf("text: unknown alignment %q", s)
}

// Layout splits lines into rows that fit a w by h box and aligns them.
//
// Input lines are chained with newline markers, so a tail carried out of
// one line never flows onto the next without a forced break between them.
// A line breaks at rune index j when exactly one of two conditions holds:
// j exceeds w, or the rune at j is a newline. When both hold at once the
// line is left intact, so a newline sitting just past the box edge keeps
// the overlong row alive; the newline is rendered as a space later. A
// trailing newline reached in bounds is stripped. A newline break consumes
// the marker and carries the tail forward; an overflow break either cuts
// at the nearest space at or before column w (word wrap) or hard-cuts at
// w. Carried tails merge into the following line with a single joining
// space, omitted when the tail still ends in a newline; a tail with no
// following line becomes one. Layout stops once the box height is spent,
// dropping the rest.
//
// Rows the box has to spare are filled in from the top: none for the up
// row, half the deficit for the middle row, all of it for the down row.
// Every emitted row is then padded with spaces to width w on the side its
// column dictates; rows already past w are left alone.
func Layout(lines []string, w, h int, wordWrap bool, align Align) []string {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	// Every line except the last gets a newline marker so input line
	// boundaries survive the tail-carrying below as forced breaks.
	work := make([][]rune, len(lines))
	for i, s := range lines {
		rs := []rune(s)
		if i != len(lines)-1 {
			rs = append(rs, '\n')
		}
		work[i] = rs
	}

	var out [][]rune
	for i := 0; i < len(work) && len(out) <= h; i++ {
		rs := work[i]
		broke := false
		for j := 0; j < len(rs); j++ {
			overflow := j > w
			newline := rs[j] == '\n'
			if overflow == newline {
				continue
			}
			broke = true
			if newline && j == len(rs)-1 {
				out = append(out, rs[:j])
				break
			}
			var left, rest []rune
			switch {
			case newline:
				left, rest = rs[:j], rs[j+1:]
			case wordWrap:
				k := w
				for k >= 0 && rs[k] != ' ' {
					k--
				}
				if k >= 0 {
					left, rest = rs[:k], rs[k+1:]
				} else {
					left, rest = rs[:w], rs[w:]
				}
			default:
				left, rest = rs[:w], rs[w:]
			}
			out = append(out, left)
			if i == len(work)-1 {
				work = append(work, rest)
			} else {
				joined := make([]rune, 0, len(rest)+1+len(work[i+1]))
				joined = append(joined, rest...)
				if rest[len(rest)-1] != '\n' {
					joined = append(joined, ' ')
				}
				work[i+1] = append(joined, work[i+1]...)
			}
			break
		}
		if !broke {
			out = append(out, rs)
		}
	}
	if len(out) > h {
		out = out[:h]
	}

	if deficit := h - len(out); deficit > 0 {
		var top int
		switch a := int(align) / 3; a {
		case 1:
			top = deficit / 2
		case 2:
			top = deficit
		}
		if top > 0 {
			padded := make([][]rune, 0, top+len(out))
			for r := 0; r < top; r++ {
				padded = append(padded, nil)
			}
			out = append(padded, out...)
		}
	}

	col := int(align) % 3
	res := make([]string, len(out))
	for i, rs := range out {
		res[i] = pad(rs, w, col)
	}
	return res
}

// pad renders surviving newlines as spaces and fills the row out to width
// w on the side col dictates. Rows at or past w pass through unchanged.
func pad(rs []rune, w, col int) string {
	for i, r := range rs {
		if r == '\n' {
			rs[i] = ' '
		}
	}
	n := w - len(rs)
	if n <= 0 {
		return string(rs)
	}
	switch col {
	case 1:
		left := n / 2
		return strings.Repeat(" ", left) + string(rs) + strings.Repeat(" ", n-left)
	case 2:
		return strings.Repeat(" ", n) + string(rs)
	default:
		return string(rs) + strings.Repeat(" ", n)
	}
}

// Print lays lines out inside the w by h box anchored at origin and writes
// the resulting glyph tiles to g in color c. Rows the layout leaves empty
// keep whatever the grid held before.
func Print(g *grid.Grid, origin grid.Point, w, h int, wordWrap bool, align Align, c grid.Color, lines ...string) {
	for r, row := range Layout(lines, w, h, wordWrap, align) {
		PrintLine(g, grid.Pt(origin.X, origin.Y+r), row, c)
	}
}

// PrintLine writes one string starting at p, one tile per glyph. Runes
// without an atlas glyph are skipped and do not consume a column.
func PrintLine(g *grid.Grid, p grid.Point, s string, c grid.Color) {
	x := p.X
	for _, r := range s {
		id, ok := TileFor(r)
		if !ok {
			continue
		}
		g.Set(grid.Pt(x, p.Y), id, c)
		x++
	}
}
