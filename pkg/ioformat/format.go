// Package ioformat implements the two grid text formats the CLI reads
// and writes: the plain grid form ParseGrid/RenderGrid round-trip, and
// the Across Puzzle V2 tagged container RenderAcross emits. Grounded on
// tcstacks-crossy's cmd/crossgen text-handling style (error wrapping
// with fmt.Errorf, one function per format concern) even though the
// teacher itself reads puzzles from a database rather than flat text.
package ioformat

import (
	"fmt"
	"strings"

	"github.com/latticewords/xfill/pkg/alphabet"
	"github.com/latticewords/xfill/pkg/grid"
	"github.com/latticewords/xfill/pkg/xwerr"
)

const (
	blockChar   = '.'
	unknownChar = 'X'
)

// ParseGrid reads the grid text format: one row per line, '.' for
// Block, 'X' for Unknown, and any other rune for a Fixed letter. A
// Fixed letter is folded through alphabet.Fold at this boundary, the
// same folding BuildIndex applies to every dictionary word, so a
// lowercase or otherwise non-canonical-case letter in the input text
// still compares equal to the index's entries. Leading and trailing
// blank lines are ignored. All rows must be the same rune length;
// otherwise a StructuralError is returned.
func ParseGrid(text string) (*grid.Grid, error) {
	lines := strings.Split(text, "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	rows := lines[start:end]
	if len(rows) == 0 {
		return nil, xwerr.NewStructural("grid text has no rows")
	}

	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, xwerr.NewStructural("grid rows cannot be empty")
	}
	for i, row := range rows {
		if len([]rune(row)) != width {
			return nil, xwerr.NewStructural(
				fmt.Sprintf("row %d has length %d, want %d (rows must be rectangular)", i, len([]rune(row)), width))
		}
	}

	g := grid.New(width, len(rows))
	for r, row := range rows {
		for c, ch := range []rune(row) {
			cell := g.Cells[r][c]
			switch ch {
			case blockChar:
				cell.State = grid.Block
			case unknownChar:
				cell.State = grid.Unknown
			default:
				cell.State = grid.Fixed
				cell.Letter = []rune(alphabet.Fold(string(ch)))[0]
			}
		}
	}
	g.ComputeSlots()
	return g, nil
}

// RenderGrid renders g back to the plain grid text format: Block cells
// as '.', and every other cell as its letter (or 'X' if it has none
// yet). It is the inverse of ParseGrid for a grid with no Unknown
// cells.
func RenderGrid(g *grid.Grid) string {
	var b strings.Builder
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			cell := g.Cells[r][c]
			switch cell.State {
			case grid.Block:
				b.WriteRune(blockChar)
			case grid.Unknown:
				b.WriteRune(unknownChar)
			default:
				b.WriteRune(cell.Letter)
			}
		}
		if r < g.Height-1 {
			b.WriteRune('\n')
		}
	}
	return b.String()
}

// RenderAcross renders g as an Across Puzzle V2 container: tagged
// sections for title, author, copyright, size, the rendered grid, and
// the filled word of every Across then every Down slot, each listed in
// reading order of its starting cell. Slot IDs are already assigned in
// that reading order by Grid.ComputeSlots, so no further sort is
// needed here.
func RenderAcross(g *grid.Grid, title, author, copyright string) string {
	var b strings.Builder
	b.WriteString("<ACROSS PUZZLE V2>\n")
	b.WriteString("<TITLE>\n")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString("<AUTHOR>\n")
	b.WriteString(author)
	b.WriteString("\n")
	b.WriteString("<COPYRIGHT>\n")
	b.WriteString(copyright)
	b.WriteString("\n")
	b.WriteString("<SIZE>\n")
	fmt.Fprintf(&b, "%dx%d\n", g.Width, g.Height)
	b.WriteString("<GRID>\n")
	b.WriteString(RenderGrid(g))
	b.WriteString("\n")

	b.WriteString("<ACROSS>\n")
	for _, s := range g.Slots {
		if s.Direction != grid.ACROSS {
			continue
		}
		b.WriteString(string(s.Pattern()))
		b.WriteString("\n")
	}

	b.WriteString("<DOWN>\n")
	for _, s := range g.Slots {
		if s.Direction != grid.DOWN {
			continue
		}
		b.WriteString(string(s.Pattern()))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}
