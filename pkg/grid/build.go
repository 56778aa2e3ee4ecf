package grid

// New creates a Width x Height grid whose cells are all Block. Callers
// typically get a Grid from ioformat.ParseGrid (which itself starts from
// New) rather than calling New directly; New is exported for
// programmatic construction, such as in tests.
func New(width, height int) *Grid {
	cells := make([][]*Cell, height)
	for r := range cells {
		row := make([]*Cell, width)
		for c := range row {
			row[c] = &Cell{Row: r, Col: c, State: Block}
		}
		cells[r] = row
	}
	g := &Grid{Width: width, Height: height, Cells: cells}
	g.computeSlots()
	return g
}

// SetBlock marks a cell as a Block. Must be called before computeSlots
// has been relied on by callers (New already calls it once at the end);
// callers that mutate block layout after New must call ComputeSlots
// again.
func (g *Grid) SetBlock(row, col int) {
	g.Cells[row][col].State = Block
	g.Cells[row][col].Letter = 0
}

// SetFixed assigns a given (non-overwritable) letter to a cell.
func (g *Grid) SetFixed(row, col int, letter rune) {
	c := g.Cells[row][col]
	c.State = Fixed
	c.Letter = letter
}

// ComputeSlots (re)derives Slots and per-cell crossing pointers from the
// current Block layout. Safe to call again after changing which cells
// are Block; letters already placed are preserved.
func (g *Grid) ComputeSlots() {
	g.computeSlots()
}

// computeSlots implements the scan: across slots discovered row-major,
// then down slots discovered row-major by their top cell, assigning
// Slot.ID in that discovery order. Reading-order IDs fall out of this
// scan for free, which is what RenderAcross's section ordering relies
// on (see tcstacks-crossy's pkg/grid entries.go two-pass clue-numbering
// scan, generalized here to also wire crossing pointers).
func (g *Grid) computeSlots() {
	g.Slots = nil
	id := 1

	for _, row := range g.Cells {
		for _, cell := range row {
			cell.Number = 0
			cell.AcrossSlot, cell.AcrossOffset = nil, 0
			cell.DownSlot, cell.DownOffset = nil, 0
		}
	}

	numbered := make(map[[2]int]int)
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			cell := g.Cells[row][col]
			if cell.State == Block {
				continue
			}
			startsAcross := (col == 0 || g.Cells[row][col-1].State == Block) &&
				col+1 < g.Width && g.Cells[row][col+1].State != Block
			startsDown := (row == 0 || g.Cells[row-1][col].State == Block) &&
				row+1 < g.Height && g.Cells[row+1][col].State != Block
			if startsAcross || startsDown {
				if _, ok := numbered[[2]int{row, col}]; !ok {
					numbered[[2]int{row, col}] = len(numbered) + 1
					cell.Number = numbered[[2]int{row, col}]
				}
			}
		}
	}

	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			cell := g.Cells[row][col]
			if cell.State == Block {
				continue
			}
			if col != 0 && g.Cells[row][col-1].State != Block {
				continue
			}
			cells := collectRun(g, row, col, 0, 1)
			if len(cells) < 2 {
				continue
			}
			slot := &Slot{ID: id, Direction: ACROSS, StartRow: row, StartCol: col, Length: len(cells), Cells: cells}
			id++
			for i, c := range cells {
				c.AcrossSlot = slot
				c.AcrossOffset = i
			}
			g.Slots = append(g.Slots, slot)
		}
	}

	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			cell := g.Cells[row][col]
			if cell.State == Block {
				continue
			}
			if row != 0 && g.Cells[row-1][col].State != Block {
				continue
			}
			cells := collectRun(g, row, col, 1, 0)
			if len(cells) < 2 {
				continue
			}
			slot := &Slot{ID: id, Direction: DOWN, StartRow: row, StartCol: col, Length: len(cells), Cells: cells}
			id++
			for i, c := range cells {
				c.DownSlot = slot
				c.DownOffset = i
			}
			g.Slots = append(g.Slots, slot)
		}
	}
}

func collectRun(g *Grid, row, col, dRow, dCol int) []*Cell {
	var out []*Cell
	r, c := row, col
	for r < g.Height && c < g.Width && g.Cells[r][c].State != Block {
		out = append(out, g.Cells[r][c])
		r += dRow
		c += dCol
	}
	return out
}
