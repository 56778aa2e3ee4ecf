package grid

// NewTag allocates a fresh undo tag. Callers (the fill engine) obtain
// one tag per trial frame: every WriteLetter made while trying a
// candidate is stamped with that frame's tag, and a single UndoTo call
// reverses all of them in O(k) where k is the number of writes in the
// frame, not the whole grid.
func (g *Grid) NewTag() int {
	g.nextTag++
	return g.nextTag
}

// WriteLetter writes letter into cell, stamping the undo log entry with
// tag so a later UndoTo(tag) can reverse it. Writing to a Block cell or
// overwriting a Fixed cell is a programming error in the caller (the
// fill engine is expected to never attempt either) and panics rather
// than silently corrupting grid state.
func (g *Grid) WriteLetter(cell *Cell, letter rune, tag int) {
	if cell.State == Block {
		panic("grid: WriteLetter on a Block cell")
	}
	if cell.State == Fixed {
		panic("grid: WriteLetter would overwrite a Fixed cell")
	}
	g.undo = append(g.undo, undoEntry{tag: tag, cell: cell, prevState: cell.State, prevRune: cell.Letter})
	cell.State = Filled
	cell.Letter = letter
}

// UndoTo reverses every write recorded with the given tag or any tag
// allocated after it, restoring each affected cell to its prior state.
// Entries are unwound most-recent-first so overlapping writes to the
// same cell (shouldn't happen within one frame, but cheap to support)
// restore correctly.
func (g *Grid) UndoTo(tag int) {
	i := len(g.undo)
	for i > 0 && g.undo[i-1].tag >= tag {
		i--
	}
	for j := len(g.undo) - 1; j >= i; j-- {
		e := g.undo[j]
		e.cell.State = e.prevState
		e.cell.Letter = e.prevRune
	}
	g.undo = g.undo[:i]
}
