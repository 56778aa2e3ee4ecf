// Package grid implements the grid model: cells, slots, crossings, and
// an O(1)-rollback write log used by the fill engine's backtracking
// search. Grounded on tcstacks-crossy's pkg/grid (Direction/Cell/Entry
// shape, slot-discovery scan order), generalized from its fixed
// Block/Letter cell model to the four-state Block/Unknown/Fixed/Filled
// model the fill engine needs to distinguish already-known letters from
// ones it is free to try and discard.
package grid

// Direction is the orientation of a slot.
type Direction int

const (
	// ACROSS is a horizontal slot, read left to right.
	ACROSS Direction = iota
	// DOWN is a vertical slot, read top to bottom.
	DOWN
)

func (d Direction) String() string {
	switch d {
	case ACROSS:
		return "across"
	case DOWN:
		return "down"
	default:
		return "unknown"
	}
}

// CellState is the fill-relevant state of one cell.
type CellState int

const (
	// Block is not part of any word; never read or written by a slot.
	Block CellState = iota
	// Unknown is part of a slot but has no letter yet.
	Unknown
	// Fixed carries a letter supplied by the input grid itself (a given
	// letter, not something the search may overwrite).
	Fixed
	// Filled carries a letter the search wrote; it may be undone.
	Filled
)

// Cell is one square of the grid. AcrossSlot/DownSlot (nil if the cell
// is not part of a slot in that direction) and the matching offsets let
// the fill engine walk from a cell to its crossing slot in O(1) without
// a search.
type Cell struct {
	Row, Col int
	State    CellState
	Letter   rune
	Number   int // clue number, 0 if this cell does not start a slot

	AcrossSlot   *Slot
	AcrossOffset int
	DownSlot     *Slot
	DownOffset   int
}

// HasLetter reports whether the cell currently carries a letter, fixed
// or filled.
func (c *Cell) HasLetter() bool {
	return c.State == Fixed || c.State == Filled
}

// Slot is a maximal run of non-Block cells, length >= 2, in one
// direction. Cells is ordered start-to-end in reading direction.
type Slot struct {
	ID        int
	Direction Direction
	StartRow  int
	StartCol  int
	Length    int
	Cells     []*Cell
}

// Pattern returns the slot's current contents as a rune slice, using
// wordindex.Wildcard (rune 0) for any cell without a letter yet. The
// result is a fresh copy; mutating it does not affect the grid.
func (s *Slot) Pattern() []rune {
	out := make([]rune, len(s.Cells))
	for i, c := range s.Cells {
		if c.HasLetter() {
			out[i] = c.Letter
		}
	}
	return out
}

// IsComplete reports whether every cell in the slot already carries a
// letter.
func (s *Slot) IsComplete() bool {
	for _, c := range s.Cells {
		if !c.HasLetter() {
			return false
		}
	}
	return true
}

// CrossingAt returns the slot crossing this one at position i, and the
// offset into that crossing slot, or (nil, 0) if position i has no
// crossing (a slot running alongside a Block in the other direction).
func (s *Slot) CrossingAt(i int) (*Slot, int) {
	c := s.Cells[i]
	if s.Direction == ACROSS {
		return c.DownSlot, c.DownOffset
	}
	return c.AcrossSlot, c.AcrossOffset
}

// Grid is a rectangular crossword grid together with its derived slots
// and an undo log for speculative writes.
type Grid struct {
	Width, Height int
	Cells         [][]*Cell // Cells[row][col]
	Slots         []*Slot

	undo    []undoEntry
	nextTag int
}

// undoEntry records enough to reverse exactly one WriteLetter call.
type undoEntry struct {
	tag       int
	cell      *Cell
	prevState CellState
	prevRune  rune
}
