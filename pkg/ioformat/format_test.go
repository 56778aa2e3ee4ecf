package ioformat

import (
	"strings"
	"testing"

	"github.com/latticewords/xfill/pkg/grid"
)

func TestParseGridBasicShapes(t *testing.T) {
	text := "CAT\n.X.\nDOG"
	g, err := ParseGrid(text)
	if err != nil {
		t.Fatalf("ParseGrid() = %v, want nil", err)
	}
	if g.Width != 3 || g.Height != 3 {
		t.Fatalf("dimensions = %dx%d, want 3x3", g.Width, g.Height)
	}
	if g.Cells[0][0].State != grid.Fixed || g.Cells[0][0].Letter != 'C' {
		t.Fatalf("cell (0,0) = %+v, want Fixed C", g.Cells[0][0])
	}
	if g.Cells[1][0].State != grid.Block {
		t.Fatalf("cell (1,0) should be Block")
	}
	if g.Cells[1][1].State != grid.Unknown {
		t.Fatalf("cell (1,1) should be Unknown")
	}
}

func TestParseGridFoldsFixedLetterCase(t *testing.T) {
	g, err := ParseGrid("cat")
	if err != nil {
		t.Fatalf("ParseGrid() = %v, want nil", err)
	}
	want := []rune{'C', 'A', 'T'}
	for c, r := range want {
		if g.Cells[0][c].Letter != r {
			t.Fatalf("cell (0,%d).Letter = %q, want %q (folded to match wordindex.BuildIndex's case folding)", c, g.Cells[0][c].Letter, r)
		}
	}
}

func TestParseGridIgnoresSurroundingBlankLines(t *testing.T) {
	text := "\n\nXX\nXX\n\n"
	g, err := ParseGrid(text)
	if err != nil {
		t.Fatalf("ParseGrid() = %v, want nil", err)
	}
	if g.Width != 2 || g.Height != 2 {
		t.Fatalf("dimensions = %dx%d, want 2x2", g.Width, g.Height)
	}
}

func TestParseGridRejectsNonRectangular(t *testing.T) {
	_, err := ParseGrid("XXX\nXX")
	if err == nil {
		t.Fatalf("expected a structural error for a non-rectangular grid")
	}
}

func TestRenderGridRoundTripNoUnknowns(t *testing.T) {
	g, err := ParseGrid("CAT\n.A.\nDOG")
	if err != nil {
		t.Fatalf("ParseGrid() = %v", err)
	}
	g.Cells[1][1].State = grid.Fixed
	g.Cells[1][1].Letter = 'A'
	out := RenderGrid(g)
	want := "CAT\n.A.\nDOG"
	if out != want {
		t.Fatalf("RenderGrid() = %q, want %q", out, want)
	}
}

func TestParseRenderRoundTrip(t *testing.T) {
	text := "CAT\n.A.\nDOG"
	g, err := ParseGrid(text)
	if err != nil {
		t.Fatalf("ParseGrid() = %v", err)
	}
	if RenderGrid(g) != text {
		t.Fatalf("RenderGrid(ParseGrid(text)) = %q, want %q", RenderGrid(g), text)
	}
}

func TestRenderAcrossSections(t *testing.T) {
	g, err := ParseGrid("CAT\nAGO\nTOE")
	if err != nil {
		t.Fatalf("ParseGrid() = %v", err)
	}
	out := RenderAcross(g, "My Title", "Me", "2026 Public domain.")

	for _, tag := range []string{"<ACROSS PUZZLE V2>", "<TITLE>", "<AUTHOR>", "<COPYRIGHT>", "<SIZE>", "<GRID>", "<ACROSS>", "<DOWN>"} {
		if !strings.Contains(out, tag) {
			t.Errorf("output missing section %q", tag)
		}
	}
	if !strings.Contains(out, "3x3") {
		t.Errorf("output missing size line, got:\n%s", out)
	}
	// sections must appear in order
	order := []string{"<ACROSS PUZZLE V2>", "<TITLE>", "<AUTHOR>", "<COPYRIGHT>", "<SIZE>", "<GRID>", "<ACROSS>", "<DOWN>"}
	last := -1
	for _, tag := range order {
		idx := strings.Index(out, tag)
		if idx <= last {
			t.Fatalf("section %q out of order in:\n%s", tag, out)
		}
		last = idx
	}
}

func TestRenderAcrossOmitsNoSlotsShape(t *testing.T) {
	g, err := ParseGrid("X.X\n.X.\nX.X")
	if err != nil {
		t.Fatalf("ParseGrid() = %v", err)
	}
	out := RenderAcross(g, "t", "a", "c")
	acrossIdx := strings.Index(out, "<ACROSS>")
	downIdx := strings.Index(out, "<DOWN>")
	acrossBody := out[acrossIdx+len("<ACROSS>\n") : downIdx]
	if strings.TrimSpace(acrossBody) != "" {
		t.Fatalf("expected no across slots for an all-isolated-cells grid, got %q", acrossBody)
	}
}
