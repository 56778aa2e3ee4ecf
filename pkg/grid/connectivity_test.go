package grid

import "testing"

func TestCheckConnectedFullyOpenGrid(t *testing.T) {
	g := fourByFourOpen(t)
	if err := CheckConnected(g); err != nil {
		t.Fatalf("CheckConnected() = %v, want nil", err)
	}
}

func TestCheckConnectedDisconnectedRegions(t *testing.T) {
	g := New(5, 1)
	for c := 0; c < 5; c++ {
		g.Cells[0][c].State = Unknown
	}
	g.Cells[0][2].State = Block // splits into two length-2 runs
	g.ComputeSlots()
	if err := CheckConnected(g); err == nil {
		t.Fatalf("expected a structural error for disconnected regions")
	}
}

func TestCheckConnectedAllBlockGrid(t *testing.T) {
	g := New(3, 3)
	if err := CheckConnected(g); err == nil {
		t.Fatalf("expected a structural error for a grid with no fillable cells")
	}
}
