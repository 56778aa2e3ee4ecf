package grid

import "github.com/latticewords/xfill/pkg/xwerr"

// CheckConnected verifies that every non-Block cell is reachable from
// every other non-Block cell by a 4-connected path of non-Block cells.
// A disconnected grid can never be filled as one search (two separate
// regions never interact), so this is checked once, structurally,
// before the search begins, rather than being a property the search
// itself could ever recover from. Grounded on tcstacks-crossy's
// pkg/grid connectivity flood fill, generalized from a fixed
// center-as-start BFS (which assumes a square grid with a white center)
// to start from the first non-Block cell found, so it is correct for
// any rectangular grid shape, including ones with a blocked center.
func CheckConnected(g *Grid) *xwerr.StructuralError {
	total := 0
	startRow, startCol := -1, -1
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			if g.Cells[r][c].State != Block {
				total++
				if startRow == -1 {
					startRow, startCol = r, c
				}
			}
		}
	}
	if total == 0 {
		return xwerr.NewStructural("grid has no fillable cells")
	}

	visited := make([][]bool, g.Height)
	for i := range visited {
		visited[i] = make([]bool, g.Width)
	}
	reached := floodFill(g, startRow, startCol, visited)
	if reached != total {
		return xwerr.NewStructural("grid has disconnected fillable regions")
	}
	return nil
}

func floodFill(g *Grid, startRow, startCol int, visited [][]bool) int {
	queue := [][2]int{{startRow, startCol}}
	visited[startRow][startCol] = true
	count := 1

	dirs := [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range dirs {
			nr, nc := cur[0]+d[0], cur[1]+d[1]
			if nr < 0 || nr >= g.Height || nc < 0 || nc >= g.Width {
				continue
			}
			if visited[nr][nc] || g.Cells[nr][nc].State == Block {
				continue
			}
			visited[nr][nc] = true
			queue = append(queue, [2]int{nr, nc})
			count++
		}
	}
	return count
}
