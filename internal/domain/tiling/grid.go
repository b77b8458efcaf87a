package tiling

// occupancy is a row-major boolean grid, valid for a single tiling pass.
type occupancy struct {
	width  int
	height int
	cells  []bool
}

func newGrid(width, height int) *occupancy {
	return &occupancy{width: width, height: height, cells: make([]bool, width*height)}
}

func (g *occupancy) filled(x, y int) bool {
	return g.cells[y*g.width+x]
}

// free reports whether the w x h rectangle at (x, y) is in bounds and empty.
func (g *occupancy) free(x, y, w, h int) bool {
	if x < 0 || y < 0 || w <= 0 || h <= 0 || x+w > g.width || y+h > g.height {
		return false
	}
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if g.cells[(y+dy)*g.width+x+dx] {
				return false
			}
		}
	}
	return true
}

func (g *occupancy) fill(x, y, w, h int) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			g.cells[(y+dy)*g.width+x+dx] = true
		}
	}
}
