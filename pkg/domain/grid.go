package domain

import "fmt"

// Grid is the 2D lattice of disease states. Dimensions are fixed at
// construction; every cell always holds exactly one valid State.
//
// Cells are stored row-major. Accessors are bounds-checked and panic on
// out-of-range coordinates: an invalid index can only come from a kernel
// bug, never from user input, so it must fail loudly (not be clamped away).
type Grid struct {
	width  int
	height int
	cells  []State
}

// NewGrid allocates a width x height grid with every cell Susceptible.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, &ParamError{Name: "size", Reason: fmt.Sprintf("dimensions must be positive, got %dx%d", width, height)}
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]State, width*height),
	}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// At returns the state at (x, y).
func (g *Grid) At(x, y int) State {
	return g.cells[g.index(x, y)]
}

// Set writes the state at (x, y).
func (g *Grid) Set(x, y int, s State) {
	g.cells[g.index(x, y)] = s
}

// ClampedAt returns the state at (x, y) with coordinates clamped to the
// grid edge. All neighbor-dependent rules go through this single helper so
// they share identical boundary semantics: a cell on the edge sees itself
// as its own neighbor in the missing direction, so nothing "beyond" the
// edge can ever act as an infection source.
func (g *Grid) ClampedAt(x, y int) State {
	if x < 0 {
		x = 0
	} else if x >= g.width {
		x = g.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= g.height {
		y = g.height - 1
	}
	return g.cells[y*g.width+x]
}

// Swap exchanges the states of two cells.
func (g *Grid) Swap(x1, y1, x2, y2 int) {
	i, j := g.index(x1, y1), g.index(x2, y2)
	g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]State, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Cells returns a copy of the raw row-major cell slice.
func (g *Grid) Cells() []State {
	out := make([]State, len(g.cells))
	copy(out, g.cells)
	return out
}

// Census counts the population of each state in one pass.
func (g *Grid) Census() map[State]int {
	counts := make(map[State]int, len(States))
	for _, s := range States {
		counts[s] = 0
	}
	for _, s := range g.cells {
		counts[s]++
	}
	return counts
}

func (g *Grid) index(x, y int) int {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(fmt.Sprintf("grid: index (%d,%d) out of range %dx%d", x, y, g.width, g.height))
	}
	return y*g.width + x
}
