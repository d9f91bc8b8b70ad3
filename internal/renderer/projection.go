package renderer

import "math"

// Cell is one terminal character cell painted with a color.
type Cell struct {
	X     int
	Y     int
	Color Color
}

// Projection maps world coordinates onto a grid of terminal cells.
type Projection struct {
	World Vector
	Cols  int
	Rows  int
}

func (p Projection) cellSize() Vector {
	return Vector{X: p.World.X / float32(p.Cols), Y: p.World.Y / float32(p.Rows)}
}

// CellAt returns the grid cell containing the world point v. The result can
// be outside the grid.
func (p Projection) CellAt(v Vector) (int, int) {
	cs := p.cellSize()
	return int(math.Floor(float64(v.X / cs.X))), int(math.Floor(float64(v.Y / cs.Y)))
}

// CellCenter returns the world coordinate of the center of cell x, y.
func (p Projection) CellCenter(x, y int) Vector {
	cs := p.cellSize()
	return Vector{X: (float32(x) + 0.5) * cs.X, Y: (float32(y) + 0.5) * cs.Y}
}

func (p Projection) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.Cols && y < p.Rows
}

// fill samples every cell whose center lies in the box [from, to) and keeps
// the ones the sampler colors. Shapes smaller than a cell still paint the
// cell holding their center so nothing disappears at low resolutions.
// Blocks that would be placed off screen are clipped.
func (p Projection) fill(from, to Vector, sample func(Vector) (Color, bool)) []Cell {
	if p.Cols <= 0 || p.Rows <= 0 {
		return nil
	}

	minX, minY := p.CellAt(from)
	maxX, maxY := p.CellAt(to)

	var cells []Cell
	for y := max(minY, 0); y <= min(maxY, p.Rows-1); y++ {
		for x := max(minX, 0); x <= min(maxX, p.Cols-1); x++ {
			if c, ok := sample(p.CellCenter(x, y)); ok {
				cells = append(cells, Cell{X: x, Y: y, Color: c})
			}
		}
	}

	if len(cells) == 0 {
		mid := Vector{X: (from.X + to.X) / 2, Y: (from.Y + to.Y) / 2}
		x, y := p.CellAt(mid)
		if c, ok := sample(mid); ok && p.inside(x, y) {
			cells = append(cells, Cell{X: x, Y: y, Color: c})
		}
	}
	return cells
}
