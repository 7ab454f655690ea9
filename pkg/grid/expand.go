package grid

// Shift moves every occupant by (DX, DY) in two steps. Staged maps a cell
// into the negative quadrant, where it cannot collide with any cell that is
// still unshifted; Final maps it back. Applying both to all rows in two
// statements keeps per-cell unique constraints satisfied throughout.
type Shift struct {
	DX, DY int
}

func (s Shift) Staged(p Point) Point {
	return Point{X: -(p.X + s.DX) - 1, Y: -(p.Y + s.DY) - 1}
}

func (s Shift) Final(staged Point) Point {
	return Point{X: -staged.X - 1, Y: -staged.Y - 1}
}

func (s Shift) Apply(p Point) Point {
	return s.Final(s.Staged(p))
}

type Expansion struct {
	Size  int
	Pond  Point
	Shift Shift
}

// Expand grows the forest by ExpandStep cells per side pair and keeps the
// existing layout centred.
func Expand(size int) Expansion {
	newSize := size + ExpandStep
	offset := ExpandStep / 2
	return Expansion{
		Size:  newSize,
		Pond:  DefaultPond(newSize),
		Shift: Shift{DX: offset, DY: offset},
	}
}
