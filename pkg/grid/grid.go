// Package grid holds the placement rules of a square forest grid with a
// 2x2 pond block.
package grid

import "errors"

const (
	DefaultSize = 8
	ExpandStep  = 2
	pondSpan    = 2
)

var (
	ErrOutOfBounds = errors.New("position is outside the forest")
	ErrPondArea    = errors.New("position is covered by the pond")
	ErrOccupied    = errors.New("position is already occupied")
	ErrInvalidPond = errors.New("pond must stay one cell inside the border")
	ErrPondBlocked = errors.New("pond would cover an occupied cell")
)

type Point struct {
	X, Y int
}

type Grid struct {
	Size      int
	Pond      Point
	occupants map[Point]struct{}
}

func New(size int, pond Point, occupied []Point) *Grid {
	g := &Grid{
		Size:      size,
		Pond:      pond,
		occupants: make(map[Point]struct{}, len(occupied)),
	}
	for _, p := range occupied {
		g.occupants[p] = struct{}{}
	}
	return g
}

func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.Size && p.Y < g.Size
}

// InPond reports whether p lies in the pond block anchored at g.Pond.
func (g *Grid) InPond(p Point) bool {
	return inBlock(g.Pond, p)
}

func (g *Grid) Occupied(p Point) bool {
	_, ok := g.occupants[p]
	return ok
}

// Validate checks that p can take a new occupant.
func (g *Grid) Validate(p Point) error {
	switch {
	case !g.InBounds(p):
		return ErrOutOfBounds
	case g.InPond(p):
		return ErrPondArea
	case g.Occupied(p):
		return ErrOccupied
	}
	return nil
}

// ValidateMove checks a move of the occupant at from to to. Moving onto the
// same cell is allowed.
func (g *Grid) ValidateMove(from, to Point) error {
	if from == to {
		if !g.InBounds(to) {
			return ErrOutOfBounds
		}
		return nil
	}
	delete(g.occupants, from)
	defer func() { g.occupants[from] = struct{}{} }()
	return g.Validate(to)
}

// ValidatePond checks a new pond anchor against the border and occupants.
func (g *Grid) ValidatePond(anchor Point) error {
	if !ValidPond(g.Size, anchor) {
		return ErrInvalidPond
	}
	for p := range g.occupants {
		if inBlock(anchor, p) {
			return ErrPondBlocked
		}
	}
	return nil
}

// DefaultPond centres the pond block.
func DefaultPond(size int) Point {
	return Point{X: size/2 - 1, Y: size/2 - 1}
}

// ValidPond keeps the whole pond block off the outer ring of cells.
func ValidPond(size int, anchor Point) bool {
	return anchor.X >= 1 && anchor.Y >= 1 &&
		anchor.X+pondSpan-1 < size-1 && anchor.Y+pondSpan-1 < size-1
}

func inBlock(anchor, p Point) bool {
	return p.X >= anchor.X && p.X < anchor.X+pondSpan &&
		p.Y >= anchor.Y && p.Y < anchor.Y+pondSpan
}
