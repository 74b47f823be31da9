// Package cube models the surface of a cube as six square grids and resolves
// movement across the seams between them.
//
// Every face carries its own local frame: U grows to the face's right and V
// grows to the face's up. The package is purely combinatorial; it has no
// dependencies and does no I/O.
package cube

import "fmt"

// Face identifies one of the six faces of the cube.
type Face int

const (
	Front Face = iota
	Back
	Left
	Right
	Top
	Bottom

	faceCount = 6
)

// Faces lists every face in a fixed order.
var Faces = [faceCount]Face{Front, Back, Left, Right, Top, Bottom}

// String returns the face name.
func (f Face) String() string {
	switch f {
	case Front:
		return "front"
	case Back:
		return "back"
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Direction is a travel direction in the local frame of the occupied face.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight

	directionCount = 4
)

// Directions lists every direction in a fixed order.
var Directions = [directionCount]Direction{DirUp, DirDown, DirLeft, DirRight}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// IsOpposite reports whether d and other point in reverse directions.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

// Vertical reports whether d moves along the V axis.
func (d Direction) Vertical() bool {
	return d == DirUp || d == DirDown
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Position is one cell on the cube surface.
// Positions are plain values and compare with ==.
type Position struct {
	Face Face
	U, V int
}

// At is shorthand for building a Position.
func At(f Face, u, v int) Position {
	return Position{Face: f, U: u, V: v}
}

func (p Position) String() string {
	return fmt.Sprintf("%s(%d,%d)", p.Face, p.U, p.V)
}

// Valid reports whether p lies on a cube with n cells per edge.
func Valid(p Position, n int) bool {
	if p.Face < Front || p.Face > Bottom {
		return false
	}
	return p.U >= 0 && p.U < n && p.V >= 0 && p.V < n
}

// Center returns the cell closest to the middle of face f.
func Center(f Face, n int) Position {
	return Position{Face: f, U: n / 2, V: n / 2}
}

// Cells enumerates all 6*n*n positions, face by face in Faces order, then by
// V and U ascending.
func Cells(n int) []Position {
	if n <= 0 {
		return nil
	}
	cells := make([]Position, 0, faceCount*n*n)
	for _, f := range Faces {
		for v := range n {
			for u := range n {
				cells = append(cells, Position{Face: f, U: u, V: v})
			}
		}
	}
	return cells
}
