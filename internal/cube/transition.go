package cube

import "fmt"

// seam describes what happens when a step leaves a face through one edge.
//
// The coordinate running along the crossed edge (U for vertical moves, V for
// horizontal ones) is carried over to the destination face, reversed when
// flip is set. The destination entry edge follows from the new direction:
// moving up enters at V=0, down at V=n-1, right at U=0, left at U=n-1.
type seam struct {
	face Face
	dir  Direction
	flip bool
}

// seams is the full transition table for the unfolding
//
//	       Top
//	Left  Front  Right  Back
//	      Bottom
//
// Left, Front, Right and Back share one "up". Top's V grows from Front toward
// Back; Bottom's V grows from Back toward Front. Back is viewed from behind, so
// its local right borders Left.
var seams = [faceCount][directionCount]seam{
	Front: {
		DirUp:    {face: Top, dir: DirUp},
		DirDown:  {face: Bottom, dir: DirDown},
		DirLeft:  {face: Left, dir: DirLeft},
		DirRight: {face: Right, dir: DirRight},
	},
	Back: {
		DirUp:    {face: Top, dir: DirDown, flip: true},
		DirDown:  {face: Bottom, dir: DirUp, flip: true},
		DirLeft:  {face: Right, dir: DirLeft},
		DirRight: {face: Left, dir: DirRight},
	},
	Left: {
		DirUp:    {face: Top, dir: DirRight, flip: true},
		DirDown:  {face: Bottom, dir: DirRight},
		DirLeft:  {face: Back, dir: DirLeft},
		DirRight: {face: Front, dir: DirRight},
	},
	Right: {
		DirUp:    {face: Top, dir: DirLeft},
		DirDown:  {face: Bottom, dir: DirLeft, flip: true},
		DirLeft:  {face: Front, dir: DirLeft},
		DirRight: {face: Back, dir: DirRight},
	},
	Top: {
		DirUp:    {face: Back, dir: DirDown, flip: true},
		DirDown:  {face: Front, dir: DirDown},
		DirLeft:  {face: Left, dir: DirDown, flip: true},
		DirRight: {face: Right, dir: DirDown},
	},
	Bottom: {
		DirUp:    {face: Front, dir: DirUp},
		DirDown:  {face: Back, dir: DirUp, flip: true},
		DirLeft:  {face: Left, dir: DirUp},
		DirRight: {face: Right, dir: DirUp, flip: true},
	},
}

func init() {
	if err := checkSeams(); err != nil {
		panic(err)
	}
}

// checkSeams verifies that every seam is mirrored by the seam on the other
// side: leaving B backwards along the new direction must lead to the source
// face, heading opposite the original direction, with the same flip.
// An entry missing from the table shows up as a broken pair.
func checkSeams() error {
	for _, f := range Faces {
		for _, d := range Directions {
			s := seams[f][d]
			if s.face == f {
				return fmt.Errorf("cube: seam %s/%s loops onto its own face", f, d)
			}
			back := seams[s.face][s.dir.Opposite()]
			if back.face != f || back.dir != d.Opposite() || back.flip != s.flip {
				return fmt.Errorf("cube: seam %s/%s -> %s/%s is not mirrored", f, d, s.face, s.dir)
			}
		}
	}
	return nil
}

// Next returns the cell one step from p in direction d on a cube with n cells
// per edge, together with the direction of travel after the step.
// The direction only changes when the step crosses onto another face.
func Next(p Position, d Direction, n int) (Position, Direction) {
	u, v := p.U, p.V
	switch d {
	case DirUp:
		v++
	case DirDown:
		v--
	case DirLeft:
		u--
	case DirRight:
		u++
	}

	if u >= 0 && u < n && v >= 0 && v < n {
		return Position{Face: p.Face, U: u, V: v}, d
	}

	return cross(p, d, n)
}

// cross applies the seam for leaving p's face in direction d.
func cross(p Position, d Direction, n int) (Position, Direction) {
	s := seams[p.Face][d]
	last := n - 1

	along := p.U
	if !d.Vertical() {
		along = p.V
	}
	if s.flip {
		along = last - along
	}

	out := Position{Face: s.face}
	switch s.dir {
	case DirUp:
		out.U, out.V = along, 0
	case DirDown:
		out.U, out.V = along, last
	case DirRight:
		out.U, out.V = 0, along
	case DirLeft:
		out.U, out.V = last, along
	}
	return out, s.dir
}

// Neighbor returns the face across the edge of f in direction d.
func Neighbor(f Face, d Direction) Face {
	return seams[f][d].face
}
