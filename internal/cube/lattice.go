package cube

// Vec3 is a point on the integer lattice the cube is embedded in.
type Vec3 struct {
	X, Y, Z int
}

// Lattice places the centre of cell p in 3D space for a cube with n cells per
// edge. The cube spans [-n, n] on every axis (coordinates are doubled so each
// cell centre is integral): Front faces +Z, Right faces +X and Top faces +Y.
//
// For n >= 2, two cells are neighbours on the surface exactly when their
// lattice points are at Manhattan distance 2, whether or not they share a face.
func (p Position) Lattice(n int) Vec3 {
	u := 2*p.U + 1 - n
	v := 2*p.V + 1 - n

	switch p.Face {
	case Front:
		return Vec3{X: u, Y: v, Z: n}
	case Back:
		return Vec3{X: -u, Y: v, Z: -n}
	case Right:
		return Vec3{X: n, Y: v, Z: -u}
	case Left:
		return Vec3{X: -n, Y: v, Z: u}
	case Top:
		return Vec3{X: u, Y: n, Z: -v}
	default:
		return Vec3{X: u, Y: -n, Z: v}
	}
}

// Manhattan returns the L1 distance between two lattice points.
func (a Vec3) Manhattan(b Vec3) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y) + abs(a.Z-b.Z)
}

// Adjacent reports whether a and b are neighbouring cells on a cube with n
// cells per edge. On a 1x1x1 cube every face touches every other face except
// the opposite one.
func Adjacent(a, b Position, n int) bool {
	if n == 1 {
		for _, d := range Directions {
			if Neighbor(a.Face, d) == b.Face {
				return true
			}
		}
		return false
	}
	return a.Lattice(n).Manhattan(b.Lattice(n)) == 2
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
