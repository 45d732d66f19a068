package advanced

import "github.com/kr/pretty"

// The cavity left by inserting a point: the triangles whose circumcircles
// strictly contain it, and the polygon bounding their union.
type Cavity struct {
	Bad []Triangle
	// Edges referenced by exactly one bad triangle, in order of first
	// appearance.
	Boundary []Edge
}

// Find the cavity for a point that is about to be inserted. The mesh is not
// modified.
//
// Note that a degenerate (collinear) triangle has an infinite circumcircle, so
// it will be found bad for any point at all.
func FindCavity(m *Mesh, p Point, epsilon float64) Cavity {
	var cavity Cavity
	for _, t := range m.triangles {
		if m.Circumcircle(t, epsilon).Contains(p) {
			cavity.Bad = append(cavity.Bad, t)
		}
	}

	// Edges shared by two bad triangles are interior to the cavity and cancel
	// out. In a planar mesh no edge has more than two triangles, so whatever
	// is left with a count of one is the boundary.
	tally := make(map[Edge]int)
	var order []Edge
	for _, t := range cavity.Bad {
		for _, e := range t.Edges() {
			if tally[e] == 0 {
				order = append(order, e)
			}
			tally[e]++
		}
	}
	for _, e := range order {
		if tally[e] == 1 {
			cavity.Boundary = append(cavity.Boundary, e)
		}
	}
	return cavity
}

func (c Cavity) Empty() bool {
	return len(c.Bad) == 0
}

// Check that the cavity can be applied to the mesh. This runs before anything
// is mutated, so a failure leaves the mesh untouched.
func (c Cavity) validate(m *Mesh) {
	for _, t := range c.Bad {
		if !m.HasTriangle(t) {
			fatalf("bad triangle %s is not in the mesh", t)
		}
	}
	if len(c.Bad) > 0 && len(c.Boundary) == 0 {
		fatalf("cavity has no boundary; mesh is not planar: %# v", pretty.Formatter(c.Bad))
	}
}
