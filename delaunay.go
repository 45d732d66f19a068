// Incremental Delaunay triangulation for Go.
//
// Points are inserted one at a time using the Bowyer-Watson algorithm. The
// first three points form a seed triangle; every later point removes the
// triangles whose circumcircles contain it and fans new triangles into the
// hole, so that after each insertion no point lies strictly inside any
// triangle's circumcircle.
//
// For points to be triangulated correctly, choose the first three so that
// every later point falls inside the triangle they make.
package delaunay

import "github.com/osuushi/delaunay/advanced"

type Point = advanced.Point
type Triangle = advanced.Triangle
type Edge = advanced.Edge
type Step = advanced.Step
type Snapshot = advanced.Snapshot
type State = advanced.State
type Triangulator = advanced.Triangulator
type Option = advanced.Option
type InvariantViolation = advanced.InvariantViolation

var (
	WithLogger  = advanced.WithLogger
	WithEpsilon = advanced.WithEpsilon
)

// Create an empty triangulator for inserting points one at a time.
func New(opts ...Option) *Triangulator {
	return advanced.NewTriangulator(opts...)
}

// Insert every point in order and return the resulting triangles.
//
// Triangles refer to points by their index in the argument list. Fewer than
// three points yield no triangles.
func Triangulate(points ...Point) ([]Triangle, error) {
	tr := New()
	if _, err := tr.InsertAll(points...); err != nil {
		return nil, err
	}
	return tr.Triangles(), nil
}
