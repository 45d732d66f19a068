package advanced

// This contains no actual tests. It is just a helper for checking meshes and
// cavities.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a mesh is a valid Delaunay triangulation of its seed
// triangle. The rules are:
// 1. Every triangle has three distinct vertices that exist in the mesh.
// 2. No point lies strictly inside the circumcircle of a triangle it isn't a vertex of.
// 3. Every point is a vertex of some triangle.
// 4. The areas of the triangles sum to the area of the seed triangle.
//
// Rules 3 and 4 only hold when every point after the seed falls inside the
// seed triangle.
func AssertDelaunay(t *testing.T, m *Mesh) {
	used := make(map[int]struct{})
	var totalArea float64
	for _, tri := range m.triangles {
		require.True(t, tri.A != tri.B && tri.B != tri.C && tri.C != tri.A, "triangle %s repeats a vertex", tri)
		for _, v := range tri.Vertices() {
			require.True(t, v >= 0 && v < m.PointCount(), "triangle %s refers to missing point %d", tri, v)
			used[v] = struct{}{}
		}
		totalArea += math.Abs(m.SignedArea(tri))

		circle := m.Circumcircle(tri, DefaultEpsilon)
		require.False(t, circle.Degenerate, "triangle %s is degenerate", tri)
		for i, p := range m.points {
			if tri.HasVertex(i) {
				continue
			}
			// Allow for rounding when a point is (nearly) on the circle
			distance := circle.Center.DistanceSquared(p)
			assert.False(t, distance < circle.RadiusSquared && !Equal(distance, circle.RadiusSquared),
				"point %d %v is inside the circumcircle of %s", i, p, tri)
		}
	}

	assert.Len(t, used, m.PointCount(), "every point should be a vertex")
	if m.PointCount() >= 3 {
		seedArea := math.Abs(SignedArea(m.points[0], m.points[1], m.points[2]))
		assert.InDelta(t, seedArea, totalArea, Tolerance, "triangle areas should sum to the seed triangle's area")
	}
}

// Helper to check that a cavity boundary is a single closed loop. Every vertex
// on the boundary must have exactly two boundary edges, and walking from any
// edge must visit all of them before getting back to the start.
func AssertClosedBoundary(t *testing.T, boundary []Edge) {
	require.GreaterOrEqual(t, len(boundary), 3, "boundary is too short to be a loop")

	neighbors := make(map[int][]int)
	for _, e := range boundary {
		neighbors[e.U] = append(neighbors[e.U], e.V)
		neighbors[e.V] = append(neighbors[e.V], e.U)
	}
	for v, ns := range neighbors {
		require.Len(t, ns, 2, "boundary vertex %d should have two boundary edges", v)
	}

	start := boundary[0].U
	previous, current := start, boundary[0].V
	visited := 1
	for current != start {
		ns := neighbors[current]
		next := ns[0]
		if next == previous {
			next = ns[1]
		}
		previous, current = current, next
		visited++
		require.LessOrEqual(t, visited, len(boundary), "boundary walk did not close")
	}
	assert.Equal(t, len(boundary), visited, "boundary should be a single loop")
}
