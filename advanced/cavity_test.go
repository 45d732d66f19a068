package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func meshWith(points []Point, triangles ...Triangle) *Mesh {
	m := NewMesh()
	for _, p := range points {
		m.AddPoint(p)
	}
	for _, t := range triangles {
		m.AddTriangle(t)
	}
	return m
}

func TestFindCavity_SingleTriangle(t *testing.T) {
	m := meshWith([]Point{{0, 0}, {2, 0}, {1, 2}}, Triangle{0, 1, 2})
	cavity := FindCavity(m, Point{1, 0.5}, DefaultEpsilon)

	assert.Equal(t, []Triangle{{0, 1, 2}}, cavity.Bad)
	assert.Equal(t, []Edge{{0, 1}, {1, 2}, {0, 2}}, cavity.Boundary)
	assert.Equal(t, 1, m.TriangleCount(), "finding a cavity doesn't modify the mesh")
}

func TestFindCavity_OnCircleIsNotBad(t *testing.T) {
	m := meshWith([]Point{{0, 0}, {1, 0}, {0, 1}}, Triangle{0, 1, 2})
	cavity := FindCavity(m, Point{1, 1}, DefaultEpsilon)
	assert.True(t, cavity.Empty())
	assert.Empty(t, cavity.Boundary)
}

func TestFindCavity_SharedEdgeCancels(t *testing.T) {
	// Two triangles sharing the diagonal (1, 2) of a slightly skewed square.
	// A point near the middle is inside both circumcircles.
	m := meshWith(
		[]Point{{0, 0}, {1, 0}, {0, 1}, {1.1, 1.1}},
		Triangle{0, 1, 2},
		Triangle{1, 3, 2},
	)
	cavity := FindCavity(m, Point{0.5, 0.55}, DefaultEpsilon)

	require.Len(t, cavity.Bad, 2)
	assert.Len(t, cavity.Boundary, 4)
	assert.NotContains(t, cavity.Boundary, NewEdge(1, 2), "shared edge is interior to the cavity")
	AssertClosedBoundary(t, cavity.Boundary)
}

func TestFindCavity_OnlySomeTrianglesBad(t *testing.T) {
	m := meshWith(
		[]Point{{0, 0}, {1, 0}, {0, 1}, {1.1, 1.1}},
		Triangle{0, 1, 2},
		Triangle{1, 3, 2},
	)
	// Near the origin, well away from the second triangle's circumcircle
	cavity := FindCavity(m, Point{0.1, 0.05}, DefaultEpsilon)
	assert.Equal(t, []Triangle{{0, 1, 2}}, cavity.Bad)
	assert.Equal(t, []Edge{{0, 1}, {1, 2}, {0, 2}}, cavity.Boundary)
}

func TestFindCavity_DegenerateAlwaysBad(t *testing.T) {
	m := meshWith([]Point{{0, 0}, {1, 0}, {2, 0}}, Triangle{0, 1, 2})
	for _, p := range []Point{{5, 5}, {-100, 3}, {0.5, -0.5}} {
		cavity := FindCavity(m, p, DefaultEpsilon)
		assert.Equal(t, []Triangle{{0, 1, 2}}, cavity.Bad, "collinear triangle should be bad for %v", p)
	}
}

func TestCavityValidate(t *testing.T) {
	validate := func(c Cavity, m *Mesh) (err error) {
		defer func() {
			err = HandleTriangulatePanicRecover(recover())
		}()
		c.validate(m)
		return nil
	}

	m := meshWith([]Point{{0, 0}, {2, 0}, {1, 2}}, Triangle{0, 1, 2})

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validate(FindCavity(m, Point{1, 0.5}, DefaultEpsilon), m))
	})

	t.Run("empty", func(t *testing.T) {
		assert.NoError(t, validate(Cavity{}, m))
	})

	t.Run("missing triangle", func(t *testing.T) {
		err := validate(Cavity{
			Bad:      []Triangle{{0, 1, 3}},
			Boundary: []Edge{{0, 1}, {1, 3}, {0, 3}},
		}, m)
		assert.True(t, IsInvariantViolation(err))
	})

	t.Run("no boundary", func(t *testing.T) {
		err := validate(Cavity{Bad: []Triangle{{0, 1, 2}}}, m)
		assert.True(t, IsInvariantViolation(err))
		assert.Contains(t, err.Error(), "no boundary")
	})
}

func TestRetriangulate(t *testing.T) {
	m := meshWith([]Point{{0, 0}, {2, 0}, {1, 2}}, Triangle{0, 1, 2})
	p := Point{1, 0.5}
	cavity := FindCavity(m, p, DefaultEpsilon)
	newIdx := m.AddPoint(p)

	created := Retriangulate(m, cavity, newIdx)
	expected := []Triangle{{0, 1, 3}, {1, 2, 3}, {0, 2, 3}}
	assert.Equal(t, expected, created)
	assert.Equal(t, expected, m.Triangles())
}

func TestRetriangulate_EmptyCavity(t *testing.T) {
	m := meshWith([]Point{{0, 0}, {1, 0}, {0, 1}}, Triangle{0, 1, 2})
	newIdx := m.AddPoint(Point{1, 1})
	created := Retriangulate(m, Cavity{}, newIdx)
	assert.Empty(t, created)
	assert.Equal(t, []Triangle{{0, 1, 2}}, m.Triangles())
}
