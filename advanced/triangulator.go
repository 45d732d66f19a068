package advanced

import (
	"go.uber.org/zap"
)

type State int

const (
	// No points
	StateEmpty State = iota
	// One or two points; no triangle is possible yet
	StateSeeding
	// Exactly three points, forming the seed triangle
	StateSeeded
	// Four or more points; insertions go through the cavity
	StateTriangulated
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "EMPTY"
	case StateSeeding:
		return "SEEDING"
	case StateSeeded:
		return "SEEDED"
	case StateTriangulated:
		return "TRIANGULATED"
	}
	return "UNKNOWN"
}

func stateForPointCount(n int) State {
	switch {
	case n == 0:
		return StateEmpty
	case n < 3:
		return StateSeeding
	case n == 3:
		return StateSeeded
	}
	return StateTriangulated
}

// Record of a single insertion. Bad and Boundary are only populated by general
// insertions; they describe the cavity as it was before the mesh was repaired.
type Step struct {
	Index    int
	Point    Point
	State    State
	Bad      []Triangle
	Boundary []Edge
	Created  []Triangle
}

// Incremental Bowyer-Watson triangulator. The first three points form the seed
// triangle, which is accepted as is. Each later point is inserted by removing
// every triangle whose circumcircle contains it and fanning the hole from the
// new point.
//
// Points outside the seed triangle are accepted, but the Delaunay property is
// only guaranteed for points inside it.
//
// A Triangulator is not safe for concurrent use.
type Triangulator struct {
	mesh    *Mesh
	epsilon float64
	logger  *zap.Logger
}

type Option func(*Triangulator)

func WithLogger(logger *zap.Logger) Option {
	return func(tr *Triangulator) {
		tr.logger = logger
	}
}

// Set the threshold below which the circumcircle denominator is treated as
// zero. Defaults to DefaultEpsilon.
func WithEpsilon(epsilon float64) Option {
	return func(tr *Triangulator) {
		tr.epsilon = epsilon
	}
}

func NewTriangulator(opts ...Option) *Triangulator {
	tr := &Triangulator{
		mesh:    NewMesh(),
		epsilon: DefaultEpsilon,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(tr)
	}
	return tr
}

// Insert a point. If this returns an error, the mesh is unchanged.
func (tr *Triangulator) Insert(p Point) (step Step, err error) {
	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			step = Step{}
			err = recoveredErr
			tr.logger.Error("insertion failed", zap.Float64("x", p.X), zap.Float64("y", p.Y), zap.Error(err))
		}
	}()

	switch n := tr.mesh.PointCount(); {
	case n < 2:
		step.Index = tr.mesh.AddPoint(p)
	case n == 2:
		step.Index = tr.mesh.AddPoint(p)
		seed := Triangle{0, 1, 2}
		tr.mesh.AddTriangle(seed)
		step.Created = []Triangle{seed}
	default:
		cavity := FindCavity(tr.mesh, p, tr.epsilon)
		cavity.validate(tr.mesh)
		step.Index = tr.mesh.AddPoint(p)
		step.Bad = cavity.Bad
		step.Boundary = cavity.Boundary
		step.Created = Retriangulate(tr.mesh, cavity, step.Index)
	}
	step.Point = p
	step.State = tr.State()

	tr.logger.Debug("inserted point",
		zap.Int("index", step.Index),
		zap.Stringer("state", step.State),
		zap.Int("bad", len(step.Bad)),
		zap.Int("boundary", len(step.Boundary)),
		zap.Int("triangles", tr.mesh.TriangleCount()),
	)
	if len(step.Bad) == 0 && step.State == StateTriangulated {
		tr.logger.Debug("point is not inside any circumcircle; left isolated", zap.Int("index", step.Index))
	}
	return step, nil
}

// Insert points in order, stopping at the first failure. The steps for every
// successful insertion are returned either way.
func (tr *Triangulator) InsertAll(points ...Point) ([]Step, error) {
	steps := make([]Step, 0, len(points))
	for _, p := range points {
		step, err := tr.Insert(p)
		if err != nil {
			return steps, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func (tr *Triangulator) State() State {
	return stateForPointCount(tr.mesh.PointCount())
}

func (tr *Triangulator) PointCount() int {
	return tr.mesh.PointCount()
}

func (tr *Triangulator) TriangleCount() int {
	return tr.mesh.TriangleCount()
}

func (tr *Triangulator) Points() []Point {
	return tr.mesh.Points()
}

func (tr *Triangulator) Triangles() []Triangle {
	return tr.mesh.Triangles()
}

func (tr *Triangulator) Snapshot() Snapshot {
	return tr.mesh.Snapshot()
}
