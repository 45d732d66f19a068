package advanced

// The mesh owns the point sequence and the triangle set. Triangles are kept
// as a flat list with no adjacency; relationships between triangles are
// recomputed from their edges whenever they're needed.
type Mesh struct {
	points    []Point
	triangles []Triangle
}

func NewMesh() *Mesh {
	return &Mesh{}
}

// Append a point and return its permanent index.
func (m *Mesh) AddPoint(p Point) int {
	m.points = append(m.points, p)
	return len(m.points) - 1
}

func (m *Mesh) AddTriangle(t Triangle) {
	m.triangles = append(m.triangles, t)
}

// Remove the first triangle equal to t, preserving the order of the rest.
// Removing a triangle that isn't in the mesh is an invariant violation.
func (m *Mesh) RemoveTriangle(t Triangle) {
	i := m.indexOf(t)
	if i < 0 {
		fatalf("triangle %s is not in the mesh", t)
	}
	m.triangles = append(m.triangles[:i], m.triangles[i+1:]...)
}

func (m *Mesh) HasTriangle(t Triangle) bool {
	return m.indexOf(t) >= 0
}

func (m *Mesh) indexOf(t Triangle) int {
	for i, other := range m.triangles {
		if other == t {
			return i
		}
	}
	return -1
}

func (m *Mesh) PointCount() int {
	return len(m.points)
}

func (m *Mesh) TriangleCount() int {
	return len(m.triangles)
}

func (m *Mesh) Point(i int) Point {
	return m.points[i]
}

// Copy of the points in insertion order.
func (m *Mesh) Points() []Point {
	return append([]Point(nil), m.points...)
}

// Copy of the triangles. Order is the order they were added, with removed
// triangles closed up.
func (m *Mesh) Triangles() []Triangle {
	return append([]Triangle(nil), m.triangles...)
}

func (m *Mesh) Vertices(t Triangle) (a, b, c Point) {
	return m.points[t.A], m.points[t.B], m.points[t.C]
}

func (m *Mesh) Circumcircle(t Triangle, epsilon float64) Circle {
	a, b, c := m.Vertices(t)
	return Circumcircle(a, b, c, epsilon)
}

// Winding is derived on demand, since triangles don't store one.
func (m *Mesh) SignedArea(t Triangle) float64 {
	a, b, c := m.Vertices(t)
	return SignedArea(a, b, c)
}

func (m *Mesh) IsCCW(t Triangle) bool {
	return m.SignedArea(t) > 0
}

func (m *Mesh) IsCW(t Triangle) bool {
	return m.SignedArea(t) < 0
}

func (m *Mesh) Snapshot() Snapshot {
	return Snapshot{
		Points:    m.Points(),
		Triangles: m.Triangles(),
	}
}
