package advanced

// Points are identified by their index in the mesh. Indexes are permanent:
// points are never removed or reordered once inserted.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// A triangle is a triple of point indexes. Vertex order is the order the
// triangle was created in, not a winding. Use Mesh.IsCCW if you need one.
type Triangle struct {
	A, B, C int
}

// Undirected edge between two points. Always construct with NewEdge so that
// U < V, which lets edges be used as map keys.
type Edge struct {
	U, V int
}
