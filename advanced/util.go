package advanced

import (
	"fmt"
	"math"
)

const Tolerance = 1e-6

// Tolerance based float equality. Only used for validation; the predicates
// themselves compare exactly.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func NewEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}
	return Edge{u, v}
}

func (t Triangle) Vertices() [3]int {
	return [3]int{t.A, t.B, t.C}
}

// The three edges of the triangle, in the order (A,B), (B,C), (C,A).
func (t Triangle) Edges() [3]Edge {
	var edges [3]Edge
	vertices := t.Vertices()
	for i := range vertices {
		edges[i] = NewEdge(vertices[i], vertices[CircularIndex(i+1, len(vertices))])
	}
	return edges
}

func (t Triangle) HasVertex(i int) bool {
	return t.A == i || t.B == i || t.C == i
}

func (t Triangle) String() string {
	return fmt.Sprintf("(%d, %d, %d)", t.A, t.B, t.C)
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d, %d)", e.U, e.V)
}
