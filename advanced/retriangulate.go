package advanced

// Replace the cavity's bad triangles with a fan from the new point to each
// boundary edge, and return the triangles that were added.
//
// No attempt is made to give the new triangles a consistent winding.
func Retriangulate(m *Mesh, cavity Cavity, newIdx int) []Triangle {
	for _, t := range cavity.Bad {
		m.RemoveTriangle(t)
	}

	created := make([]Triangle, 0, len(cavity.Boundary))
	for _, e := range cavity.Boundary {
		t := Triangle{e.U, e.V, newIdx}
		m.AddTriangle(t)
		created = append(created, t)
	}
	return created
}
