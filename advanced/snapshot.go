package advanced

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Read-only copy of a mesh's state.
type Snapshot struct {
	Points    []Point    `yaml:"points"`
	Triangles []Triangle `yaml:"triangles"`
}

// Text panel listing every point and triangle by index.
func (s Snapshot) String() string {
	lines := []string{"<POINTS>"}
	for i, p := range s.Points {
		lines = append(lines, fmt.Sprintf("%d: (%.3f, %.3f)", i, p.X, p.Y))
	}
	lines = append(lines, "", "<TRIANGLES>")
	for i, t := range s.Triangles {
		lines = append(lines, fmt.Sprintf("%d: %s", i, t))
	}
	return strings.Join(lines, "\n")
}

// Triangles and edges are written as flow sequences ([0, 1, 2]), which keeps
// large meshes readable.
func (t Triangle) MarshalYAML() (interface{}, error) {
	return flowIntSequence(t.A, t.B, t.C), nil
}

func (t *Triangle) UnmarshalYAML(node *yaml.Node) error {
	var vertices []int
	if err := node.Decode(&vertices); err != nil {
		return err
	}
	if len(vertices) != 3 {
		return fmt.Errorf("line %d: triangle needs 3 vertices, got %d", node.Line, len(vertices))
	}
	*t = Triangle{vertices[0], vertices[1], vertices[2]}
	return nil
}

func (e Edge) MarshalYAML() (interface{}, error) {
	return flowIntSequence(e.U, e.V), nil
}

func flowIntSequence(values ...int) *yaml.Node {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range values {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: strconv.Itoa(v),
		})
	}
	return node
}
