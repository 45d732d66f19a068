package advanced

import (
	"embed"
	"log"
	"math"
	"math/rand"
)

// Point set fixtures are SVG files in the fixtures/ directory, loaded by name
// sans extension. The first three points (the polygon) are the seed triangle,
// and every later point lies strictly inside it. If anything goes wrong, the
// test binary dies.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	points, err := ParsePointsSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return points
}

// A seed triangle enclosing the unit square
func UnitSquareSeed() []Point {
	return []Point{{-1, -1}, {4, -1}, {-1, 4}}
}

// Seed triangle followed by n pseudo-random points in the unit square. The
// generator is seeded, so the same n always gives the same points.
func RandomPoints(n int, seed int64) []Point {
	rng := rand.New(rand.NewSource(seed))
	points := UnitSquareSeed()
	for i := 0; i < n; i++ {
		points = append(points, Point{rng.Float64(), rng.Float64()})
	}
	return points
}

// Points spiralling out from the center of the unit square, which makes the
// cavities grow and shrink a lot between insertions.
func SpiralPoints(n int) []Point {
	points := UnitSquareSeed()
	for i := 0; i < n; i++ {
		angle := float64(i) * 0.7
		radius := 0.45 * float64(i+1) / float64(n)
		points = append(points, Point{
			X: 0.5 + radius*math.Cos(angle),
			Y: 0.5 + radius*math.Sin(angle),
		})
	}
	return points
}
