package advanced

import (
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/osuushi/delaunay/dbg"
	"github.com/pkg/errors"
)

// Padding around the mesh so that labels near the edge stay visible
const drawPadding = 40

// Largest width or height Draw will allocate, in pixels
const MaxDrawSize = 8192

type DrawOptions struct {
	// Pixels per unit. Defaults to 500, which suits points in the unit square.
	Scale float64
	// Label each triangle with a readable name at its centroid. Useful when
	// comparing frames by eye.
	NameTriangles bool
}

// Render a mesh. If step is non-nil, the frame shows that insertion: the mesh
// in grey, the bad triangles in red, the cavity boundary in magenta and the
// new fan in blue. Otherwise the mesh is drawn in black.
//
// Fails if a coordinate is not finite, or if the mesh at this scale would be
// larger than MaxDrawSize in either direction.
func Draw(snapshot Snapshot, step *Step, opts DrawOptions) (*gg.Context, error) {
	scale := opts.Scale
	if scale <= 0 {
		scale = 500
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range snapshot.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(snapshot.Points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}

	for _, v := range []float64{minX, minY, maxX, maxY} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, errors.New("cannot draw a mesh with non-finite coordinates")
		}
	}
	extentX := scale*(maxX-minX) + drawPadding*2
	extentY := scale*(maxY-minY) + drawPadding*2
	if !(extentX <= MaxDrawSize && extentY <= MaxDrawSize) {
		return nil, errors.Errorf("drawing would be %.0fx%.0f pixels, over the %d pixel limit; lower the scale", extentX, extentY, MaxDrawSize)
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	points := snapshot.Points
	strokeTriangle := func(t Triangle) {
		a, b, cc := points[t.A], points[t.B], points[t.C]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(cc.X, cc.Y)
		c.ClosePath()
		c.Stroke()
	}

	if step == nil {
		c.SetRGB(0, 0, 0)
		c.SetLineWidth(1)
		for _, t := range snapshot.Triangles {
			strokeTriangle(t)
		}
	} else {
		c.SetRGB(0.83, 0.83, 0.83)
		c.SetLineWidth(1)
		for _, t := range snapshot.Triangles {
			strokeTriangle(t)
		}
		c.SetRGB(1, 0, 0)
		c.SetLineWidth(2)
		for _, t := range step.Bad {
			strokeTriangle(t)
		}
		c.SetRGB(1, 0, 1)
		c.SetLineWidth(3)
		for _, e := range step.Boundary {
			u, v := points[e.U], points[e.V]
			c.DrawLine(u.X, u.Y, v.X, v.Y)
			c.Stroke()
		}
		c.SetRGB(0, 0, 1)
		c.SetLineWidth(2)
		for _, t := range step.Created {
			strokeTriangle(t)
		}
	}

	// Text has to be drawn in device space, or it comes out flipped
	drawLabel := func(s string, x, y float64) {
		x, y = c.TransformPoint(x, y)
		c.Push()
		c.Identity()
		c.DrawStringAnchored(s, x+4, y-4, 0, 0)
		c.Pop()
	}

	for i, p := range points {
		c.SetRGB(0, 0, 0)
		x, y := c.TransformPoint(p.X, p.Y)
		c.Push()
		c.Identity()
		c.DrawCircle(x, y, 3)
		c.Fill()
		c.Pop()
		c.SetRGB(0, 0, 1)
		drawLabel(strconv.Itoa(i), p.X, p.Y)
	}

	if opts.NameTriangles {
		c.SetRGB(0.4, 0.4, 0.4)
		for _, t := range snapshot.Triangles {
			a, b, cc := points[t.A], points[t.B], points[t.C]
			drawLabel(dbg.Name(t), (a.X+b.X+cc.X)/3, (a.Y+b.Y+cc.Y)/3)
		}
	}
	return c, nil
}
