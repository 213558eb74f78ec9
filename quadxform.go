package quadxform

import "image/color"

// Vec2 is a 2D point. Quad positions are in clip space (x right, y up,
// [-1, 1] spans the window); texture coordinates are normalized.
type Vec2 struct {
	X, Y float64
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// toRGBA premultiplies and converts to an 8-bit color.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// quadLayout is shared by positions and texture coordinates: two triangles,
// (0,0)-(0,1)-(1,0) and (1,0)-(0,1)-(1,1).
var quadLayout = [6]Vec2{
	{0, 0},
	{0, 1},
	{1, 0},
	{1, 0},
	{0, 1},
	{1, 1},
}

// QuadVertexCount is the number of vertices in the quad.
const QuadVertexCount = len(quadLayout)

// QuadPositions returns a fresh copy of the startup vertex positions.
func QuadPositions() []Vec2 {
	out := make([]Vec2, len(quadLayout))
	copy(out, quadLayout[:])
	return out
}

// QuadTexCoords returns a fresh copy of the per-vertex texture coordinates.
func QuadTexCoords() []Vec2 {
	return QuadPositions()
}

// Bounds returns the axis-aligned bounding box of points.
func Bounds(points []Vec2) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
