package layout

// Pixel is a pixel x or y coordinate, or a pixel extent. It is a plain
// float64 alias, matching spec.md's "pixel x-coordinate" baseline wording
// without forcing every caller that already works in float64 (editengine's
// Metrics interface, in particular) to insert conversions.
type Pixel = float64

// Point is a pixel-space position, used for cursor tracking during dock
// drags and for glyph placement.
type Point struct {
	X, Y Pixel
}

// Add returns p offset by dx, dy.
func (p Point) Add(dx, dy Pixel) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Sub returns the vector from other to p.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Rect is an axis-aligned pixel rectangle, top-left anchored.
type Rect struct {
	X, Y, W, H Pixel
}

// Contains reports whether p lies within r, right/bottom-exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// IsZero reports whether r is the zero rectangle.
func (r Rect) IsZero() bool {
	return r == Rect{}
}
