package layout

// Point is a position in pixel coordinates, y growing downwards.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in pixel coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the right edge x coordinate.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the bottom edge y coordinate.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Contains reports whether a point lies within the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Translate returns the rectangle moved by (dx,dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}
