package geometry

// Rect is an axis-aligned rectangle in layout units (Y-up).
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// CenterX returns the x coordinate of the rectangle center.
func (r Rect) CenterX() float64 {
	return (r.MinX + r.MaxX) / 2
}

// CenterY returns the y coordinate of the rectangle center.
func (r Rect) CenterY() float64 {
	return (r.MinY + r.MaxY) / 2
}
