package geometry

// Box2D is an axis-aligned bounding rectangle in map coordinates.
//
// The zero value is the empty sentinel: it encloses nothing and reports
// Valid() == false. Callers must check Valid() before treating a box as
// a usable extent - an empty box is not a zero-area box at the origin.
type Box2D struct {
	MinX, MinY float64
	MaxX, MaxY float64

	valid bool
}

// NewBox2D returns an initialized box covering the given extent.
// Coordinates are normalized so Min <= Max on both axes.
func NewBox2D(minx, miny, maxx, maxy float64) Box2D {
	var b Box2D
	b.Init(minx, miny, maxx, maxy)
	return b
}

// Valid reports whether the box has been initialized with an extent.
func (b *Box2D) Valid() bool {
	return b.valid
}

// Init sets the box to the given extent, normalizing min/max order.
func (b *Box2D) Init(minx, miny, maxx, maxy float64) {
	if minx > maxx {
		minx, maxx = maxx, minx
	}
	if miny > maxy {
		miny, maxy = maxy, miny
	}
	b.MinX, b.MinY = minx, miny
	b.MaxX, b.MaxY = maxx, maxy
	b.valid = true
}

// ExpandToInclude grows the box to cover other.
// Expanding an empty box adopts other; expanding by an empty box is a no-op.
func (b *Box2D) ExpandToInclude(other Box2D) {
	if !other.valid {
		return
	}
	if !b.valid {
		*b = other
		return
	}
	if other.MinX < b.MinX {
		b.MinX = other.MinX
	}
	if other.MinY < b.MinY {
		b.MinY = other.MinY
	}
	if other.MaxX > b.MaxX {
		b.MaxX = other.MaxX
	}
	if other.MaxY > b.MaxY {
		b.MaxY = other.MaxY
	}
}

// ExpandToIncludePoint grows the box to cover the point (x, y).
func (b *Box2D) ExpandToIncludePoint(x, y float64) {
	if !b.valid {
		b.Init(x, y, x, y)
		return
	}
	if x < b.MinX {
		b.MinX = x
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if y > b.MaxY {
		b.MaxY = y
	}
}

// Width returns the horizontal extent, 0 for an empty box.
func (b *Box2D) Width() float64 {
	if !b.valid {
		return 0
	}
	return b.MaxX - b.MinX
}

// Height returns the vertical extent, 0 for an empty box.
func (b *Box2D) Height() float64 {
	if !b.valid {
		return 0
	}
	return b.MaxY - b.MinY
}

// Center returns the midpoint of the box. Only meaningful when Valid().
func (b *Box2D) Center() (x, y float64) {
	return (b.MinX + b.MaxX) / 2, (b.MinY + b.MaxY) / 2
}

// Intersects reports whether the two boxes share any area or edge.
// An empty box intersects nothing.
func (b *Box2D) Intersects(other Box2D) bool {
	if !b.valid || !other.valid {
		return false
	}
	return b.MinX <= other.MaxX && b.MaxX >= other.MinX &&
		b.MinY <= other.MaxY && b.MaxY >= other.MinY
}

// Contains reports whether the point (x, y) lies within the box.
func (b *Box2D) Contains(x, y float64) bool {
	if !b.valid {
		return false
	}
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}
