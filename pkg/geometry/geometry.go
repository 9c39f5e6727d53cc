// Package geometry provides the spatial primitives shared by every
// feature record: a tagged geometry variant and an axis-aligned
// bounding box with explicit empty-sentinel semantics.
package geometry

// GeometryType identifies the shape kind of a Geometry.
type GeometryType int

const (
	// GeometryTypePoint is a single position.
	GeometryTypePoint GeometryType = iota + 1
	// GeometryTypeLineString is an ordered sequence of positions forming a path.
	GeometryTypeLineString
	// GeometryTypePolygon is a closed ring (first coordinate == last).
	GeometryTypePolygon
	// GeometryTypeMultiPoint is an unordered collection of positions
	// (e.g., a sounding cluster).
	GeometryTypeMultiPoint
)

// String returns the shape kind name for diagnostics.
func (t GeometryType) String() string {
	switch t {
	case GeometryTypePoint:
		return "Point"
	case GeometryTypeLineString:
		return "LineString"
	case GeometryTypePolygon:
		return "Polygon"
	case GeometryTypeMultiPoint:
		return "MultiPoint"
	default:
		return "Unknown"
	}
}

// Geometry is the spatial representation of a feature.
//
// Coordinates are [x, y] pairs; a third element (elevation, depth) is
// preserved but ignored by envelope computation. The kind tag replaces
// open-ended shape subclassing: all shapes share one coordinate layout
// and differ only in interpretation.
type Geometry struct {
	Type        GeometryType
	Coordinates [][]float64
}

// NewPoint returns a point geometry at (x, y).
func NewPoint(x, y float64) Geometry {
	return Geometry{
		Type:        GeometryTypePoint,
		Coordinates: [][]float64{{x, y}},
	}
}

// NewLineString returns a line geometry through coords in order.
func NewLineString(coords [][]float64) Geometry {
	return Geometry{
		Type:        GeometryTypeLineString,
		Coordinates: coords,
	}
}

// NewPolygon returns a polygon geometry over the given ring coordinates.
// The ring is closed if the caller did not close it.
func NewPolygon(coords [][]float64) Geometry {
	return Geometry{
		Type:        GeometryTypePolygon,
		Coordinates: closeRing(coords),
	}
}

// NewMultiPoint returns a multipoint geometry over coords.
func NewMultiPoint(coords [][]float64) Geometry {
	return Geometry{
		Type:        GeometryTypeMultiPoint,
		Coordinates: coords,
	}
}

// Empty reports whether the geometry has no coordinates.
func (g *Geometry) Empty() bool {
	return len(g.Coordinates) == 0
}

// Envelope returns the minimal box enclosing every coordinate.
// An empty geometry yields the empty sentinel box.
func (g *Geometry) Envelope() Box2D {
	var box Box2D
	for _, coord := range g.Coordinates {
		if len(coord) < 2 {
			continue
		}
		box.ExpandToIncludePoint(coord[0], coord[1])
	}
	return box
}

// closeRing appends the first coordinate when the ring is open.
func closeRing(coords [][]float64) [][]float64 {
	if len(coords) < 3 {
		return coords
	}
	first := coords[0]
	last := coords[len(coords)-1]
	if len(first) < 2 || len(last) < 2 {
		return coords
	}
	if first[0] == last[0] && first[1] == last[1] {
		return coords
	}
	closed := make([][]float64, len(coords)+1)
	copy(closed, coords)
	closed[len(coords)] = []float64{first[0], first[1]}
	return closed
}
