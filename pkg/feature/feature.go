package feature

import (
	"strings"

	"github.com/tilecraft/mapcore/pkg/geometry"
	"github.com/tilecraft/mapcore/pkg/raster"
)

// Feature is one geographic entity: an identifier, a dense vector of
// attribute values laid out by a shared Context, an ordered collection
// of owned geometries, and an optional shared raster payload.
//
// A Feature exclusively owns its value vector and geometries; it
// shares the Context and the raster with other holders. Its mutable
// state carries no internal locking and must not be written from more
// than one goroutine at a time.
type Feature struct {
	id     int64
	ctx    *Context
	data   []Value
	geoms  []geometry.Geometry
	raster *raster.Raster
}

// New constructs a feature against ctx with the given identifier.
// The value vector is sized to ctx.Len() as observed now, every slot
// null. The schema reference is fixed for the feature's lifetime.
func New(ctx *Context, id int64) *Feature {
	return &Feature{
		id:   id,
		ctx:  ctx,
		data: make([]Value, ctx.Len()),
	}
}

// ID returns the feature identifier.
func (f *Feature) ID() int64 {
	return f.id
}

// SetID replaces the feature identifier. Uniqueness, if required, is a
// dataset-level invariant, not enforced here.
func (f *Feature) SetID(id int64) {
	f.id = id
}

// Context returns the schema this feature was built against.
func (f *Feature) Context() *Context {
	return f.ctx
}

// Put stores v in the slot registered for name. It returns
// ErrKeyNotFound when name is absent from the schema, or when the
// schema grew after this feature was constructed and the slot lies
// beyond the feature's value vector. A failed Put has no effect.
func (f *Feature) Put(name string, v Value) error {
	slot, ok := f.ctx.Slot(name)
	if !ok || slot >= len(f.data) {
		return &ErrKeyNotFound{Key: name}
	}
	f.data[slot] = v
	return nil
}

// Has reports whether name is registered in the schema. Has true does
// not guarantee Get/Put will succeed: the schema may have grown past
// this feature's value vector since construction.
func (f *Feature) Has(name string) bool {
	_, ok := f.ctx.Slot(name)
	return ok
}

// Get returns the value stored for name, failing with ErrKeyNotFound
// under the same conditions as Put.
func (f *Feature) Get(name string) (Value, error) {
	slot, ok := f.ctx.Slot(name)
	if !ok || slot >= len(f.data) {
		return Value{}, &ErrKeyNotFound{Key: name}
	}
	return f.data[slot], nil
}

// Len returns the length of the value vector. This is the schema's
// slot count at construction time, which can be smaller than the
// schema's current Len if the schema grew afterwards.
func (f *Feature) Len() int {
	return len(f.data)
}

// AddGeometry appends geom to the feature's geometry collection. The
// feature takes ownership.
func (f *Feature) AddGeometry(geom geometry.Geometry) {
	f.geoms = append(f.geoms, geom)
}

// NumGeometries returns the number of owned geometries.
func (f *Feature) NumGeometries() int {
	return len(f.geoms)
}

// GeometryAt returns the i-th geometry in insertion order, or
// ErrIndexOutOfRange when i is out of bounds.
func (f *Feature) GeometryAt(i int) (*geometry.Geometry, error) {
	if i < 0 || i >= len(f.geoms) {
		return nil, &ErrIndexOutOfRange{Index: i, Len: len(f.geoms)}
	}
	return &f.geoms[i], nil
}

// Envelope returns the union of every owned geometry's envelope.
// With zero geometries the result is the empty sentinel box; callers
// must check Valid() before using it.
func (f *Feature) Envelope() geometry.Box2D {
	var result geometry.Box2D
	for i := range f.geoms {
		result.ExpandToInclude(f.geoms[i].Envelope())
	}
	return result
}

// SetRaster attaches a shared raster payload. A feature carries at
// most one; the raster is treated as immutable once attached.
func (f *Feature) SetRaster(r *raster.Raster) {
	f.raster = r
}

// Raster returns the attached raster, or nil when none is attached.
func (f *Feature) Raster() *raster.Raster {
	return f.raster
}

// String renders the feature's attributes as newline-separated
// "name: value" lines in schema registration order, bounded by the
// record's value range. Diagnostics only; not a stable format.
func (f *Feature) String() string {
	var sb strings.Builder
	sb.WriteString("Feature (\n")
	for _, name := range f.ctx.Attributes() {
		slot, _ := f.ctx.Slot(name)
		if slot >= len(f.data) {
			continue
		}
		sb.WriteString("  ")
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(f.data[slot].String())
		sb.WriteString("\n")
	}
	sb.WriteString(")")
	return sb.String()
}
