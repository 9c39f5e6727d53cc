// Package feature implements the in-memory record format used across
// the map pipeline: a shared attribute schema (Context), per-record
// dense value vectors, owned geometries and an optional shared raster.
//
// Many features in a dataset share one attribute layout. Instead of a
// full name->value map per record, the layout lives once in a Context
// (name -> slot index) and every record carries only a dense value
// vector indexed by slot. Producers build one Context, register every
// column name, then construct records against it:
//
//	ctx := feature.NewContext()
//	ctx.Push("name")
//	ctx.Push("pop")
//
//	f := feature.New(ctx, 1)
//	f.Put("name", feature.TextValue("Paris"))
//	f.Put("pop", feature.IntValue(2000000))
//
// All registration must complete before dependent records are
// constructed: a record sizes its value vector from the Context at
// construction time and never resizes.
package feature

// Context is the shared, append-only mapping from attribute name to a
// stable zero-based slot index. Slots are assigned densely in
// registration order and never reused or reordered.
//
// A Context is read-shared by every feature built against it. It has
// no internal locking: finish registration on one goroutine before
// fanning records out to others.
type Context struct {
	slots map[string]int
	names []string
}

// NewContext returns an empty schema.
func NewContext() *Context {
	return &Context{
		slots: make(map[string]int),
	}
}

// Push registers name with the next sequential slot index.
// Registering a name twice returns ErrDuplicateAttribute and leaves
// the schema unchanged.
//
// Push must not be called once any Feature has been constructed
// against this Context: such records are sized to the slot count they
// observed and cannot reach later slots.
func (c *Context) Push(name string) error {
	if _, ok := c.slots[name]; ok {
		return &ErrDuplicateAttribute{Name: name}
	}
	c.slots[name] = len(c.names)
	c.names = append(c.names, name)
	return nil
}

// Len returns the number of registered attribute names.
func (c *Context) Len() int {
	return len(c.names)
}

// Slot returns the slot index for name and whether it is registered.
func (c *Context) Slot(name string) (int, bool) {
	slot, ok := c.slots[name]
	return slot, ok
}

// Attributes returns the registered names in registration order.
// The returned slice is the live backing store: callers must not
// modify it or Push while ranging over it.
func (c *Context) Attributes() []string {
	return c.names
}
