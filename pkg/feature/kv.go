package feature

// KVIterator walks a feature's (name, value) pairs in schema
// registration order. Obtain one from Feature.Pairs; each call
// restarts from the first attribute.
//
// Iteration is bounded by the smaller of the schema's length and the
// feature's value vector: names registered after the feature was
// constructed are not yielded. The iterator reads the live schema, so
// callers must not register names while iterating.
type KVIterator struct {
	f   *Feature
	pos int
}

// Pairs returns a fresh iterator over the feature's attributes. It
// yields exactly Len() pairs for a feature whose schema has not grown
// since construction.
func (f *Feature) Pairs() *KVIterator {
	return &KVIterator{f: f}
}

// Next returns the next (name, value) pair. ok is false once the
// iteration is exhausted.
func (it *KVIterator) Next() (name string, v Value, ok bool) {
	names := it.f.ctx.Attributes()
	if it.pos >= len(names) || it.pos >= len(it.f.data) {
		return "", Value{}, false
	}
	name = names[it.pos]
	v = it.f.data[it.pos]
	it.pos++
	return name, v, true
}
