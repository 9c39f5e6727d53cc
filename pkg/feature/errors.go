package feature

import (
	"fmt"
)

// ErrKeyNotFound indicates an attribute name that is absent from the
// schema, or present but resolving to a slot outside the record's
// value vector (a record built before the schema grew).
type ErrKeyNotFound struct {
	Key string
}

func (e *ErrKeyNotFound) Error() string {
	return fmt.Sprintf("attribute %q not found in schema", e.Key)
}

// ErrIndexOutOfRange indicates geometry access beyond the record's
// geometry collection.
type ErrIndexOutOfRange struct {
	Index int
	Len   int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("geometry index %d out of range (have %d)", e.Index, e.Len)
}

// ErrDuplicateAttribute indicates an attempt to register an attribute
// name that the schema already holds. Re-registration would
// desynchronize records built against the earlier slot layout, so it
// is rejected outright.
type ErrDuplicateAttribute struct {
	Name string
}

func (e *ErrDuplicateAttribute) Error() string {
	return fmt.Sprintf("attribute %q already registered", e.Name)
}

// ErrEmptyEnvelope indicates a feature with no geometry (or only empty
// geometries) offered to the spatial index.
type ErrEmptyEnvelope struct {
	FeatureID int64
}

func (e *ErrEmptyEnvelope) Error() string {
	return fmt.Sprintf("feature %d has an empty envelope and cannot be indexed", e.FeatureID)
}
