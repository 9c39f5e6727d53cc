// Package raster holds the opaque pixel payload a feature may carry
// alongside its vector geometry (e.g., an imagery tile in a hybrid
// vector+raster record).
//
// A Raster is immutable once constructed and is shared by pointer:
// many features may reference the same payload, and it stays alive as
// long as any of them does. Because one tile can back thousands of
// records, large payloads can be stored snappy-compressed and
// decompressed on access.
package raster

import (
	"github.com/golang/snappy"

	"github.com/tilecraft/mapcore/pkg/geometry"
)

// Raster is an opaque, immutable pixel-grid payload with its
// geographic extent.
type Raster struct {
	data       []byte
	width      int
	height     int
	ext        geometry.Box2D
	compressed bool
	rawLen     int
}

// New returns a raster holding data as-is. The caller must not modify
// data after handing it over.
func New(data []byte, width, height int, ext geometry.Box2D) *Raster {
	return &Raster{
		data:   data,
		width:  width,
		height: height,
		ext:    ext,
		rawLen: len(data),
	}
}

// NewCompressed returns a raster that stores data snappy-compressed.
// Bytes decompresses on each call, trading CPU for resident memory on
// payloads shared across many features.
func NewCompressed(data []byte, width, height int, ext geometry.Box2D) *Raster {
	return &Raster{
		data:       snappy.Encode(nil, data),
		width:      width,
		height:     height,
		ext:        ext,
		compressed: true,
		rawLen:     len(data),
	}
}

// Bytes returns the pixel payload, decompressing if necessary. The
// returned slice must be treated as read-only for uncompressed
// rasters; compressed rasters return a fresh copy.
func (r *Raster) Bytes() ([]byte, error) {
	if !r.compressed {
		return r.data, nil
	}
	return snappy.Decode(nil, r.data)
}

// Width returns the pixel width.
func (r *Raster) Width() int {
	return r.width
}

// Height returns the pixel height.
func (r *Raster) Height() int {
	return r.height
}

// Ext returns the geographic extent the pixels cover.
func (r *Raster) Ext() geometry.Box2D {
	return r.ext
}

// Len returns the uncompressed payload length in bytes.
func (r *Raster) Len() int {
	return r.rawLen
}

// Compressed reports whether the payload is stored compressed.
func (r *Raster) Compressed() bool {
	return r.compressed
}
