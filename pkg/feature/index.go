package feature

import (
	"github.com/dhconnelly/rtreego"

	"github.com/tilecraft/mapcore/pkg/geometry"
)

// Index provides fast spatial queries over populated features.
//
// Consumers that render or inspect a viewport need the features whose
// envelopes intersect it; a linear scan over millions of records is
// O(N) per query, the R-tree is O(log N). Features are indexed by
// their envelope at insertion time: populate geometries first, then
// insert.
//
// Example:
//
//	idx := feature.NewIndex()
//	for _, f := range features {
//	    if err := idx.Insert(f); err != nil {
//	        continue // feature has no geometry
//	    }
//	}
//	visible := idx.Query(viewport)
//
// Index has no internal locking; either finish inserting before
// querying from other goroutines, or serialize access externally.
type Index struct {
	rtree  *rtreego.Rtree
	count  int
	logger *Logger
}

// IndexOption configures an Index.
type IndexOption func(*Index)

// WithLogger sets the logger used for insert/query diagnostics.
// The default discards all output.
func WithLogger(l *Logger) IndexOption {
	return func(idx *Index) {
		idx.logger = l
	}
}

// NewIndex returns an empty spatial index.
func NewIndex(opts ...IndexOption) *Index {
	idx := &Index{
		rtree:  rtreego.NewTree(2, 25, 50),
		logger: NoopLogger(),
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// indexEntry adapts a feature's envelope to the rtreego.Spatial
// interface.
type indexEntry struct {
	f    *Feature
	rect rtreego.Rect
}

func (e *indexEntry) Bounds() rtreego.Rect {
	return e.rect
}

// Insert adds f to the index keyed by its current envelope. A feature
// whose envelope is the empty sentinel cannot be placed and is
// rejected with ErrEmptyEnvelope. Later geometry additions do not
// re-key an already inserted feature.
func (idx *Index) Insert(f *Feature) error {
	env := f.Envelope()
	if !env.Valid() {
		return &ErrEmptyEnvelope{FeatureID: f.ID()}
	}

	rect, err := rectForBox(env)
	if err != nil {
		return err
	}

	idx.rtree.Insert(&indexEntry{f: f, rect: rect})
	idx.count++
	idx.logger.Debug("indexed feature",
		"id", f.ID(),
		"geometries", f.NumGeometries())
	return nil
}

// Query returns every indexed feature whose envelope intersects
// bounds, in no particular order. An empty sentinel box matches
// nothing.
func (idx *Index) Query(bounds geometry.Box2D) []*Feature {
	if !bounds.Valid() {
		return nil
	}

	rect, err := rectForBox(bounds)
	if err != nil {
		return nil
	}

	spatials := idx.rtree.SearchIntersect(rect)
	features := make([]*Feature, 0, len(spatials))
	for _, s := range spatials {
		features = append(features, s.(*indexEntry).f)
	}
	idx.logger.Debug("spatial query",
		"matched", len(features),
		"indexed", idx.count)
	return features
}

// Len returns the number of indexed features.
func (idx *Index) Len() int {
	return idx.count
}

// degenerateExtent pads zero-width or zero-height envelopes (point
// features, horizontal or vertical lines): rtreego requires strictly
// positive rectangle lengths.
const degenerateExtent = 1e-9

func rectForBox(box geometry.Box2D) (rtreego.Rect, error) {
	point := rtreego.Point{box.MinX, box.MinY}
	lengths := []float64{box.Width(), box.Height()}
	for i := range lengths {
		if lengths[i] <= 0 {
			lengths[i] = degenerateExtent
		}
	}
	return rtreego.NewRect(point, lengths)
}
