package feature

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genDistinctNames produces a slice of distinct attribute names.
func genDistinctNames() gopter.Gen {
	return gen.SliceOf(gen.Identifier()).Map(func(names []string) []string {
		seen := make(map[string]bool)
		distinct := make([]string, 0, len(names))
		for _, name := range names {
			if !seen[name] {
				seen[name] = true
				distinct = append(distinct, name)
			}
		}
		return distinct
	})
}

// TestProperty_SchemaSlotAssignment validates that for any sequence of
// distinct registrations, the slot count equals the sequence length and
// iteration yields the names in registration order with dense slots 0..N-1.
func TestProperty_SchemaSlotAssignment(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("registration assigns dense slots in order", prop.ForAll(
		func(names []string) bool {
			ctx := NewContext()
			for _, name := range names {
				if err := ctx.Push(name); err != nil {
					return false
				}
			}

			if ctx.Len() != len(names) {
				return false
			}

			for i, name := range ctx.Attributes() {
				if name != names[i] {
					return false
				}
				slot, ok := ctx.Slot(name)
				if !ok || slot != i {
					return false
				}
			}
			return true
		},
		genDistinctNames(),
	))

	properties.Property("put/get round-trips for every registered name", prop.ForAll(
		func(names []string) bool {
			ctx := NewContext()
			for _, name := range names {
				if err := ctx.Push(name); err != nil {
					return false
				}
			}

			f := New(ctx, 1)
			for i, name := range names {
				if err := f.Put(name, IntValue(int64(i))); err != nil {
					return false
				}
			}
			for i, name := range names {
				v, err := f.Get(name)
				if err != nil || !v.Equal(IntValue(int64(i))) {
					return false
				}
			}
			return true
		},
		genDistinctNames(),
	))

	properties.Property("records from one schema are independently mutable", prop.ForAll(
		func(names []string) bool {
			if len(names) == 0 {
				return true
			}
			ctx := NewContext()
			for _, name := range names {
				if err := ctx.Push(name); err != nil {
					return false
				}
			}

			r1 := New(ctx, 1)
			r2 := New(ctx, 2)
			for i, name := range names {
				if err := r1.Put(name, TextValue(fmt.Sprintf("r1-%d", i))); err != nil {
					return false
				}
			}

			// r2 must still hold the null default in every slot
			for _, name := range names {
				v, err := r2.Get(name)
				if err != nil || !v.IsNull() {
					return false
				}
			}
			return true
		},
		genDistinctNames(),
	))

	properties.TestingRun(t)
}
