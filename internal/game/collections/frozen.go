package collections

// Frozen is a read-only ordered set snapshot.
type Frozen[T any] struct {
	lookup[T]
}

// NewFrozen takes ownership of items without copying them. The caller must not
// modify the slice afterward. items is assumed duplicate-free under cmp.
func NewFrozen[T any](items []T, cmp Comparer[T], opts ...Option) *Frozen[T] {
	o := buildOptions(opts)
	f := &Frozen[T]{
		lookup: lookup[T]{
			items:     items,
			cmp:       cmp,
			threshold: o.threshold,
		},
	}
	f.promote()
	return f
}

// Thaw returns a mutable copy of the snapshot using the strict policy.
func (f *Frozen[T]) Thaw(opts ...Option) *OrderedSet[T] {
	set := NewWithComparer(f.cmp, append([]Option{WithIndexThreshold(f.threshold), WithCapacity(len(f.items))}, opts...)...)
	for _, item := range f.items {
		set.items = append(set.items, item)
		set.indexAdd(item)
		set.promote()
	}
	return set
}
