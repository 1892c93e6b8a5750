package collections

import (
	"iter"
	"slices"
)

// DefaultIndexThreshold is the element count above which a set builds its
// hash index. Below it, membership is a linear scan.
const DefaultIndexThreshold = 16

// lookup holds the ordered elements and the optional hash index shared by the
// mutable and frozen sets. items is the source of truth; index, when present,
// mirrors its membership exactly.
type lookup[T any] struct {
	items     []T
	cmp       Comparer[T]
	index     map[uint64][]T
	threshold int
}

// Len returns the number of elements.
func (l *lookup[T]) Len() int {
	return len(l.items)
}

// At returns the element at index.
func (l *lookup[T]) At(index int) (T, error) {
	if index < 0 || index >= len(l.items) {
		var zero T
		return zero, indexError(index, len(l.items))
	}
	return l.items[index], nil
}

// Contains reports whether an equal element is present.
func (l *lookup[T]) Contains(item T) bool {
	if l.index != nil {
		return l.indexed(item)
	}
	return l.scan(item) >= 0
}

// IndexOf returns the position of the equal element, or -1.
func (l *lookup[T]) IndexOf(item T) int {
	if l.index != nil && !l.indexed(item) {
		return -1
	}
	return l.scan(item)
}

// Items returns a copy of the elements in order.
func (l *lookup[T]) Items() []T {
	return slices.Clone(l.items)
}

// All iterates over a snapshot of the elements, so the set may be mutated
// from inside the loop body.
func (l *lookup[T]) All() iter.Seq2[int, T] {
	snapshot := slices.Clone(l.items)
	return func(yield func(int, T) bool) {
		for i, item := range snapshot {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Indexed reports whether the hash index has been built.
func (l *lookup[T]) Indexed() bool {
	return l.index != nil
}

func (l *lookup[T]) scan(item T) int {
	for i, existing := range l.items {
		if l.cmp.Equal(existing, item) {
			return i
		}
	}
	return -1
}

func (l *lookup[T]) indexed(item T) bool {
	for _, existing := range l.index[l.cmp.Hash(item)] {
		if l.cmp.Equal(existing, item) {
			return true
		}
	}
	return false
}

func (l *lookup[T]) indexAdd(item T) {
	if l.index == nil {
		return
	}
	h := l.cmp.Hash(item)
	l.index[h] = append(l.index[h], item)
}

func (l *lookup[T]) indexRemove(item T) {
	if l.index == nil {
		return
	}
	h := l.cmp.Hash(item)
	bucket := l.index[h]
	for i, existing := range bucket {
		if l.cmp.Equal(existing, item) {
			bucket = slices.Delete(bucket, i, i+1)
			break
		}
	}
	if len(bucket) == 0 {
		delete(l.index, h)
		return
	}
	l.index[h] = bucket
}

// promote builds the index once the element count passes the threshold.
// The index is kept from then on, even if the set shrinks again.
func (l *lookup[T]) promote() {
	if l.index != nil || len(l.items) <= l.threshold {
		return
	}
	l.index = make(map[uint64][]T, len(l.items))
	for _, item := range l.items {
		h := l.cmp.Hash(item)
		l.index[h] = append(l.index[h], item)
	}
}
