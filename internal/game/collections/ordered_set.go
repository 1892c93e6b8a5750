// Package collections provides the insertion-ordered, duplicate-free set used
// for zone contents and choice lists.
package collections

import (
	"fmt"
	"slices"
)

// Option configures an OrderedSet at construction.
type Option func(*options)

type options struct {
	ignoreDuplicates bool
	threshold        int
	capacity         int
}

// WithIgnoreDuplicates selects the lenient policy: inserting an element that is
// already present is a no-op reported through the boolean result instead of
// ErrDuplicateItem.
func WithIgnoreDuplicates() Option {
	return func(o *options) { o.ignoreDuplicates = true }
}

// WithIndexThreshold overrides DefaultIndexThreshold.
func WithIndexThreshold(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.threshold = n
		}
	}
}

// WithCapacity preallocates room for n elements.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{threshold: DefaultIndexThreshold}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// OrderedSet keeps distinct elements in insertion order.
// It is not safe for concurrent mutation.
type OrderedSet[T any] struct {
	lookup[T]
	ignoreDuplicates bool
}

// New creates an empty set using Go equality.
func New[T comparable](opts ...Option) *OrderedSet[T] {
	return NewWithComparer[T](NewNaturalComparer[T](), opts...)
}

// NewWithComparer creates an empty set using cmp for equality.
func NewWithComparer[T any](cmp Comparer[T], opts ...Option) *OrderedSet[T] {
	o := buildOptions(opts)
	return &OrderedSet[T]{
		lookup: lookup[T]{
			items:     make([]T, 0, o.capacity),
			cmp:       cmp,
			threshold: o.threshold,
		},
		ignoreDuplicates: o.ignoreDuplicates,
	}
}

// FromSlice builds a set from items using Go equality. Under the strict policy
// any duplicate fails the whole build; under the lenient policy the first
// occurrence wins.
func FromSlice[T comparable](items []T, opts ...Option) (*OrderedSet[T], error) {
	return FromSliceWithComparer(items, NewNaturalComparer[T](), opts...)
}

// FromSliceWithComparer is FromSlice with a custom comparer.
func FromSliceWithComparer[T any](items []T, cmp Comparer[T], opts ...Option) (*OrderedSet[T], error) {
	set := NewWithComparer(cmp, append([]Option{WithCapacity(len(items))}, opts...)...)
	for i, item := range items {
		if _, err := set.Insert(item); err != nil {
			return nil, fmt.Errorf("build ordered set at element %d: %w", i, err)
		}
	}
	return set, nil
}

// IgnoresDuplicates reports whether the lenient duplicate policy is active.
func (s *OrderedSet[T]) IgnoresDuplicates() bool {
	return s.ignoreDuplicates
}

// Insert appends item. It returns false when the item was already present
// (an error under the strict policy).
func (s *OrderedSet[T]) Insert(item T) (bool, error) {
	if ok, err := s.admit(item); !ok {
		return false, err
	}
	s.items = append(s.items, item)
	s.indexAdd(item)
	s.promote()
	return true, nil
}

// InsertAt places item at index, shifting later elements. index may equal
// Len() to append.
func (s *OrderedSet[T]) InsertAt(index int, item T) (bool, error) {
	if isNil(item) {
		return false, fmt.Errorf("%w: nil item", ErrInvalidArgument)
	}
	if index < 0 || index > len(s.items) {
		return false, indexError(index, len(s.items))
	}
	if ok, err := s.admit(item); !ok {
		return false, err
	}
	s.items = slices.Insert(s.items, index, item)
	s.indexAdd(item)
	s.promote()
	return true, nil
}

// Replace overwrites the element at index. Replacing an element with an equal
// one is allowed; an item equal to a different element is a duplicate.
func (s *OrderedSet[T]) Replace(index int, item T) (bool, error) {
	if isNil(item) {
		return false, fmt.Errorf("%w: nil item", ErrInvalidArgument)
	}
	if index < 0 || index >= len(s.items) {
		return false, indexError(index, len(s.items))
	}
	if at := s.IndexOf(item); at >= 0 && at != index {
		if s.ignoreDuplicates {
			return false, nil
		}
		return false, fmt.Errorf("%w: element already at index %d", ErrDuplicateItem, at)
	}
	s.indexRemove(s.items[index])
	s.items[index] = item
	s.indexAdd(item)
	return true, nil
}

// Remove deletes the equal element if present.
func (s *OrderedSet[T]) Remove(item T) bool {
	idx := s.IndexOf(item)
	if idx < 0 {
		return false
	}
	s.removeIndex(idx)
	return true
}

// RemoveAt deletes and returns the element at index.
func (s *OrderedSet[T]) RemoveAt(index int) (T, error) {
	if index < 0 || index >= len(s.items) {
		var zero T
		return zero, indexError(index, len(s.items))
	}
	return s.removeIndex(index), nil
}

// Clear empties the set and drops the hash index.
func (s *OrderedSet[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
	s.index = nil
}

// Freeze returns a read-only copy of the current contents.
func (s *OrderedSet[T]) Freeze() *Frozen[T] {
	return NewFrozen(s.Items(), s.cmp, WithIndexThreshold(s.threshold))
}

// Clone returns an independent mutable copy with the same policy.
func (s *OrderedSet[T]) Clone() *OrderedSet[T] {
	clone := &OrderedSet[T]{
		lookup: lookup[T]{
			items:     s.Items(),
			cmp:       s.cmp,
			threshold: s.threshold,
		},
		ignoreDuplicates: s.ignoreDuplicates,
	}
	if s.index != nil {
		clone.index = make(map[uint64][]T, len(s.index))
		for h, bucket := range s.index {
			clone.index[h] = slices.Clone(bucket)
		}
	}
	return clone
}

// UnionWith appends every item not already present. Duplicates are skipped
// regardless of policy.
func (s *OrderedSet[T]) UnionWith(items ...T) error {
	for _, item := range items {
		if isNil(item) {
			return fmt.Errorf("%w: nil item", ErrInvalidArgument)
		}
		if s.Contains(item) {
			continue
		}
		s.items = append(s.items, item)
		s.indexAdd(item)
		s.promote()
	}
	return nil
}

// ExceptWith removes every item present in items.
func (s *OrderedSet[T]) ExceptWith(items ...T) {
	for _, item := range items {
		s.Remove(item)
	}
}

// IntersectWith keeps only the elements also present in items, preserving
// the set's own order.
func (s *OrderedSet[T]) IntersectWith(items ...T) {
	keep := NewWithComparer(s.cmp, WithIgnoreDuplicates(), WithIndexThreshold(s.threshold))
	for _, item := range items {
		if !isNil(item) {
			_, _ = keep.Insert(item)
		}
	}
	for i := len(s.items) - 1; i >= 0; i-- {
		if !keep.Contains(s.items[i]) {
			s.removeIndex(i)
		}
	}
}

// IsSubsetOf is not supported by the ordered set.
func (s *OrderedSet[T]) IsSubsetOf(items ...T) (bool, error) {
	return false, unsupported("IsSubsetOf")
}

// IsProperSubsetOf is not supported by the ordered set.
func (s *OrderedSet[T]) IsProperSubsetOf(items ...T) (bool, error) {
	return false, unsupported("IsProperSubsetOf")
}

// IsSupersetOf is not supported by the ordered set.
func (s *OrderedSet[T]) IsSupersetOf(items ...T) (bool, error) {
	return false, unsupported("IsSupersetOf")
}

// IsProperSupersetOf is not supported by the ordered set.
func (s *OrderedSet[T]) IsProperSupersetOf(items ...T) (bool, error) {
	return false, unsupported("IsProperSupersetOf")
}

// Overlaps is not supported by the ordered set.
func (s *OrderedSet[T]) Overlaps(items ...T) (bool, error) {
	return false, unsupported("Overlaps")
}

// SymmetricExceptWith is not supported by the ordered set.
func (s *OrderedSet[T]) SymmetricExceptWith(items ...T) error {
	return unsupported("SymmetricExceptWith")
}

// admit validates item and applies the duplicate policy.
func (s *OrderedSet[T]) admit(item T) (bool, error) {
	if isNil(item) {
		return false, fmt.Errorf("%w: nil item", ErrInvalidArgument)
	}
	if !s.Contains(item) {
		return true, nil
	}
	if s.ignoreDuplicates {
		return false, nil
	}
	return false, ErrDuplicateItem
}

func (s *OrderedSet[T]) removeIndex(index int) T {
	item := s.items[index]
	s.items = slices.Delete(s.items, index, index+1)
	s.indexRemove(item)
	return item
}
