package collections

import "hash/maphash"

// Comparer defines element equality for an ordered set.
// Equal(a, b) must imply Hash(a) == Hash(b).
type Comparer[T any] interface {
	Equal(a, b T) bool
	Hash(v T) uint64
}

// NaturalComparer compares with == and hashes with maphash.
type NaturalComparer[T comparable] struct {
	seed maphash.Seed
}

// NewNaturalComparer returns a comparer using Go equality.
func NewNaturalComparer[T comparable]() NaturalComparer[T] {
	return NaturalComparer[T]{seed: maphash.MakeSeed()}
}

func (c NaturalComparer[T]) Equal(a, b T) bool { return a == b }

func (c NaturalComparer[T]) Hash(v T) uint64 { return maphash.Comparable(c.seed, v) }

// KeyComparer derives equality from a comparable key, e.g. an entity id.
type KeyComparer[T any, K comparable] struct {
	key  func(T) K
	seed maphash.Seed
}

// ByKey returns a comparer treating two elements as equal when their keys are.
func ByKey[T any, K comparable](key func(T) K) KeyComparer[T, K] {
	return KeyComparer[T, K]{key: key, seed: maphash.MakeSeed()}
}

func (c KeyComparer[T, K]) Equal(a, b T) bool { return c.key(a) == c.key(b) }

func (c KeyComparer[T, K]) Hash(v T) uint64 { return maphash.Comparable(c.seed, c.key(v)) }
