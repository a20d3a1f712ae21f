package sequence

import (
	"iter"
)

// Iterator is a generic, immutable, chainable iterator for any type T.
type Iterator[T any] struct {
	seq iter.Seq[T]
}

// From creates a new Iterator from a slice of T.
func From[T any](data []T) *Iterator[T] {
	return &Iterator[T]{
		seq: func(yield func(T) bool) {
			for _, v := range data {
				if !yield(v) {
					return
				}
			}
		},
	}
}

// Seq returns the underlying sequence function for the iterator.
// This allows direct access to the iterator's sequence for advanced use cases.
func (i *Iterator[T]) Seq() iter.Seq[T] {
	return i.seq
}

// Collect exhausts the iterator and returns a slice of all elements.
func (i *Iterator[T]) Collect() []T {
	var out []T
	i.seq(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Filter returns a new Iterator containing only elements that satisfy the predicate.
func (i *Iterator[T]) Filter(pred func(T) bool) *Iterator[T] {
	return &Iterator[T]{
		seq: func(yield func(T) bool) {
			i.seq(func(v T) bool {
				if pred(v) {
					return yield(v)
				}
				return true
			})
		},
	}
}

// Reject returns a new Iterator without the elements that satisfy the predicate.
func (i *Iterator[T]) Reject(pred func(T) bool) *Iterator[T] {
	return i.Filter(func(v T) bool { return !pred(v) })
}

// Index returns the position of the first element matching the predicate, or -1.
func (i *Iterator[T]) Index(pred func(T) bool) int {
	idx, pos := -1, 0
	i.seq(func(v T) bool {
		if pred(v) {
			idx = pos
			return false
		}
		pos++
		return true
	})
	return idx
}

// Count returns the number of elements in the iterator.
func (i *Iterator[T]) Count() int {
	count := 0
	i.seq(func(_ T) bool {
		count++
		return true
	})
	return count
}

// Map returns an iterator yielding mapFn applied to every element of it.
func Map[T any, R any](it *Iterator[T], mapFn func(T) R) *Iterator[R] {
	return &Iterator[R]{
		seq: func(yield func(R) bool) {
			it.seq(func(v T) bool {
				return yield(mapFn(v))
			})
		},
	}
}

// Fold reduces the iterator into an accumulator of a possibly different type.
func Fold[T any, A any](it *Iterator[T], init A, fold func(A, T) A) A {
	acc := init
	it.seq(func(v T) bool {
		acc = fold(acc, v)
		return true
	})
	return acc
}
