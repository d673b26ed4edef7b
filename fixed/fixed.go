// Package fixed implements the array operations for code that is generic
// over length. Go cannot carry an array length as a type parameter, so
// Array fixes its length at construction and checks length invariants at
// runtime instead of at compile time: push and pop produce a new Array
// whose length is asserted to differ by exactly one. This is the documented
// trade-off against package arrayfn, which proves the same facts statically
// and never allocates; constructors and length-changing operations here
// allocate the storage for their result.
package fixed

import (
	"slices"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"

	"github.com/xeptore/arrayfn/must"
)

// Array is an ordered sequence whose length is fixed for the lifetime of
// the value. The zero value is the empty array. Every constructor and
// operation copies its input, so two Array values never share storage; the
// single exception is Refs, whose pointers alias the source elements.
type Array[T any] struct {
	items []T
}

// Of builds an array holding the given elements in order.
func Of[T any](items ...T) Array[T] {
	return Array[T]{items: slices.Clone(items)}
}

// From copies s into a new array of length len(s).
func From[T any](s []T) Array[T] {
	return Array[T]{items: slices.Clone(s)}
}

// New builds an array of length n, calling f once per index in ascending
// order. A negative n is a caller bug and panics.
func New[T any](n int, f func(i int) T) Array[T] {
	must.Be(n >= 0, "array length must be non-negative")

	items := make([]T, n)
	for i := range items {
		items[i] = f(i)
	}

	return Array[T]{items: items}
}

// Generate builds an array of length n, calling f exactly n times in
// ascending index order.
func Generate[T any](n int, f func() T) Array[T] {
	return New(n, func(int) T { return f() })
}

// Repeat builds an array of length n where every slot holds a copy of v.
// Value copies share pointees; use RepeatBy when elements need independent
// state.
func Repeat[T any](n int, v T) Array[T] {
	return New(n, func(int) T { return v })
}

// RepeatBy builds an array of length n where every slot holds the result
// of one clone call. clone must be callable n times.
func RepeatBy[T any](n int, clone func() T) Array[T] {
	return New(n, func(int) T { return clone() })
}

// Indices builds the index array [0 1 ... n-1] with the requested integer
// type.
func Indices[I constraints.Integer](n int) Array[I] {
	return New(n, func(i int) I { return I(i) })
}

// Len returns the fixed length.
func (a Array[T]) Len() int {
	return len(a.items)
}

// At returns the element at index i.
func (a Array[T]) At(i int) T {
	must.Index(i, len(a.items), "fixed array")
	return a.items[i]
}

// Items returns a copy of the elements in index order.
func (a Array[T]) Items() []T {
	return slices.Clone(a.items)
}

// Map applies f to every element in ascending index order, producing a new
// array of the same length.
func Map[T, U any](a Array[T], f func(T) U) Array[U] {
	return Array[U]{items: lo.Map(a.items, func(v T, _ int) U { return f(v) })}
}

// Zip pairs elements of a and b at matching indices. Unequal lengths are a
// caller bug and panic; the static strategy rules this case out at compile
// time, here it surfaces at the call.
func Zip[T, U any](a Array[T], b Array[U]) Array[lo.Tuple2[T, U]] {
	must.Be(a.Len() == b.Len(), "zip requires equal lengths")

	return Array[lo.Tuple2[T, U]]{items: lo.Map(a.items, func(v T, i int) lo.Tuple2[T, U] {
		return lo.T2(v, b.items[i])
	})}
}

// Refs returns pointers to the elements of a, index-aligned. The pointers
// alias a's storage: writes through them are visible via At. Like Map and
// Zip it is a free function: a method would force the compiler to
// instantiate Array[*T] from Array[T] without end.
func Refs[T any](a *Array[T]) Array[*T] {
	items := make([]*T, len(a.items))
	for i := range a.items {
		items[i] = &a.items[i]
	}

	return Array[*T]{items: items}
}

// PushFront produces a new array of length Len()+1 with v first.
func (a Array[T]) PushFront(v T) Array[T] {
	items := make([]T, 0, len(a.items)+1)
	items = append(items, v)
	items = append(items, a.items...)

	out := Array[T]{items: items}
	must.Be(out.Len() == a.Len()+1, "push must grow length by exactly one")

	return out
}

// PushBack produces a new array of length Len()+1 with v last.
func (a Array[T]) PushBack(v T) Array[T] {
	items := make([]T, 0, len(a.items)+1)
	items = append(items, a.items...)
	items = append(items, v)

	out := Array[T]{items: items}
	must.Be(out.Len() == a.Len()+1, "push must grow length by exactly one")

	return out
}

// PopFront splits a into its first element and a new array of length
// Len()-1. Popping an empty array is a caller bug and panics.
func (a Array[T]) PopFront() (T, Array[T]) {
	must.Be(len(a.items) > 0, "pop from empty array")

	rest := Array[T]{items: slices.Clone(a.items[1:])}
	must.Be(rest.Len() == a.Len()-1, "pop must shrink length by exactly one")

	return a.items[0], rest
}

// PopBack splits a into its last element and a new array of length
// Len()-1. Popping an empty array is a caller bug and panics.
func (a Array[T]) PopBack() (T, Array[T]) {
	must.Be(len(a.items) > 0, "pop from empty array")

	last := len(a.items) - 1
	rest := Array[T]{items: slices.Clone(a.items[:last])}
	must.Be(rest.Len() == a.Len()-1, "pop must shrink length by exactly one")

	return a.items[last], rest
}

// Equal reports whether a and b have the same length and equal elements at
// every index.
func Equal[T comparable](a, b Array[T]) bool {
	return slices.Equal(a.items, b.items)
}
