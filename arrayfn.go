// Package arrayfn provides functional operations on native fixed-length
// arrays: mapping, zipping, generation, index enumeration, repetition,
// borrowed views, array/value-list conversion, and front/back
// insertion and removal. There is one function per operation per length,
// for every length from 0 through MaxLen, all operating on plain value
// arrays without heap allocation.
//
// Lengths 0 and 1 are implemented by hand in this file; they are the only
// lengths where an operation may legitimately skip its callback or where a
// removal has no valid result type. Lengths 2 through MaxLen are emitted by
// cmd/arraygen into ops_gen.go, tuple_gen.go, and edge_gen.go.
//
// Pop variants exist only for lengths 1 and above: popping an empty array
// is rejected at compile time by the operation simply not existing, not at
// run time.
//
// For code whose array length is not known until compile time, see package
// fixed, which trades the static length guarantees of this package for
// runtime-checked ones.
package arrayfn

import (
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

//go:generate go run ./cmd/arraygen --config arraygen.yml

// MaxLen is the largest array length this package provides operations for.
// It matches the max_len bound in arraygen.yml.
const MaxLen = 32

// Map0 returns the empty array; f is never called.
func Map0[T, U any](_ [0]T, _ func(T) U) [0]U {
	return [0]U{}
}

// Zip0 returns the empty array of pairs.
func Zip0[T, U any](_ [0]T, _ [0]U) [0]lo.Tuple2[T, U] {
	return [0]lo.Tuple2[T, U]{}
}

// Generate0 returns the empty array; f is called zero times.
func Generate0[T any](_ func() T) [0]T {
	return [0]T{}
}

// GenerateWith0 returns the empty array; f is called zero times.
func GenerateWith0[T any](_ func(i int) T) [0]T {
	return [0]T{}
}

// Indices0 returns the empty index array.
func Indices0[I constraints.Integer]() [0]I {
	return [0]I{}
}

// Repeat0 discards v and returns the empty array.
func Repeat0[T any](_ T) [0]T {
	return [0]T{}
}

// Refs0 returns the empty array of pointers.
func Refs0[T any](_ *[0]T) [0]*T {
	return [0]*T{}
}

// Of0 builds the empty array from zero elements.
func Of0[T any]() [0]T {
	return [0]T{}
}

// Unpack0 returns the zero elements of a, which is to say nothing.
func Unpack0[T any](_ [0]T) {}

// PushFront0 produces the length-1 array holding v.
func PushFront0[T any](_ [0]T, v T) [1]T {
	return [1]T{v}
}

// PushBack0 produces the length-1 array holding v.
func PushBack0[T any](_ [0]T, v T) [1]T {
	return [1]T{v}
}

// Map1 applies f to the single element of a. f is called exactly once even
// though the result shape is trivially known.
func Map1[T, U any](a [1]T, f func(T) U) [1]U {
	return [1]U{f(a[0])}
}

// Zip1 pairs the single elements of a and b.
func Zip1[T, U any](a [1]T, b [1]U) [1]lo.Tuple2[T, U] {
	return [1]lo.Tuple2[T, U]{lo.T2(a[0], b[0])}
}

// Generate1 calls f exactly once and wraps the result.
func Generate1[T any](f func() T) [1]T {
	return [1]T{f()}
}

// GenerateWith1 calls f exactly once with index 0 and wraps the result.
func GenerateWith1[T any](f func(i int) T) [1]T {
	return [1]T{f(0)}
}

// Indices1 returns [0].
func Indices1[I constraints.Integer]() [1]I {
	return [1]I{0}
}

// Repeat1 wraps v without duplicating it.
func Repeat1[T any](v T) [1]T {
	return [1]T{v}
}

// Refs1 returns a pointer to the single element of a.
func Refs1[T any](a *[1]T) [1]*T {
	return [1]*T{&a[0]}
}

// Of1 builds a length-1 array from its element.
func Of1[T any](v0 T) [1]T {
	return [1]T{v0}
}

// Unpack1 returns the single element of a.
func Unpack1[T any](a [1]T) T {
	return a[0]
}

// PushFront1 prepends v, producing a length-2 array.
func PushFront1[T any](a [1]T, v T) [2]T {
	return [2]T{v, a[0]}
}

// PushBack1 appends v, producing a length-2 array.
func PushBack1[T any](a [1]T, v T) [2]T {
	return [2]T{a[0], v}
}

// PopFront1 splits a into its single element and the empty array.
func PopFront1[T any](a [1]T) (T, [0]T) {
	return a[0], [0]T{}
}

// PopBack1 splits a into its single element and the empty array.
func PopBack1[T any](a [1]T) (T, [0]T) {
	return a[0], [0]T{}
}
