package fixed_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/xeptore/arrayfn/fixed"
)

func TestConstructors(t *testing.T) {
	t.Parallel()

	assert.Exactly(t, []int{1, 2, 3}, fixed.Of(1, 2, 3).Items())
	assert.Exactly(t, 0, fixed.Of[int]().Len())

	src := []string{"a", "b"}
	a := fixed.From(src)
	src[0] = "mutated"
	assert.Exactly(t, []string{"a", "b"}, a.Items(), "From must copy its input")

	assert.Exactly(t, []int{0, 10, 20}, fixed.New(3, func(i int) int { return i * 10 }).Items())
}

func TestGenerateCallOrder(t *testing.T) {
	t.Parallel()

	var order []int
	a := fixed.New(4, func(i int) int {
		order = append(order, i)
		return i
	})
	assert.Exactly(t, []int{0, 1, 2, 3}, order)
	assert.Exactly(t, []int{0, 1, 2, 3}, a.Items())

	state := 1
	doubled := fixed.Generate(4, func() int {
		state *= 2
		return state
	})
	assert.Exactly(t, []int{2, 4, 8, 16}, doubled.Items())

	calls := 0
	empty := fixed.Generate(0, func() int {
		calls++
		return 0
	})
	assert.Zero(t, calls)
	assert.Exactly(t, 0, empty.Len())
}

func TestRepeat(t *testing.T) {
	t.Parallel()

	assert.Exactly(t, []string{"hello", "hello", "hello"}, fixed.Repeat(3, "hello").Items())

	v := 7
	shared := fixed.Repeat(2, &v)
	assert.Same(t, shared.At(0), shared.At(1), "Repeat duplicates by value copy, pointees are shared")

	next := 0
	independent := fixed.RepeatBy(3, func() *int {
		n := next
		next++
		return &n
	})
	assert.NotSame(t, independent.At(0), independent.At(1))
	assert.Exactly(t, 0, *independent.At(0))
	assert.Exactly(t, 2, *independent.At(2))
}

func TestIndices(t *testing.T) {
	t.Parallel()

	assert.Exactly(t, []int{0, 1, 2, 3, 4}, fixed.Indices[int](5).Items())
	assert.Exactly(t, []uint8{0, 1, 2}, fixed.Indices[uint8](3).Items())
	assert.Exactly(t, 0, fixed.Indices[int](0).Len())
}

func TestMapLaws(t *testing.T) {
	t.Parallel()

	a := fixed.Of(1, 2, 3)
	assert.True(t, fixed.Equal(a, fixed.Map(a, func(x int) int { return x })))

	double := func(x int) int { return x * 2 }
	str := func(x int) string {
		if x > 4 {
			return "big"
		}
		return "small"
	}
	chained := fixed.Map(fixed.Map(a, double), str)
	composed := fixed.Map(a, func(x int) string { return str(double(x)) })
	assert.True(t, fixed.Equal(chained, composed))

	assert.Exactly(t, []int{2, 3, 4}, fixed.Map(a, func(x int) int { return x + 1 }).Items())
}

func TestZip(t *testing.T) {
	t.Parallel()

	got := fixed.Zip(fixed.Of(1, 2), fixed.Of("one", "two"))
	assert.Exactly(t, []lo.Tuple2[int, string]{lo.T2(1, "one"), lo.T2(2, "two")}, got.Items())

	assert.Panics(t, func() {
		fixed.Zip(fixed.Of(1), fixed.Of("one", "two"))
	}, "zip with mismatched lengths is a contract violation")
}

func TestRefsAliasing(t *testing.T) {
	t.Parallel()

	a := fixed.Of(1, 2)
	refs := fixed.Refs(&a)
	*refs.At(0) = 10
	*refs.At(1) = 20
	assert.Exactly(t, []int{10, 20}, a.Items())

	indirect := fixed.Refs(&refs)
	**indirect.At(1) = 30
	assert.Exactly(t, []int{10, 30}, a.Items())
}

func TestPushPop(t *testing.T) {
	t.Parallel()

	a := fixed.Of("b", "c")

	grown := a.PushFront("a")
	assert.Exactly(t, []string{"a", "b", "c"}, grown.Items())
	assert.Exactly(t, 2, a.Len(), "push must not mutate its receiver")

	v, rest := grown.PopFront()
	assert.Exactly(t, "a", v)
	assert.True(t, fixed.Equal(a, rest))

	grown = a.PushBack("d")
	assert.Exactly(t, []string{"b", "c", "d"}, grown.Items())

	v, rest = grown.PopBack()
	assert.Exactly(t, "d", v)
	assert.True(t, fixed.Equal(a, rest))

	last, single := fixed.Of(9).PopBack()
	assert.Exactly(t, 9, last)
	assert.Exactly(t, 0, single.Len())
}

func TestPopEmptyPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { fixed.Of[int]().PopFront() })
	assert.Panics(t, func() { fixed.Of[int]().PopBack() })

	var zero fixed.Array[string]
	assert.Panics(t, func() { zero.PopBack() })
}

func TestAtBounds(t *testing.T) {
	t.Parallel()

	a := fixed.Of(1, 2, 3)
	assert.Exactly(t, 3, a.At(2))
	assert.Panics(t, func() { a.At(3) })
	assert.Panics(t, func() { a.At(-1) })
}

func TestItemsIsACopy(t *testing.T) {
	t.Parallel()

	a := fixed.Of(1, 2)
	items := a.Items()
	items[0] = 99
	assert.Exactly(t, 1, a.At(0))
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, fixed.Equal(fixed.Of(1, 2), fixed.Of(1, 2)))
	assert.False(t, fixed.Equal(fixed.Of(1, 2), fixed.Of(2, 1)))
	assert.False(t, fixed.Equal(fixed.Of(1), fixed.Of(1, 1)))
	assert.True(t, fixed.Equal(fixed.Of[int](), fixed.Array[int]{}))
}
