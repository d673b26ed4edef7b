// Package codegen renders the per-length operation sources for package
// arrayfn. One function per operation per length keeps every length's
// behavior independently visible to the compiler; this package exists so
// the unrolling is mechanical instead of hand-maintained.
package codegen

import (
	"bytes"
	"fmt"
	"strings"
)

const header = "// Code generated by arraygen; DO NOT EDIT.\n\n"

// File is a rendered source file ready to be written to the output
// directory.
type File struct {
	Name    string
	Content []byte
}

// Render produces every generated source file for conf, including the
// per-length contract test file.
func Render(conf *Config) []File {
	return []File{
		{Name: "ops_gen.go", Content: renderOps(conf)},
		{Name: "tuple_gen.go", Content: renderTuple(conf)},
		{Name: "edge_gen.go", Content: renderEdge(conf)},
		{Name: "contract_gen_test.go", Content: renderContractTest(conf)},
	}
}

func renderOps(conf *Config) []byte {
	var buf bytes.Buffer
	buf.WriteString(header)
	fmt.Fprintf(&buf, "package %s\n\nimport (\n\t\"github.com/samber/lo\"\n\t\"golang.org/x/exp/constraints\"\n)\n", conf.Package)

	for n := conf.MinLen; n <= conf.MaxLen; n++ {
		fmt.Fprintf(&buf, `
// Map%d applies f to every element of a in ascending index order.
func Map%d[T, U any](a [%d]T, f func(T) U) (out [%d]U) {
	for i := range a {
		out[i] = f(a[i])
	}
	return out
}

// Zip%d pairs elements of a and b at matching indices.
func Zip%d[T, U any](a [%d]T, b [%d]U) (out [%d]lo.Tuple2[T, U]) {
	for i := range a {
		out[i] = lo.T2(a[i], b[i])
	}
	return out
}

// Generate%d calls f exactly %d times and collects the results in call
// order.
func Generate%d[T any](f func() T) (out [%d]T) {
	for i := range out {
		out[i] = f()
	}
	return out
}

// GenerateWith%d calls f once per index in ascending order and collects
// the results.
func GenerateWith%d[T any](f func(i int) T) (out [%d]T) {
	for i := range out {
		out[i] = f(i)
	}
	return out
}

// Indices%d returns the indices 0 through %d in ascending order.
func Indices%d[I constraints.Integer]() (out [%d]I) {
	for i := range out {
		out[i] = I(i)
	}
	return out
}

// Repeat%d fills every slot with a copy of v. Value copies share pointees;
// elements needing independent state should come from Generate%d instead.
func Repeat%d[T any](v T) (out [%d]T) {
	for i := range out {
		out[i] = v
	}
	return out
}

// Refs%d returns pointers to the elements of a, index-aligned. Writes
// through the pointers are visible in a.
func Refs%d[T any](a *[%d]T) (out [%d]*T) {
	for i := range a {
		out[i] = &a[i]
	}
	return out
}
`,
			n, n, n, n,
			n, n, n, n, n,
			n, n, n, n,
			n, n, n,
			n, n-1, n, n,
			n, n, n, n,
			n, n, n, n)
	}

	return buf.Bytes()
}

func renderTuple(conf *Config) []byte {
	var buf bytes.Buffer
	buf.WriteString(header)
	fmt.Fprintf(&buf, "package %s\n", conf.Package)

	for n := conf.MinLen; n <= conf.MaxLen; n++ {
		params := make([]string, n)
		rets := make([]string, n)
		elems := make([]string, n)
		for i := range n {
			params[i] = fmt.Sprintf("v%d", i)
			rets[i] = "T"
			elems[i] = fmt.Sprintf("a[%d]", i)
		}

		fmt.Fprintf(&buf, `
// Of%d builds an array from its %d elements in order.
func Of%d[T any](%s T) [%d]T {
	return [%d]T{%s}
}

// Unpack%d returns the elements of a as a %d-value list.
func Unpack%d[T any](a [%d]T) (%s) {
	return %s
}
`,
			n, n, n, strings.Join(params, ", "), n, n, strings.Join(params, ", "),
			n, n, n, n, strings.Join(rets, ", "), strings.Join(elems, ", "))
	}

	return buf.Bytes()
}

func renderEdge(conf *Config) []byte {
	var buf bytes.Buffer
	buf.WriteString(header)
	fmt.Fprintf(&buf, "package %s\n", conf.Package)

	for n := conf.MinLen; n <= conf.MaxLen; n++ {
		if n < conf.MaxLen {
			fmt.Fprintf(&buf, `
// PushFront%d prepends v, producing a length-%d array.
func PushFront%d[T any](a [%d]T, v T) (out [%d]T) {
	out[0] = v
	copy(out[1:], a[:])
	return out
}

// PushBack%d appends v, producing a length-%d array.
func PushBack%d[T any](a [%d]T, v T) (out [%d]T) {
	copy(out[:], a[:])
	out[%d] = v
	return out
}
`,
				n, n+1, n, n, n+1,
				n, n+1, n, n, n+1, n)
		}

		fmt.Fprintf(&buf, `
// PopFront%d splits a into its first element and the remaining length-%d
// array.
func PopFront%d[T any](a [%d]T) (T, [%d]T) {
	var rest [%d]T
	copy(rest[:], a[1:])
	return a[0], rest
}

// PopBack%d splits a into its last element and the preceding length-%d
// array.
func PopBack%d[T any](a [%d]T) (T, [%d]T) {
	var rest [%d]T
	copy(rest[:], a[:%d])
	return a[%d], rest
}
`,
			n, n-1, n, n, n-1, n-1,
			n, n-1, n, n, n-1, n-1, n-1, n-1)
	}

	return buf.Bytes()
}

func renderContractTest(conf *Config) []byte {
	var buf bytes.Buffer
	buf.WriteString(header)
	fmt.Fprintf(
		&buf,
		"package %s_test\n\nimport (\n\t\"testing\"\n\n\t\"github.com/samber/lo\"\n\t\"github.com/stretchr/testify/assert\"\n\n\t\"github.com/xeptore/arrayfn\"\n)\n",
		conf.Package,
	)

	for n := conf.MinLen; n <= conf.MaxLen; n++ {
		fmt.Fprintf(&buf, `
func TestContractLen%d(t *testing.T) {
	t.Parallel()

	var order []int
	generated := arrayfn.GenerateWith%d(func(i int) int {
		order = append(order, i)
		return i * 10
	})
	indices := arrayfn.Indices%d[int]()
	assert.Exactly(t, indices[:], order)
	for i, v := range generated {
		assert.Exactly(t, i*10, v)
	}

	assert.Exactly(t, generated, arrayfn.Map%d(generated, func(v int) int { return v }))

	repeated := arrayfn.Repeat%d("x")
	for _, v := range repeated {
		assert.Exactly(t, "x", v)
	}

	zipped := arrayfn.Zip%d(generated, repeated)
	for i, p := range zipped {
		assert.Exactly(t, lo.T2(generated[i], repeated[i]), p)
	}

	refs := arrayfn.Refs%d(&generated)
	for i := range generated {
		assert.Same(t, &generated[i], refs[i])
	}

	assert.Exactly(t, generated, arrayfn.Of%d(arrayfn.Unpack%d(generated)))

	head, headless := arrayfn.PopFront%d(generated)
	assert.Exactly(t, generated[0], head)
	assert.Exactly(t, generated[1:], headless[:])
	assert.Exactly(t, generated, arrayfn.PushFront%d(headless, head))

	tail, tailless := arrayfn.PopBack%d(generated)
	assert.Exactly(t, generated[%d], tail)
	assert.Exactly(t, generated[:%d], tailless[:])
	assert.Exactly(t, generated, arrayfn.PushBack%d(tailless, tail))
`,
			n, n, n, n, n, n, n, n, n, n, n-1, n, n-1, n-1, n-1)

		if n < conf.MaxLen {
			fmt.Fprintf(&buf, `
	grown := arrayfn.PushBack%d(generated, 77)
	dropped, shrunk := arrayfn.PopBack%d(grown)
	assert.Exactly(t, 77, dropped)
	assert.Exactly(t, generated, shrunk)
`,
				n, n+1)
		}

		buf.WriteString("}\n")
	}

	return buf.Bytes()
}
