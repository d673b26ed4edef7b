package codegen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xeptore/arrayfn/internal/codegen"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "arraygen.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	conf, err := codegen.Load(writeConfig(t, "package: arrayfn\n"))
	require.NoError(t, err)
	assert.Exactly(t, "arrayfn", conf.Package)
	assert.Exactly(t, 2, conf.MinLen)
	assert.Exactly(t, 32, conf.MaxLen)
	assert.Exactly(t, ".", conf.OutDir)
}

func TestLoadRejectsHandWrittenLengths(t *testing.T) {
	t.Parallel()

	_, err := codegen.Load(writeConfig(t, "min_len: 1\n"))
	assert.ErrorContains(t, err, "min_len must be at least 2")
}

func TestLoadRejectsInvertedBounds(t *testing.T) {
	t.Parallel()

	_, err := codegen.Load(writeConfig(t, "min_len: 8\nmax_len: 4\n"))
	assert.ErrorContains(t, err, "max_len must not be less than min_len")
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := codegen.Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestRenderFileSet(t *testing.T) {
	t.Parallel()

	conf, err := codegen.Load(writeConfig(t, "min_len: 2\nmax_len: 3\n"))
	require.NoError(t, err)

	files := codegen.Render(conf)
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	assert.Exactly(t, []string{"ops_gen.go", "tuple_gen.go", "edge_gen.go", "contract_gen_test.go"}, names)

	for _, f := range files {
		assert.True(t, len(f.Content) > 0)
		assert.Contains(t, string(f.Content), "Code generated by arraygen; DO NOT EDIT.")
	}
}

func TestRenderOpsSignatures(t *testing.T) {
	t.Parallel()

	conf, err := codegen.Load(writeConfig(t, "min_len: 2\nmax_len: 3\n"))
	require.NoError(t, err)

	files := codegen.Render(conf)
	ops := string(files[0].Content)
	assert.Contains(t, ops, "func Map2[T, U any](a [2]T, f func(T) U) (out [2]U)")
	assert.Contains(t, ops, "func Map3[T, U any](a [3]T, f func(T) U) (out [3]U)")
	assert.Contains(t, ops, "func Zip3[T, U any](a [3]T, b [3]U) (out [3]lo.Tuple2[T, U])")
	assert.Contains(t, ops, "func Generate2[T any](f func() T) (out [2]T)")
	assert.Contains(t, ops, "func Indices3[I constraints.Integer]() (out [3]I)")
	assert.Contains(t, ops, "func Refs2[T any](a *[2]T) (out [2]*T)")
	assert.NotContains(t, ops, "func Map4")
}

func TestRenderTupleSignatures(t *testing.T) {
	t.Parallel()

	conf, err := codegen.Load(writeConfig(t, "min_len: 2\nmax_len: 3\n"))
	require.NoError(t, err)

	files := codegen.Render(conf)
	tuples := string(files[1].Content)
	assert.Contains(t, tuples, "func Of3[T any](v0, v1, v2 T) [3]T {")
	assert.Contains(t, tuples, "func Unpack3[T any](a [3]T) (T, T, T) {")
	assert.Contains(t, tuples, "return a[0], a[1], a[2]")
}

// Push stops one short of the bound so every result type stays within it;
// pop covers the bound itself.
func TestRenderEdgeBound(t *testing.T) {
	t.Parallel()

	conf, err := codegen.Load(writeConfig(t, "min_len: 2\nmax_len: 3\n"))
	require.NoError(t, err)

	files := codegen.Render(conf)
	edges := string(files[2].Content)
	assert.Contains(t, edges, "func PushBack2[T any](a [2]T, v T) (out [3]T)")
	assert.Contains(t, edges, "func PopBack3[T any](a [3]T) (T, [2]T)")
	assert.Contains(t, edges, "func PopFront2[T any](a [2]T) (T, [1]T)")
	assert.NotContains(t, edges, "func PushBack3")
	assert.NotContains(t, edges, "func PushFront3")
}

func TestRenderContractTestCoversEveryLength(t *testing.T) {
	t.Parallel()

	conf, err := codegen.Load(writeConfig(t, "min_len: 2\nmax_len: 5\n"))
	require.NoError(t, err)

	files := codegen.Render(conf)
	tests := string(files[3].Content)
	for _, name := range []string{"TestContractLen2", "TestContractLen3", "TestContractLen4", "TestContractLen5"} {
		assert.Contains(t, tests, "func "+name+"(t *testing.T)")
	}
	assert.NotContains(t, tests, "TestContractLen6")
	assert.Contains(t, tests, "package arrayfn_test")
}
