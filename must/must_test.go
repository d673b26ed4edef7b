package must_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xeptore/arrayfn/must"
)

func TestBe(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { must.Be(true, "fine") })
	assert.PanicsWithValue(t, "assertion failed: boom", func() { must.Be(false, "boom") })
}

func TestIndex(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { must.Index(0, 3, "array") })
	assert.NotPanics(t, func() { must.Index(2, 3, "array") })
	assert.PanicsWithValue(t, "index 3 out of range for array of length 3", func() { must.Index(3, 3, "array") })
	assert.PanicsWithValue(t, "index -1 out of range for array of length 3", func() { must.Index(-1, 3, "array") })
}
