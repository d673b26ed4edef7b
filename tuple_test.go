package arrayfn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xeptore/arrayfn"
)

func TestUnpackPrimes(t *testing.T) {
	t.Parallel()

	v0, v1, v2, v3, v4 := arrayfn.Unpack5([5]int{2, 3, 5, 7, 11})
	assert.Exactly(t, 2, v0)
	assert.Exactly(t, 3, v1)
	assert.Exactly(t, 5, v2)
	assert.Exactly(t, 7, v3)
	assert.Exactly(t, 11, v4)
}

func TestOfFibonacci(t *testing.T) {
	t.Parallel()

	assert.Exactly(t, [5]int{1, 1, 2, 3, 5}, arrayfn.Of5(1, 1, 2, 3, 5))
}

func TestTupleRoundTrip(t *testing.T) {
	t.Parallel()

	a := [3]string{"x", "y", "z"}
	assert.Exactly(t, a, arrayfn.Of3(arrayfn.Unpack3(a)))

	one := [1]string{"only"}
	assert.Exactly(t, one, arrayfn.Of1(arrayfn.Unpack1(one)))

	assert.Exactly(t, [0]string{}, arrayfn.Of0[string]())
}
