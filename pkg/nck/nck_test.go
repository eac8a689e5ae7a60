package nck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortName(t *testing.T) {
	type tc struct {
		Index    int
		Expected string
	}

	for _, tt := range []tc{
		{Index: 0, Expected: "A"},
		{Index: 1, Expected: "B"},
		{Index: 25, Expected: "Z"},
		{Index: 26, Expected: "AA"},
		{Index: 27, Expected: "AB"},
		{Index: 51, Expected: "AZ"},
		{Index: 52, Expected: "BA"},
		{Index: 701, Expected: "ZZ"},
		{Index: 702, Expected: "AAA"},
	} {
		t.Run(tt.Expected, func(t *testing.T) {
			assert.Equal(t, tt.Expected, PortName(tt.Index))
		})
	}
}

func TestFromCoefficients(t *testing.T) {
	c := FromCoefficients([]int{1, 1, 2}, []int{4, 0, 1})
	assert.Equal(t, []string{"A", "B", "C", "C"}, c.Ports)
	assert.Equal(t, []int{0, 1, 4}, c.Tallies)
	assert.False(t, c.Soft)
}

func TestFromCoefficientsDeduplicatesTallies(t *testing.T) {
	c := FromCoefficients([]int{2}, []int{2, 0, 2, 0})
	assert.Equal(t, []int{0, 2}, c.Tallies)
}

func TestString(t *testing.T) {
	c := FromCoefficients([]int{1, 1, 2}, []int{0, 1, 4})
	assert.Equal(t, "nck([A,B,C,C], [0,1,4])", c.String())

	c = FromCoefficients([]int{1, 2, 3}, []int{0, 1, 5})
	assert.Equal(t, "nck([A,B,B,C,C,C], [0,1,5])", c.String())
}

func TestChoose(t *testing.T) {
	c := FromCoefficients([]int{1, 1, 2}, []int{0, 1, 4})
	assert.Equal(t, "[A B C C] choose [0,1,4]", c.Choose())

	c.Soft = true
	assert.Equal(t, "[A B C C] choose [0,1,4] (soft)", c.Choose())
}

func TestRepetitionsRoundTrip(t *testing.T) {
	for _, coeffs := range [][]int{
		{1},
		{3},
		{1, 1, 2},
		{2, 1, 3, 1},
		{1, 1, 1, 1, 1},
	} {
		c := FromCoefficients(coeffs, []int{0})
		assert.Equal(t, coeffs, c.Repetitions())
	}
}
