package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSample(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		readings []float64
		expected Point3D
		err      bool
	}{
		{name: "three_readings", readings: []float64{1, 2, 3}, expected: NewPoint(1, 2, 3)},
		{name: "two_readings", readings: []float64{1, 2}, expected: NewPoint(1, 2, 0)},
		{name: "extra_readings", readings: []float64{1, 2, 3, 4, 5}, expected: NewPoint(1, 2, 3)},
		{name: "nan_ignored_past_third", readings: []float64{1, 2, 3, math.NaN()}, expected: NewPoint(1, 2, 3)},
		{name: "empty", readings: nil, err: true},
		{name: "one_reading", readings: []float64{1}, err: true},
		{name: "nan", readings: []float64{1, math.NaN()}, err: true},
		{name: "inf", readings: []float64{1, 2, math.Inf(-1)}, err: true},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			got, err := FromSample(test.readings)
			if test.err {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedSample)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(test.expected), "got: %v, expected: %v", got, test.expected)
		})
	}
}

func TestPoint3D_Dim(t *testing.T) {
	t.Parallel()
	p := NewPoint(1, 2, 3)
	assert.Equal(t, 3, p.Dimensions())
	assert.Equal(t, []float64{1, 2, 3}, p.Points())
	for i, expected := range []float64{1, 2, 3} {
		assert.Equal(t, expected, p.Dim(i))
	}
}

func TestPoint3D_Equal(t *testing.T) {
	t.Parallel()
	assert.True(t, NewPoint(10, 10, 0).Equal(Point3D{X: 10, Y: 10}))
	assert.False(t, NewPoint(10, 10, 0).Equal(NewPoint(11, 10, 0)))
}
