package predictor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidences_Sum(t *testing.T) {
	t.Parallel()
	assert.InDelta(t, 1.0, Confidences{0.25, 0.5, 0.25}.Sum(), 1e-12)
	assert.Equal(t, 0.0, Confidences{}.Sum())
}

func TestNewLabeledPoint(t *testing.T) {
	t.Parallel()
	p := NewLabeledPoint(1, 2, 3, 4)
	assert.Equal(t, 4, p.ClassIndex)
	assert.Equal(t, []float64{1, 2, 3}, p.Point.Points())
}
