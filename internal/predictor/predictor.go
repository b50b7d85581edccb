package predictor

import (
	"github.com/cockroachdb/errors"

	"github.com/go-sod/gesture/internal/geom"
)

var (
	// ErrConfiguration is returned when a classifier is built with unusable parameters.
	ErrConfiguration = errors.New("invalid classifier configuration")
	// ErrInsufficientNeighbors is returned when k exceeds the reference set and the policy rejects it.
	ErrInsufficientNeighbors = errors.New("not enough reference points for k neighbors")
)

type ProvideFn func() (Classifier, error)

// LabeledPoint is a reference point tagged with the gesture class it was recorded for.
type LabeledPoint struct {
	Point      geom.Point3D
	ClassIndex int
}

func NewLabeledPoint(x, y, z float64, classIndex int) LabeledPoint {
	return LabeledPoint{Point: geom.NewPoint(x, y, z), ClassIndex: classIndex}
}

// Confidences holds one vote fraction per class, ordered by class index.
type Confidences []float64

// Sum returns the total of all entries, 1 for any non-degenerate classification.
func (c Confidences) Sum() float64 {
	var s float64
	for i := range c {
		s += c[i]
	}
	return s
}

type Classifier interface {
	Classify(sample []float64) (Confidences, error)
	Classes() int
}
