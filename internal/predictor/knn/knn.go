package knn

import (
	"github.com/cockroachdb/errors"

	"github.com/go-sod/gesture/internal/geom"
	"github.com/go-sod/gesture/internal/predictor"
	"github.com/go-sod/gesture/pkg/pqueue"
)

var _ predictor.Classifier = (*Classifier)(nil)

type Option func(*Classifier)

func WithK(k int) Option {
	return func(c *Classifier) {
		c.k = k
	}
}

func WithClasses(n int) Option {
	return func(c *Classifier) {
		c.classes = n
	}
}

func WithPolicy(p InsufficientPolicy) Option {
	return func(c *Classifier) {
		c.policy = p
	}
}

func WithDistance(f geom.DistanceFn) Option {
	return func(c *Classifier) {
		c.distFunc = f
	}
}

// New builds a classifier over a private copy of points.
func New(points []predictor.LabeledPoint, opts ...Option) (*Classifier, error) {
	c := &Classifier{
		k:        DefaultK,
		policy:   PolicyRescale,
		distFunc: geom.EuclideanDistance,
	}
	for _, f := range opts {
		f(c)
	}
	c.points = make([]predictor.LabeledPoint, len(points))
	copy(c.points, points)
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Classifier votes a live sample against a fixed reference set.
// It is immutable after New and safe for concurrent use.
type Classifier struct {
	k        int
	classes  int
	policy   InsufficientPolicy
	points   []predictor.LabeledPoint
	distFunc geom.DistanceFn
}

func (c *Classifier) K() int {
	return c.k
}

func (c *Classifier) Classes() int {
	return c.classes
}

func (c *Classifier) Len() int {
	return len(c.points)
}

func (c *Classifier) Policy() InsufficientPolicy {
	return c.policy
}

// Insufficient reports whether k exceeds the reference set size.
func (c *Classifier) Insufficient() bool {
	return c.k > len(c.points)
}

// Classify returns the share of each class among the nearest neighbors of sample.
func (c *Classifier) Classify(sample []float64) (predictor.Confidences, error) {
	neighbors, err := c.Neighbors(sample)
	if err != nil {
		return nil, err
	}
	confidences := make(predictor.Confidences, c.classes)
	for _, n := range neighbors {
		confidences[n.ClassIndex]++
	}
	// len(neighbors) equals k unless the rescale policy kicked in
	denominator := float64(len(neighbors))
	for i := range confidences {
		confidences[i] /= denominator
	}
	return confidences, nil
}

// Neighbors returns the nearest reference points to sample, closest first.
// Points at equal distance keep their reference set order.
func (c *Classifier) Neighbors(sample []float64) ([]predictor.LabeledPoint, error) {
	point, err := geom.FromSample(sample)
	if err != nil {
		return nil, errors.Wrap(err, "unable to classify sample")
	}
	if c.Insufficient() && c.policy == PolicyReject {
		return nil, errors.WithHint(
			errors.Wrapf(predictor.ErrInsufficientNeighbors, "k=%d, reference points=%d", c.k, len(c.points)),
			"collect more reference points or lower k",
		)
	}

	pq := pqueue.New(pqueue.WithCap(uint(c.k)))
	for i := range c.points {
		d, err := geom.Distance(c.distFunc, point, c.points[i].Point)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to measure reference point %d", i)
		}
		pq.Push(i, d)
	}
	ordered := pq.PopAll()
	neighbors := make([]predictor.LabeledPoint, len(ordered))
	for i, idx := range ordered {
		neighbors[i] = c.points[idx.(int)]
	}
	return neighbors, nil
}

func (c *Classifier) validate() error {
	if c.k <= 0 {
		return errors.Wrapf(predictor.ErrConfiguration, "k must be positive, got %d", c.k)
	}
	if c.classes <= 0 {
		return errors.Wrapf(predictor.ErrConfiguration, "number of classes must be positive, got %d", c.classes)
	}
	if len(c.points) == 0 {
		return errors.Wrap(predictor.ErrConfiguration, "reference set is empty")
	}
	if c.distFunc == nil {
		return errors.Wrap(predictor.ErrConfiguration, "distance function is not set")
	}
	if _, err := PolicyFor(c.policy); err != nil {
		return errors.Wrap(predictor.ErrConfiguration, err.Error())
	}
	for i, p := range c.points {
		if p.ClassIndex < 0 || p.ClassIndex >= c.classes {
			return errors.Wrapf(
				predictor.ErrConfiguration,
				"reference point %d has class %d, expected 0..%d", i, p.ClassIndex, c.classes-1,
			)
		}
		if !p.Point.Finite() {
			return errors.Wrapf(predictor.ErrConfiguration, "reference point %d has a non-finite coordinate", i)
		}
	}
	return nil
}
