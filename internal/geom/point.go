package geom

import (
	"math"

	"github.com/cockroachdb/errors"
)

// MinSampleLen is the least number of readings a live sample must carry.
const MinSampleLen = 2

const dimensions = 3

var ErrMalformedSample = errors.New("malformed sample")

// Point3D is a fixed-arity coordinate in the gesture feature space.
type Point3D struct {
	X float64 `json:"x" yaml:"x" toml:"x"`
	Y float64 `json:"y" yaml:"y" toml:"y"`
	Z float64 `json:"z" yaml:"z" toml:"z"`
}

func NewPoint(x, y, z float64) Point3D {
	return Point3D{X: x, Y: y, Z: z}
}

// FromSample reduces raw readings to a point. The first three readings become x, y and z,
// a missing z defaults to zero and anything past the third reading is ignored.
func FromSample(readings []float64) (Point3D, error) {
	if len(readings) < MinSampleLen {
		return Point3D{}, errors.WithHintf(
			errors.Wrapf(ErrMalformedSample, "got %d readings", len(readings)),
			"a sample needs at least %d readings", MinSampleLen,
		)
	}
	n := len(readings)
	if n > dimensions {
		n = dimensions
	}
	for i := 0; i < n; i++ {
		if !finite(readings[i]) {
			return Point3D{}, errors.Wrapf(ErrMalformedSample, "reading %d is not a finite number", i)
		}
	}
	p := Point3D{X: readings[0], Y: readings[1]}
	if n > 2 {
		p.Z = readings[2]
	}
	return p, nil
}

func (p Point3D) Dimensions() int {
	return dimensions
}

func (p Point3D) Dim(idx int) float64 {
	switch idx {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

func (p Point3D) Points() []float64 {
	return []float64{p.X, p.Y, p.Z}
}

func (p Point3D) Equal(p1 Point3D) bool {
	return p.X == p1.X && p.Y == p1.Y && p.Z == p1.Z
}

// Finite reports whether every coordinate is neither NaN nor infinite.
func (p Point3D) Finite() bool {
	return finite(p.X) && finite(p.Y) && finite(p.Z)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
