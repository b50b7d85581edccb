package geom

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrDimNotEqual = fmt.Errorf("vectors dimension is not equal")
	ErrNaNDistance = fmt.Errorf("distance is not a number")
)

// DistanceFn is the contract shared by all point metrics.
type DistanceFn func(vec, vec1 []float64) (float64, error)

func EuclideanDistance(vec, vec1 []float64) (float64, error) {
	return lpDistance(vec, vec1, 2)
}

func ChebyshevDistance(vec, vec1 []float64) (float64, error) {
	return lpDistance(vec, vec1, math.Inf(1))
}

func ManhattanDistance(vec, vec1 []float64) (float64, error) {
	return lpDistance(vec, vec1, 1)
}

func lpDistance(vec, vec1 []float64, l float64) (float64, error) {
	if len(vec) != len(vec1) {
		return 0.0, ErrDimNotEqual
	}
	return floats.Distance(vec, vec1, l), nil
}

// Distance measures two points with fn. A NaN result is an error since it has no order.
func Distance(fn DistanceFn, p, p1 Point3D) (float64, error) {
	d, err := fn(p.Points(), p1.Points())
	if err != nil {
		return 0, err
	}
	if math.IsNaN(d) {
		return 0, ErrNaNDistance
	}
	return d, nil
}
