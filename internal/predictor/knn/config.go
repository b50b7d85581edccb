package knn

import (
	"fmt"

	"github.com/go-sod/gesture/internal/geom"
)

const DefaultK = 3

type DistanceFuncType string

const (
	DistanceFuncTypeEuclidean DistanceFuncType = "EUCLIDEAN"
	DistanceFuncTypeChebyshev DistanceFuncType = "CHEBYSHEV"
	DistanceFuncTypeManhattan DistanceFuncType = "MANHATTAN"
)

// InsufficientPolicy decides what happens when k exceeds the reference set size.
type InsufficientPolicy string

const (
	// PolicyRescale votes with every available point and divides by the number of points actually used.
	PolicyRescale InsufficientPolicy = "RESCALE"
	// PolicyReject fails the classification with predictor.ErrInsufficientNeighbors.
	PolicyReject InsufficientPolicy = "REJECT"
)

type Config struct {
	K              int                `envconfig:"GESTURE_KNN_K" default:"3"`
	Classes        int                `envconfig:"GESTURE_KNN_CLASSES" default:"0"`
	Policy         InsufficientPolicy `envconfig:"GESTURE_KNN_POLICY" default:"RESCALE"`
	MetricFuncType DistanceFuncType   `envconfig:"GESTURE_KNN_DISTANCE" default:"EUCLIDEAN"`
}

func DistanceFuncFor(d DistanceFuncType) (geom.DistanceFn, error) {
	switch d {
	case DistanceFuncTypeChebyshev:
		return geom.ChebyshevDistance, nil
	case DistanceFuncTypeEuclidean:
		return geom.EuclideanDistance, nil
	case DistanceFuncTypeManhattan:
		return geom.ManhattanDistance, nil
	default:
		return nil, fmt.Errorf("unknown distance function: %s", d)
	}
}

func PolicyFor(p InsufficientPolicy) (InsufficientPolicy, error) {
	switch p {
	case PolicyRescale, PolicyReject:
		return p, nil
	default:
		return "", fmt.Errorf("unknown insufficient neighbors policy: %s", p)
	}
}
