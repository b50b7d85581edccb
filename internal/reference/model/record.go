package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/go-sod/gesture/internal/geom"
	"github.com/go-sod/gesture/internal/predictor"
)

func NewRecord(set string, point predictor.LabeledPoint, createdAt time.Time) Record {
	return Record{
		ID:         uuid.New(),
		Set:        set,
		Point:      point.Point,
		ClassIndex: point.ClassIndex,
		CreatedAt:  createdAt,
	}
}

// Record is one stored reference point.
type Record struct {
	ID         uuid.UUID    `json:"id"`
	Set        string       `json:"set"`
	Point      geom.Point3D `json:"point"`
	ClassIndex int          `json:"classIndex"`
	CreatedAt  time.Time    `json:"createdAt"`
}

func (r Record) LabeledPoint() predictor.LabeledPoint {
	return predictor.LabeledPoint{Point: r.Point, ClassIndex: r.ClassIndex}
}
