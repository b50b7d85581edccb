package database

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-sod/gesture/internal/database"
	"github.com/go-sod/gesture/internal/gesture"
	"github.com/go-sod/gesture/internal/predictor"
	"github.com/go-sod/gesture/internal/reference"
	"github.com/go-sod/gesture/internal/reference/model"
)

func openDB(t *testing.T) *DB {
	t.Helper()
	ctx := context.Background()
	db, err := database.NewFromEnv(ctx, &database.Config{
		FileName: filepath.Join(t.TempDir(), "reference.db"),
		Timeout:  time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close(ctx)
	})
	return New(db)
}

func TestDB_StoreLoadSet(t *testing.T) {
	t.Parallel()
	db := openDB(t)
	ctx := context.Background()
	set := &reference.Set{
		Name:     "wrist",
		Gestures: gesture.List{"shake", "still"},
		Points: []predictor.LabeledPoint{
			predictor.NewLabeledPoint(0, 0, 0, 1),
			predictor.NewLabeledPoint(0, 0, 0, 0),
			predictor.NewLabeledPoint(5, 5, 5, 1),
		},
	}
	require.NoError(t, db.StoreSet(ctx, set))

	got, err := db.LoadSet("wrist")
	require.NoError(t, err)
	assert.Equal(t, set, got)

	count, err := db.CountBySet("wrist")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	sets, err := db.Sets()
	require.NoError(t, err)
	assert.Equal(t, []string{"wrist"}, sets)

	// storing again replaces the set instead of appending to it
	set.Points = set.Points[:1]
	require.NoError(t, db.StoreSet(ctx, set))
	got, err = db.LoadSet("wrist")
	require.NoError(t, err)
	assert.Len(t, got.Points, 1)
}

func TestDB_StoreSetKeepsPreviousOnFailure(t *testing.T) {
	t.Parallel()
	db := openDB(t)
	ctx := context.Background()
	set := &reference.Set{
		Name:     "wrist",
		Gestures: gesture.List{"shake", "still"},
		Points: []predictor.LabeledPoint{
			predictor.NewLabeledPoint(0, 0, 0, 0),
			predictor.NewLabeledPoint(1, 1, 1, 1),
		},
	}
	require.NoError(t, db.StoreSet(ctx, set))

	// NaN cannot be encoded as JSON, so the append step fails after the delete step
	broken := &reference.Set{
		Name:     "wrist",
		Gestures: gesture.List{"other"},
		Points: []predictor.LabeledPoint{
			predictor.NewLabeledPoint(2, 2, 2, 0),
			predictor.NewLabeledPoint(math.NaN(), 0, 0, 0),
		},
	}
	require.Error(t, db.StoreSet(ctx, broken))

	got, err := db.LoadSet("wrist")
	require.NoError(t, err)
	assert.Equal(t, set, got)

	sets, err := db.Sets()
	require.NoError(t, err)
	assert.Equal(t, []string{"wrist"}, sets)
}

func TestDB_InsertionOrder(t *testing.T) {
	t.Parallel()
	db := openDB(t)
	ctx := context.Background()
	var records []model.Record
	for i := 0; i < 300; i++ {
		records = append(records, model.NewRecord("order", predictor.NewLabeledPoint(float64(i), 0, 0, i%3), time.Now()))
	}
	require.NoError(t, db.AppendMany(ctx, "order", records[:150]))
	require.NoError(t, db.AppendMany(ctx, "order", records[150:]))

	got, err := db.FindBySet("order", nil)
	require.NoError(t, err)
	require.Len(t, got, len(records))
	for i := range got {
		assert.Equal(t, records[i].ID, got[i].ID)
	}

	filtered, err := db.FindBySet("order", func(r model.Record) bool { return r.ClassIndex == 0 })
	require.NoError(t, err)
	assert.Len(t, filtered, 100)
}

func TestDB_MissingSet(t *testing.T) {
	t.Parallel()
	db := openDB(t)
	records, err := db.FindBySet("nope", nil)
	require.NoError(t, err)
	assert.Empty(t, records)

	count, err := db.CountBySet("nope")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = db.LoadSet("nope")
	assert.Error(t, err)

	names, err := db.Gestures("nope")
	require.NoError(t, err)
	assert.Nil(t, names)

	require.NoError(t, db.DeleteSet(context.Background(), "nope"))
}
