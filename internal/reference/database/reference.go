package database

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/go-sod/gesture/internal/database"
	"github.com/go-sod/gesture/internal/reference"
	"github.com/go-sod/gesture/internal/reference/model"
)

const (
	setKeys     = "sets:keys"
	gestureKeys = "sets:gestures"
	prefix      = "set:"
)

type FilterFn func(record model.Record) bool

func New(db *database.DB) *DB {
	return &DB{sDB: db}
}

// DB keeps reference sets in bbolt, one bucket per set. Records are keyed by the bucket
// sequence so a cursor walk returns them in insertion order.
type DB struct {
	sDB *database.DB
}

func (db *DB) extractKey(key string) string {
	prefixPos := strings.Index(key, prefix)

	return key[prefixPos+len(prefix):]
}

func (db *DB) Sets() ([]string, error) {
	var sets []string
	err := db.sDB.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(setKeys))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, _ := c.First(); k != nil; k, _ = c.Next() {
			sets = append(sets, db.extractKey(string(k)))
		}
		return nil
	})

	return sets, err
}

func (db *DB) AppendMany(_ context.Context, set string, records []model.Record) error {
	if err := db.sDB.DB.Update(func(tx *bolt.Tx) error {
		return appendRecords(tx, set, records)
	}); err != nil {
		return fmt.Errorf("update transaction error: %w", err)
	}

	return nil
}

func (db *DB) SaveGestures(_ context.Context, set string, names []string) error {
	if err := db.sDB.DB.Update(func(tx *bolt.Tx) error {
		return putGestures(tx, set, names)
	}); err != nil {
		return fmt.Errorf("update transaction error: %w", err)
	}

	return nil
}

func (db *DB) Gestures(set string) ([]string, error) {
	var names []string
	if err := db.sDB.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(gestureKeys))
		if b == nil {
			return nil
		}
		v := b.Get([]byte(set))
		if v == nil {
			return nil
		}
		return json.Unmarshal(v, &names)
	}); err != nil {
		return nil, fmt.Errorf("view transaction error: %v", err)
	}

	return names, nil
}

func (db *DB) CountBySet(set string) (int, error) {
	var length int
	if err := db.sDB.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(prefix + set))
		if b == nil {
			length = 0
			return nil
		}
		length = b.Stats().KeyN
		return nil
	}); err != nil {
		return 0, fmt.Errorf("view transaction error: %v", err)
	}

	return length, nil
}

func (db *DB) FindBySet(set string, filter FilterFn) ([]model.Record, error) {
	var list []model.Record
	if err := db.sDB.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(prefix + set))
		if b == nil {
			return nil
		}
		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var record model.Record
			if err := json.Unmarshal(v, &record); err != nil {
				return fmt.Errorf("json unmarshal error, %q", err)
			}
			if filter == nil || filter(record) {
				list = append(list, record)
			}
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("view transaction error: %v", err)
	}

	return list, nil
}

func (db *DB) DeleteSet(_ context.Context, set string) error {
	if err := db.sDB.DB.Update(func(tx *bolt.Tx) error {
		return deleteSet(tx, set)
	}); err != nil {
		return fmt.Errorf("update transaction error: %w", err)
	}

	return nil
}

// StoreSet replaces the stored set with the given one in a single transaction,
// so a failed write leaves the previous set untouched.
func (db *DB) StoreSet(_ context.Context, set *reference.Set) error {
	now := time.Now().UTC()
	records := make([]model.Record, len(set.Points))
	for i := range set.Points {
		records[i] = model.NewRecord(set.Name, set.Points[i], now)
	}
	if err := db.sDB.DB.Update(func(tx *bolt.Tx) error {
		if err := deleteSet(tx, set.Name); err != nil {
			return fmt.Errorf("unable to clear set %s: %w", set.Name, err)
		}
		if err := appendRecords(tx, set.Name, records); err != nil {
			return fmt.Errorf("unable to store set %s: %w", set.Name, err)
		}
		if err := putGestures(tx, set.Name, set.Gestures); err != nil {
			return fmt.Errorf("unable to store gestures of %s: %w", set.Name, err)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("update transaction error: %w", err)
	}

	return nil
}

// LoadSet reads a stored set back in insertion order.
func (db *DB) LoadSet(set string) (*reference.Set, error) {
	records, err := db.FindBySet(set, nil)
	if err != nil {
		return nil, fmt.Errorf("unable find records of set %s: %w", set, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("reference set %s is empty or missing", set)
	}
	names, err := db.Gestures(set)
	if err != nil {
		return nil, fmt.Errorf("unable read gestures of set %s: %w", set, err)
	}
	out := &reference.Set{Name: set, Gestures: names}
	for _, r := range records {
		out.Points = append(out.Points, r.LabeledPoint())
	}
	return out, nil
}

func appendRecords(tx *bolt.Tx, set string, records []model.Record) error {
	b, err := tx.CreateBucketIfNotExists([]byte(prefix + set))
	if err != nil {
		return fmt.Errorf("create bucket: %w", err)
	}
	for _, record := range records {
		seq, err := b.NextSequence()
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		bytes, err := json.Marshal(record)
		if err != nil {
			return err
		}
		if err := b.Put(sequenceKey(seq), bytes); err != nil {
			return fmt.Errorf("put to bucket error: %w", err)
		}
	}
	keys, err := tx.CreateBucketIfNotExists([]byte(setKeys))
	if err != nil {
		return fmt.Errorf("unable create sets bucket: %w", err)
	}
	if err := keys.Put([]byte(prefix+set), []byte{0x0}); err != nil {
		return fmt.Errorf("unable put to sets bucket: %w", err)
	}
	return nil
}

func putGestures(tx *bolt.Tx, set string, names []string) error {
	bytes, err := json.Marshal(names)
	if err != nil {
		return err
	}
	b, err := tx.CreateBucketIfNotExists([]byte(gestureKeys))
	if err != nil {
		return fmt.Errorf("create bucket: %w", err)
	}
	return b.Put([]byte(set), bytes)
}

func deleteSet(tx *bolt.Tx, set string) error {
	if tx.Bucket([]byte(prefix+set)) != nil {
		if err := tx.DeleteBucket([]byte(prefix + set)); err != nil {
			return fmt.Errorf("unable delete bucket: %w", err)
		}
	}
	if b := tx.Bucket([]byte(setKeys)); b != nil {
		if err := b.Delete([]byte(prefix + set)); err != nil {
			return err
		}
	}
	if b := tx.Bucket([]byte(gestureKeys)); b != nil {
		if err := b.Delete([]byte(set)); err != nil {
			return err
		}
	}
	return nil
}

func sequenceKey(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}
