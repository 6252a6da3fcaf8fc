// Package bolt keeps client states in a bolt database file so that they
// survive restarts of a single server.
package bolt

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/boltdb/bolt"

	"github.com/sirius-scholar/scholar"
)

var (
	statesBucket  = []byte("states")
	touchedBucket = []byte("touched")
)

type Store struct {
	db  *bolt.DB
	now func() time.Time
}

var _ scholar.StateStore = (*Store)(nil)

func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	// Check buckets
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{statesBucket, touchedBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %v", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:  db,
		now: time.Now,
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the state and marks it as used.
func (s *Store) Get(_ context.Context, id string) ([]byte, error) {
	var data []byte
	err := s.db.Update(func(tx *bolt.Tx) error {
		stored := tx.Bucket(statesBucket).Get([]byte(id))
		if stored == nil {
			return nil
		}

		// stored is only valid during the transaction
		data = append([]byte(nil), stored...)
		return tx.Bucket(touchedBucket).Put([]byte(id), timeToBytes(s.now()))
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}

func (s *Store) Put(_ context.Context, id string, data []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(statesBucket).Put([]byte(id), data); err != nil {
			return err
		}
		return tx.Bucket(touchedBucket).Put([]byte(id), timeToBytes(s.now()))
	})
}

func (s *Store) Delete(_ context.Context, id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(statesBucket).Delete([]byte(id)); err != nil {
			return err
		}
		return tx.Bucket(touchedBucket).Delete([]byte(id))
	})
}

func (s *Store) Sweep(_ context.Context, idle time.Duration) (int, error) {
	deadline := s.now().Add(-idle)

	n := 0
	err := s.db.Update(func(tx *bolt.Tx) error {
		touched := tx.Bucket(touchedBucket)
		states := tx.Bucket(statesBucket)

		// Keys cannot be deleted while iterating
		var expired [][]byte
		c := touched.Cursor()
		for id, ts := c.First(); id != nil; id, ts = c.Next() {
			if bytesToTime(ts).Before(deadline) {
				expired = append(expired, append([]byte(nil), id...))
			}
		}

		for _, id := range expired {
			if err := states.Delete(id); err != nil {
				return err
			}
			if err := touched.Delete(id); err != nil {
				return err
			}
		}
		n = len(expired)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return n, nil
}

// timeToBytes returns an 8-byte big endian representation of t in unix
// nanoseconds.
func timeToBytes(t time.Time) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(t.UnixNano()))
	return b
}

func bytesToTime(b []byte) time.Time {
	if len(b) != 8 {
		return time.Time{}
	}
	return time.Unix(0, int64(binary.BigEndian.Uint64(b)))
}
