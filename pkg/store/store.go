// Package store implements the evaluation history, persisted in a bbolt
// database.
package store

import (
	"time"

	bolt "go.etcd.io/bbolt"
	"src.calc.sh/pkg/logutil"
	. "src.calc.sh/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[store] ")

// Names of buckets.
const (
	bucketHistory = "history"
)

// Functions that initialize the database, keyed by description. Each file
// that uses a bucket registers the creation of the bucket in its init.
var initDB = map[string](func(*bolt.Tx) error){}

// DBStore is the permanent storage backend for the evaluation history.
type DBStore interface {
	Store
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

// NewStore creates a new Store from the given file. If the file is locked by
// another process, NewStore gives up after one second.
func NewStore(dbname string) (DBStore, error) {
	db, err := bolt.Open(dbname, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	st, err := newStoreFromBolt(db)
	if err != nil {
		return nil, err
	}
	return st, nil
}

func newStoreFromBolt(db *bolt.DB) (*dbStore, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				logger.Printf("failed to %s: %v", name, err)
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	logger.Println("opened", db.Path())
	return &dbStore{db}, nil
}

// Close closes the underlying database.
func (s *dbStore) Close() error {
	return s.db.Close()
}
