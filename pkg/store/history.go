package store

import (
	"encoding/binary"
	"encoding/json"
	"strings"

	bolt "go.etcd.io/bbolt"
	. "src.calc.sh/pkg/store/storedefs"
)

func init() {
	initDB["initialize evaluation history table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketHistory))
		return err
	}
}

// NextSeq returns the next sequence number of the evaluation history.
func (s *dbStore) NextSeq() (int, error) {
	var seq uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketHistory))
		seq = b.Sequence() + 1
		return nil
	})
	return int(seq), err
}

// AddEntry adds a new entry to the evaluation history, and returns its
// sequence number.
func (s *dbStore) AddEntry(e Entry) (int, error) {
	value, err := json.Marshal(e)
	if err != nil {
		return 0, err
	}
	var seq uint64
	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketHistory))
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), value)
	})
	return int(seq), err
}

// DelEntry deletes the history entry with the given sequence number.
func (s *dbStore) DelEntry(seq int) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketHistory))
		return b.Delete(marshalSeq(uint64(seq)))
	})
}

// Entry queries the history entry with the given sequence number.
func (s *dbStore) Entry(seq int) (Entry, error) {
	var e Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketHistory))
		k := marshalSeq(uint64(seq))
		v := b.Get(k)
		if v == nil {
			return ErrNoMatchingEntry
		}
		var err error
		e, err = unmarshalEntry(k, v)
		return err
	})
	return e, err
}

// Entries returns all entries with sequence numbers in [from, upto).
func (s *dbStore) Entries(from, upto int) ([]Entry, error) {
	var entries []Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketHistory)).Cursor()
		for k, v := c.Seek(marshalSeq(uint64(from))); k != nil && unmarshalSeq(k) < uint64(upto); k, v = c.Next() {
			e, err := unmarshalEntry(k, v)
			if err != nil {
				return err
			}
			entries = append(entries, e)
		}
		return nil
	})
	return entries, err
}

// PrevEntry finds the last entry before the given sequence number whose
// expression has the given prefix.
func (s *dbStore) PrevEntry(upto int, prefix string) (Entry, error) {
	var e Entry
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketHistory)).Cursor()

		var v []byte
		k, _ := c.Seek(marshalSeq(uint64(upto)))
		if k == nil { // upto > last
			k, v = c.Last()
		} else {
			k, v = c.Prev()
		}

		for ; k != nil; k, v = c.Prev() {
			found, err := matchEntry(k, v, prefix, &e)
			if found || err != nil {
				return err
			}
		}
		return ErrNoMatchingEntry
	})
	return e, err
}

func matchEntry(k, v []byte, prefix string, e *Entry) (bool, error) {
	decoded, err := unmarshalEntry(k, v)
	if err != nil {
		return false, err
	}
	if !strings.HasPrefix(decoded.Expr, prefix) {
		return false, nil
	}
	*e = decoded
	return true, nil
}

func unmarshalEntry(k, v []byte) (Entry, error) {
	var e Entry
	if err := json.Unmarshal(v, &e); err != nil {
		return Entry{}, err
	}
	e.Seq = int(unmarshalSeq(k))
	return e, nil
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
