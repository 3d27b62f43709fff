// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store API
// do not need to depend on the concrete implementation.
package storedefs

import "errors"

// ErrNoMatchingEntry is the error returned when a history query completes
// with no result.
var ErrNoMatchingEntry = errors.New("no matching history entry")

// Store is an interface satisfied by the storage service.
type Store interface {
	NextSeq() (int, error)
	AddEntry(e Entry) (int, error)
	DelEntry(seq int) error
	Entry(seq int) (Entry, error)
	Entries(from, upto int) ([]Entry, error)
	PrevEntry(upto int, prefix string) (Entry, error)
}

// Entry is an entry in the evaluation history. Seq is assigned by the store
// and ignored by AddEntry.
type Entry struct {
	Seq    int    `json:"-"`
	Expr   string `json:"expr"`
	Result string `json:"result"`
}
