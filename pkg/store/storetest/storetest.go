// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.calc.sh/pkg/store/storedefs"
)

var (
	entries = []storedefs.Entry{
		{Expr: "1+2", Result: "3"},
		{Expr: "5/0", Result: "Error"},
		{Expr: "1+2*3", Result: "7"},
		{Expr: "7/2", Result: "3.5"},
		{Expr: "1+2", Result: "3"},
	}
	// Indices of expressions starting with "1+", as sequence numbers.
	onePlusSeqs = []int{1, 3, 5}
)

func matchErr(e1, e2 error) bool {
	return (e1 == nil && e2 == nil) || (e1 != nil && e2 != nil && e1.Error() == e2.Error())
}

func withSeq(e storedefs.Entry, seq int) storedefs.Entry {
	e.Seq = seq
	return e
}

// TestHistory tests the evaluation history functionality of a Store. The
// Store must be empty.
func TestHistory(t *testing.T, store storedefs.Store) {
	startSeq, err := store.NextSeq()
	if startSeq != 1 || err != nil {
		t.Errorf("store.NextSeq() -> %v, %v, want %v, nil", startSeq, err, 1)
	}

	// AddEntry
	for i, e := range entries {
		wantSeq := startSeq + i
		seq, err := store.AddEntry(e)
		if seq != wantSeq || err != nil {
			t.Errorf("store.AddEntry(%v) -> %v, %v, want %v, nil",
				e, seq, err, wantSeq)
		}
	}

	endSeq, err := store.NextSeq()
	wantEndSeq := startSeq + len(entries)
	if endSeq != wantEndSeq || err != nil {
		t.Errorf("store.NextSeq() -> %v, %v, want %v, nil",
			endSeq, err, wantEndSeq)
	}

	// Entry
	for i, want := range entries {
		seq := i + startSeq
		e, err := store.Entry(seq)
		if diff := cmp.Diff(withSeq(want, seq), e); diff != "" || err != nil {
			t.Errorf("store.Entry(%v) -> err %v, diff (-want +got):\n%s", seq, err, diff)
		}
	}
	if _, err := store.Entry(endSeq); !matchErr(err, storedefs.ErrNoMatchingEntry) {
		t.Errorf("store.Entry(%v) -> err %v, want %v",
			endSeq, err, storedefs.ErrNoMatchingEntry)
	}

	// Entries
	got, err := store.Entries(2, 4)
	want := []storedefs.Entry{withSeq(entries[1], 2), withSeq(entries[2], 3)}
	if diff := cmp.Diff(want, got); diff != "" || err != nil {
		t.Errorf("store.Entries(2, 4) -> err %v, diff (-want +got):\n%s", err, diff)
	}
	if got, err := store.Entries(endSeq, endSeq+10); len(got) != 0 || err != nil {
		t.Errorf("store.Entries past the end -> %v, %v, want empty", got, err)
	}

	// PrevEntry
	for i := len(onePlusSeqs) - 1; i > 0; i-- {
		e, err := store.PrevEntry(onePlusSeqs[i], "1+")
		if e.Seq != onePlusSeqs[i-1] || err != nil {
			t.Errorf("store.PrevEntry(%v, %q) -> %v, %v, want seq %v",
				onePlusSeqs[i], "1+", e, err, onePlusSeqs[i-1])
		}
	}
	if e, err := store.PrevEntry(endSeq, "1+"); e.Seq != 5 || err != nil {
		t.Errorf("store.PrevEntry(%v, %q) -> %v, %v, want seq 5", endSeq, "1+", e, err)
	}
	if e, err := store.PrevEntry(endSeq+10, "5"); e.Seq != 2 || err != nil {
		t.Errorf("store.PrevEntry(%v, %q) -> %v, %v, want seq 2", endSeq+10, "5", e, err)
	}
	if e, err := store.PrevEntry(3, ""); e.Seq != 2 || err != nil {
		t.Errorf("store.PrevEntry(3, %q) -> %v, %v, want seq 2", "", e, err)
	}
	if _, err := store.PrevEntry(startSeq, ""); !matchErr(err, storedefs.ErrNoMatchingEntry) {
		t.Errorf("store.PrevEntry(%v, %q) -> err %v, want %v",
			startSeq, "", err, storedefs.ErrNoMatchingEntry)
	}

	// DelEntry
	if err := store.DelEntry(1); err != nil {
		t.Errorf("store.DelEntry(1) -> %v, want nil", err)
	}
	if _, err := store.Entry(1); !matchErr(err, storedefs.ErrNoMatchingEntry) {
		t.Errorf("store.Entry(1) after deletion -> err %v, want %v",
			err, storedefs.ErrNoMatchingEntry)
	}
	if _, err := store.PrevEntry(3, "1+"); !matchErr(err, storedefs.ErrNoMatchingEntry) {
		t.Errorf("store.PrevEntry after deletion -> err %v, want %v",
			err, storedefs.ErrNoMatchingEntry)
	}
}
