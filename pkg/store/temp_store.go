package store

import (
	"path/filepath"

	"src.calc.sh/pkg/must"
	"src.calc.sh/pkg/testutil"
)

// MustTempStore returns a Store backed by a file in a temporary directory. The
// Store and the directory are removed when the test finishes.
func MustTempStore(c testutil.Cleanuper) DBStore {
	dir := testutil.TempDir(c)
	st := must.OK1(NewStore(filepath.Join(dir, "db.bolt")))
	c.Cleanup(func() {
		if err := st.Close(); err != nil {
			logger.Println("failed to close temp store:", err)
		}
	})
	return st
}
