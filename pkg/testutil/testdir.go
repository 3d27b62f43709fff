package testutil

import (
	"os"
	"path/filepath"

	"src.calc.sh/pkg/must"
)

// TempDir creates a temporary directory for testing that will be removed
// after the test finishes. It is different from testing.TB.TempDir in that it
// resolves symlinks in the path of the directory.
func TempDir(c Cleanuper) string {
	dir := must.OK1(os.MkdirTemp("", "calctest"))
	c.Cleanup(func() {
		err := os.RemoveAll(dir)
		if err != nil {
			println("failed to remove temp dir", dir)
		}
	})
	return must.OK1(filepath.EvalSymlinks(dir))
}

// InTempDir is like TempDir, but also changes into the directory. When the
// test finishes, the working directory is changed back.
func InTempDir(c Cleanuper) string {
	dir := TempDir(c)
	Chdir(c, dir)
	return dir
}

// Chdir changes into a directory, and restores the original working directory
// when a test finishes.
func Chdir(c Cleanuper, dir string) {
	oldWd := must.OK1(os.Getwd())
	must.OK(os.Chdir(dir))
	c.Cleanup(func() { must.OK(os.Chdir(oldWd)) })
}

// ApplyDir creates the given files in the current directory. Keys are file
// names; values are file contents.
func ApplyDir(files map[string]string) {
	for name, content := range files {
		if dir := filepath.Dir(name); dir != "." {
			must.OK(os.MkdirAll(dir, 0o700))
		}
		must.WriteFile(name, content)
	}
}
