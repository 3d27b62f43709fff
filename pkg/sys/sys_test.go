package sys

import (
	"testing"

	"src.calc.sh/pkg/must"
)

func TestIsATTY_Pipe(t *testing.T) {
	r, w := must.Pipe()
	defer r.Close()
	defer w.Close()
	if IsATTY(r) {
		t.Errorf("IsATTY(pipe reader) -> true")
	}
	if IsATTY(w) {
		t.Errorf("IsATTY(pipe writer) -> true")
	}
}
