package calc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.calc.sh/pkg/tt"
)

var normalizeTests = tt.Table{
	tt.Args("").Rets(""),
	tt.Args("1+2").Rets("1+2"),
	tt.Args("6×7").Rets("6*7"),
	tt.Args("6x7").Rets("6*7"),
	tt.Args("8÷2").Rets("8/2"),
	tt.Args("-5").Rets("0-5"),
	tt.Args("(-5)").Rets("(0-5)"),
	tt.Args("-(-5)").Rets("0-(0-5)"),
	tt.Args("2*(-3+(-4))").Rets("2*(0-3+(0-4))"),
	// Only a minus at the very start or right after "(" is rewritten.
	tt.Args(" -5").Rets(" -5"),
	tt.Args("( -5)").Rets("( -5)"),
	tt.Args("2--5").Rets("2--5"),
	// Other characters are left for Tokenize to reject.
	tt.Args("2&3").Rets("2&3"),
	tt.Args("X").Rets("X"),
}

func TestNormalize(t *testing.T) {
	tt.Test(t, tt.Fn("Normalize", Normalize), normalizeTests)
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"", "-", "--5", "-(-5)", "((-(-1)))", "6×-2", "(-×-)", "0-5", "x-x",
		"\xff-", "(\xff-",
	}
	for _, s := range inputs {
		once := Normalize(s)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize(%q) = %q, but Normalize(%q) = %q", s, once, once, twice)
		}
	}
}

func TestNormalize_Offsets(t *testing.T) {
	//                                 0 1 23 4 5 6 7
	normalized, offsets := normalize("-6×(-2)")
	wantNormalized := "0-6*(0-2)"
	wantOffsets := []int{0, 0, 1, 2, 4, 5, 5, 6, 7, 8}
	if normalized != wantNormalized {
		t.Errorf("got normalized %q, want %q", normalized, wantNormalized)
	}
	if diff := cmp.Diff(wantOffsets, offsets); diff != "" {
		t.Errorf("offsets (-want +got):\n%s", diff)
	}
}
