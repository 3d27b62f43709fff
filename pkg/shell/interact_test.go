package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "src.calc.sh/pkg/prog/progtest"
	"src.calc.sh/pkg/testutil"
)

func TestInteract(t *testing.T) {
	setupHome(t)

	Test(t, &Program{},
		ThatCalc("-db", "db.bolt").
			WithStdin("1+2\n\n5/0\n:history\n7/2").
			WritesStdout("3\nError\n1  1+2 = 3\n2  5/0 = Error\n3.5\n").
			WritesStderrContaining("result is not a finite number"),
		// History persists across sessions.
		ThatCalc("-db", "db.bolt").
			WithStdin(":history\n").
			WritesStdout("1  1+2 = 3\n2  5/0 = Error\n3  7/2 = 3.5\n"),
		ThatCalc("-lenient", "-db", "db.bolt").
			WithStdin("(1+2)*3)\n").
			WritesStdout("9\n"),
	)
}

func TestInteract_HistoryCommands(t *testing.T) {
	setupHome(t)

	Test(t, &Program{},
		ThatCalc("-db", "db.bolt").
			WithStdin("1+2\n5/0\n1+2*3\n:history 1+\n:forget 1\n:history\n").
			WritesStdout("3\nError\n7\n" +
				"1  1+2 = 3\n3  1+2*3 = 7\n" +
				"2  5/0 = Error\n3  1+2*3 = 7\n"),
		ThatCalc("-db", "db.bolt").
			WithStdin(":history 1+\n:history 9\n").
			WritesStdout("3  1+2*3 = 7\n"),
		ThatCalc("-db", "db.bolt").
			WithStdin(":forget 1\n").
			WritesStderrContaining("cannot forget 1: no matching history entry"),
		ThatCalc("-db", "db.bolt").
			WithStdin(":forget one\n").
			WritesStderrContaining(`invalid sequence number "one"`),
	)
}

func TestInteract_DefaultDBPath(t *testing.T) {
	home := setupHome(t)

	Test(t, &Program{},
		ThatCalc().WithStdin("6×7\n").WritesStdout("42\n"),
	)

	if _, err := os.Stat(filepath.Join(home, "state", "calc", "db.bolt")); err != nil {
		t.Errorf("history database not created: %v", err)
	}
}

func TestInteract_NoHistory(t *testing.T) {
	setupHome(t)
	testutil.ApplyDir(map[string]string{"no-history.yaml": "history: false\n"})

	Test(t, &Program{},
		ThatCalc("-rc", "no-history.yaml").
			WithStdin("1+1\n:history\n:forget 1\n").
			WritesStdout("2\n").
			WritesStderrContaining("history is not available"),
		ThatCalc("-db", filepath.Join("no-such-dir", "db.bolt")).
			WithStdin("1+1\n").
			WritesStdout("2\n").
			WritesStderrContaining("History will not be recorded."),
	)
}

func TestInteract_Prompt(t *testing.T) {
	setupHome(t)
	testutil.ApplyDir(map[string]string{"rc.yaml": "prompt: 'calc> '\n"})

	exit, stdout, stderr := RunInteractive(t, &Program{},
		[]string{"-rc", "rc.yaml", "-db", "db.bolt"}, "1+2\n2*")
	if exit != 0 {
		t.Errorf("got exit %v, want 0", exit)
	}
	if stdout != "3\nError\n" {
		t.Errorf("got stdout %q, want %q", stdout, "3\nError\n")
	}
	if !strings.HasPrefix(stderr, "calc> ") {
		t.Errorf("got stderr %q, want prompt", stderr)
	}
}
