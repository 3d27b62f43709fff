package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"src.calc.sh/pkg/env"
	"src.calc.sh/pkg/keypad"
	"src.calc.sh/pkg/must"
	. "src.calc.sh/pkg/prog/progtest"
	"src.calc.sh/pkg/testutil"
)

// Changes into a temporary directory, and points the home, config and state
// directories into it.
func setupHome(t *testing.T) string {
	home := testutil.InTempDir(t)
	testutil.Setenv(t, env.HOME, home)
	testutil.Setenv(t, env.XDG_CONFIG_HOME, filepath.Join(home, "config"))
	testutil.Setenv(t, env.XDG_STATE_HOME, filepath.Join(home, "state"))
	return home
}

func TestCodeInArg(t *testing.T) {
	setupHome(t)

	Test(t, &Program{},
		ThatCalc("-c", "1+2").WritesStdout("3\n"),
		ThatCalc("-c", "2+3*4", "(-5+3)*2", "7/2", "6×7").
			WritesStdout("14\n-4\n3.5\n42\n"),
		ThatCalc("-c", "  ").WritesStdout("\n"),
		ThatCalc("-c", "1+1", "5/0").ExitsWith(2).WritesStdout("2\nError\n"),
		ThatCalc("-c", "2&3").ExitsWith(2).WritesStdout("Error\n"),

		ThatCalc("-c", "2+3)").ExitsWith(2).WritesStdout("Error\n"),
		ThatCalc("-lenient", "-c", "2+3)").WritesStdout("5\n"),

		ThatCalc("-c").ExitsWith(2).
			WritesStderrContaining("-c requires at least one expression\nUsage:"),
	)
}

func TestCheck(t *testing.T) {
	setupHome(t)

	Test(t, &Program{},
		ThatCalc("-check", "-c", "1+2").WritesStdout("3\n"),
		ThatCalc("-check", "-c", "2&3").ExitsWith(2).
			WritesStdout("Error\n").
			WritesStderrContaining("invalid character '&'"),
		ThatCalc("-check", "-c", "1+(2").ExitsWith(2).
			WritesStdout("Error\n").
			WritesStderrContaining("code from -c:1:3"),
	)
}

func TestJSONOutput(t *testing.T) {
	exit, stdout, stderr := Run(&Program{},
		[]string{"-norc", "-json", "-c", "1+2", "5/0", "2&3", ""}, "")
	if exit != 2 {
		t.Errorf("got exit %v, want 2", exit)
	}
	if stderr != "" {
		t.Errorf("got stderr %q, want empty", stderr)
	}
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"))
	g.Assert(t, "json_output", []byte(stdout))
}

func TestKeys(t *testing.T) {
	setupHome(t)

	Test(t, &Program{},
		ThatCalc("-keys").WritesStdout(keypad.Layout() + "0\n"),
		ThatCalc("-keys", "1", "2", "+", "3").WritesStdout("12+3\n"),
		ThatCalc("-keys", "1", "2", "+", "3", "=").WritesStdout("15\n"),
		ThatCalc("-keys", "9", "⌫").WritesStdout("0\n"),
		ThatCalc("-keys", "9", "/", "0", "=").WritesStdout("Error\n"),
	)
}

func TestFile(t *testing.T) {
	setupHome(t)
	testutil.ApplyDir(map[string]string{
		"ok.calc":  "1+2\n\n  7/2\r\n",
		"bad.calc": "1+2\n2&3\n",
		"bin.calc": "\xff",
	})

	Test(t, &Program{},
		ThatCalc("ok.calc").WritesStdout("3\n3.5\n"),
		ThatCalc("bad.calc").ExitsWith(2).WritesStdout("3\nError\n"),
		ThatCalc("-check", "bad.calc").ExitsWith(2).
			WritesStdout("3\nError\n").
			WritesStderrContaining("bad.calc:2:2"),
		ThatCalc("bin.calc").ExitsWith(2).
			WritesStderrContaining("source is not UTF-8"),
		ThatCalc("missing.calc").ExitsWith(2).
			WritesStderrContaining("cannot read file"),
		ThatCalc("ok.calc", "bad.calc").ExitsWith(2).
			WritesStderrContaining("at most one file can be evaluated"),
	)
}

func TestConfig(t *testing.T) {
	home := setupHome(t)
	testutil.ApplyDir(map[string]string{
		"config/calc/rc.yaml": "lenient-parens: true\n",
		"other.yaml":          "prompt: 'calc> '\n",
		"bad.yaml":            "colour: red\n",
	})

	Test(t, &Program{},
		ThatCalc("-c", "2+3)").WritesStdout("5\n"),
		ThatCalc("-norc", "-c", "2+3)").ExitsWith(2).WritesStdout("Error\n"),
		ThatCalc("-rc", "other.yaml", "-c", "2+3)").ExitsWith(2).WritesStdout("Error\n"),
		ThatCalc("-rc", "bad.yaml", "-c", "1").ExitsWith(2).
			WritesStderrContaining("field colour not found"),
		ThatCalc("-rc", "missing.yaml", "-c", "1").ExitsWith(2).
			WritesStderrContaining("missing.yaml"),
	)

	// The default rc file is optional.
	must.OK(os.Remove(filepath.Join(home, "config", "calc", "rc.yaml")))
	Test(t, &Program{},
		ThatCalc("-c", "1").WritesStdout("1\n"),
	)
}

func TestLoadConfig(t *testing.T) {
	testutil.InTempDir(t)
	testutil.ApplyDir(map[string]string{
		"full.yaml":  "prompt: '>> '\nlenient-parens: true\nhistory: false\ndb: /tmp/x.bolt\n",
		"empty.yaml": "",
	})

	cfg, err := LoadConfig("full.yaml")
	want := Config{Prompt: ">> ", LenientParens: true, History: false, DB: "/tmp/x.bolt"}
	if err != nil || *cfg != want {
		t.Errorf("LoadConfig(full.yaml) -> %v, %v, want %v", cfg, err, want)
	}

	cfg, err = LoadConfig("empty.yaml")
	if err != nil || *cfg != *defaultConfig() {
		t.Errorf("LoadConfig(empty.yaml) -> %v, %v, want defaults", cfg, err)
	}

	if _, err := LoadConfig("missing.yaml"); !os.IsNotExist(err) {
		t.Errorf("LoadConfig(missing.yaml) -> error %v, want not-exist error", err)
	}
}
