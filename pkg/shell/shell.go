// Package shell is the entry point for the command-line interface of calc.
//
// Depending on the flags and arguments, it evaluates expressions given on the
// command line, the lines of a file, or lines read interactively.
package shell

import (
	"fmt"
	"os"

	"src.calc.sh/pkg/calc"
	"src.calc.sh/pkg/keypad"
	"src.calc.sh/pkg/logutil"
	"src.calc.sh/pkg/prog"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram. It is always applicable, so it should be
// the last one in a composite program.
type Program struct {
	codeInArg bool
	check     bool
	keys      bool
	noRC      bool
	rc        string
	db        string
	json      *bool
	lenient   *bool
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.codeInArg, "c", false, "take arguments as expressions to evaluate")
	fs.BoolVar(&p.check, "check", false, "show diagnostics for expressions that fail to evaluate")
	fs.BoolVar(&p.keys, "keys", false, "take arguments as keys pressed on the keypad; show the keypad if there are none")
	fs.BoolVar(&p.noRC, "norc", false, "don't read the configuration file")
	fs.StringVar(&p.rc, "rc", "", "path to the configuration file")
	fs.StringVar(&p.db, "db", "", "path to the history database")
	p.json = fs.JSON()
	p.lenient = fs.Lenient()
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	cfg, err := p.loadConfig()
	if err != nil {
		return err
	}
	calcCfg := calc.Config{LenientParens: *p.lenient || cfg.LenientParens}
	sc := &scriptCfg{Calc: calcCfg, JSON: *p.json, Check: p.check}

	switch {
	case p.keys:
		if len(args) == 0 {
			fmt.Fprint(fds[1], keypad.Layout())
		}
		b := keypad.Buffer{Config: calcCfg}.PressAll(args...)
		fmt.Fprintln(fds[1], b.Display())
		return nil
	case p.codeInArg:
		if len(args) == 0 {
			return prog.BadUsage("-c requires at least one expression")
		}
		return prog.Exit(evalArgs(fds, args, sc))
	case len(args) > 1:
		return prog.BadUsage("at most one file can be evaluated")
	case len(args) == 1:
		return prog.Exit(evalFile(fds, args[0], sc))
	}

	var db string
	if cfg.History {
		db = p.db
		if db == "" {
			db = cfg.DB
		}
		if db == "" {
			db, err = dbPath()
			if err != nil {
				fmt.Fprintln(fds[2], "Warning:", err)
			}
		}
	}
	Interact(fds, &InteractConfig{Calc: calcCfg, Prompt: cfg.Prompt, DB: db})
	return nil
}

func (p *Program) loadConfig() (*Config, error) {
	if p.noRC {
		return defaultConfig(), nil
	}
	if p.rc != "" {
		return LoadConfig(p.rc)
	}
	rc, err := rcPath()
	if err != nil {
		logger.Println("cannot determine path of rc file:", err)
		return defaultConfig(), nil
	}
	cfg, err := LoadConfig(rc)
	if os.IsNotExist(err) {
		return defaultConfig(), nil
	}
	return cfg, err
}
