package shell

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"src.calc.sh/pkg/calc"
	"src.calc.sh/pkg/diag"
)

// Configuration for the non-interactive modes.
type scriptCfg struct {
	Calc  calc.Config
	JSON  bool
	Check bool
}

// Evaluates each argument as an expression. Returns the exit status.
func evalArgs(fds [3]*os.File, args []string, cfg *scriptCfg) int {
	results := make([]result, len(args))
	for i, arg := range args {
		v, err := calc.Eval(calc.Source{Name: "code from -c", Code: arg}, cfg.Calc)
		results[i] = result{arg, calc.Display(v, err), err}
	}
	return output(fds, results, cfg)
}

// Evaluates each non-blank line of a file. Returns the exit status.
func evalFile(fds [3]*os.File, fname string, cfg *scriptCfg) int {
	name, err := filepath.Abs(fname)
	if err != nil {
		fmt.Fprintf(fds[2], "cannot get full path of file %q: %v\n", fname, err)
		return 2
	}
	code, err := readFileUTF8(name)
	if err != nil {
		fmt.Fprintf(fds[2], "cannot read file %q: %v\n", name, err)
		return 2
	}
	var results []result
	for _, line := range calc.EvalLines(calc.Source{Name: name, Code: code}, cfg.Calc) {
		if line.Err == calc.ErrBlank {
			continue
		}
		results = append(results, result{line.Code, line.Result(), line.Err})
	}
	return output(fds, results, cfg)
}

type result struct {
	expr   string
	result string
	err    error
}

func output(fds [3]*os.File, results []result, cfg *scriptCfg) int {
	exit := 0
	for _, r := range results {
		if r.result == calc.ResultError {
			exit = 2
		}
	}
	if cfg.JSON {
		fds[1].Write(resultsToJSON(results))
		return exit
	}
	for _, r := range results {
		fmt.Fprintln(fds[1], r.result)
		if cfg.Check && r.err != nil && r.err != calc.ErrBlank {
			diag.ShowError(fds[2], r.err)
		}
	}
	return exit
}

var errSourceNotUTF8 = errors.New("source is not UTF-8")

func readFileUTF8(fname string) (string, error) {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bytes) {
		return "", errSourceNotUTF8
	}
	return string(bytes), nil
}

// Auxiliary structs for converting results to JSON.
type resultInJSON struct {
	Expr   string       `json:"expr"`
	Result string       `json:"result"`
	Error  *errorInJSON `json:"error,omitempty"`
}

type errorInJSON struct {
	Kind    calc.ErrorKind `json:"kind"`
	Start   int            `json:"start"`
	End     int            `json:"end"`
	Message string         `json:"message"`
}

// Converts results into a JSON array, followed by a newline.
func resultsToJSON(results []result) []byte {
	converted := make([]resultInJSON, len(results))
	for i, r := range results {
		converted[i] = resultInJSON{Expr: r.expr, Result: r.result}
		if e := calc.UnpackError(r.err); e != nil {
			converted[i].Error = &errorInJSON{
				e.Kind, e.Context.From, e.Context.To, e.Message}
		}
	}
	data, err := json.Marshal(converted)
	if err != nil {
		return []byte(`[{"error":{"message":"unable to convert the results to JSON"}}]` + "\n")
	}
	return append(data, '\n')
}
